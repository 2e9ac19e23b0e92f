package render

import (
	"bytes"
	"encoding/json"

	"github.com/nilavan/kanadeck/pkg/deck"
	"github.com/nilavan/kanadeck/pkg/errors"
)

// JSON exports the deck's computed geometry: every slide with its text boxes
// and tables, including the layout results the grid calculator produced.
// External tools can consume this without re-deriving any placement. It is
// also the content identity used by the preview cache.
func JSON(d *deck.Deck) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode deck JSON")
	}
	return buf.Bytes(), nil
}
