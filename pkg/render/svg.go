package render

import (
	"bytes"

	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/nilavan/kanadeck/pkg/deck"
	"github.com/nilavan/kanadeck/pkg/errors"
)

// SVG renders a single slide (0-based index) as an SVG document.
func (r *Renderer) SVG(d *deck.Deck, index int) ([]byte, error) {
	slide, err := slideAt(d, index)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := svg.New(&buf, d.Width*inchMM, d.Height*inchMM, nil)
	r.drawSlide(d, slide).RenderTo(writer)
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "write SVG for slide %d", index)
	}
	return buf.Bytes(), nil
}

func slideAt(d *deck.Deck, index int) (deck.Slide, error) {
	if index < 0 || index >= len(d.Slides) {
		return deck.Slide{}, errors.New(errors.ErrCodeSlideNotFound, "slide %d out of range (deck has %d)", index, len(d.Slides))
	}
	return d.Slides[index], nil
}
