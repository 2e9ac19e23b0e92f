package render

import (
	"bytes"

	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/nilavan/kanadeck/pkg/deck"
	"github.com/nilavan/kanadeck/pkg/errors"
)

// PDF renders the whole deck as a multi-page PDF document.
func (r *Renderer) PDF(d *deck.Deck) ([]byte, error) {
	if len(d.Slides) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "deck has no slides")
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, d.Width*inchMM, d.Height*inchMM, nil)
	writer.SetInfo("Japanese Syllabaries for Tamil Speakers", "", "kana, hiragana, katakana, tamil", "", "kanadeck")

	for i, slide := range d.Slides {
		if i > 0 {
			writer.NewPage(d.Width*inchMM, d.Height*inchMM)
		}
		r.drawSlide(d, slide).RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "write PDF")
	}
	return buf.Bytes(), nil
}
