package render

import (
	"bytes"
	"image/png"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/nilavan/kanadeck/pkg/deck"
	"github.com/nilavan/kanadeck/pkg/errors"
)

// DefaultDPI is the raster resolution used when the caller passes dpi <= 0.
const DefaultDPI = 96.0

// PNG rasterizes a single slide (0-based index) at the given resolution.
func (r *Renderer) PNG(d *deck.Deck, index int, dpi float64) ([]byte, error) {
	slide, err := slideAt(d, index)
	if err != nil {
		return nil, err
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	img := rasterizer.Draw(r.drawSlide(d, slide), canvas.DPI(dpi), canvas.DefaultColorSpace)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "encode PNG for slide %d", index)
	}
	return buf.Bytes(), nil
}
