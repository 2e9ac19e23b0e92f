// Package render draws a built deck onto canvas pages and serializes the
// result. It supports multi-page PDF for the whole deck, per-slide SVG and
// PNG, and a JSON export of the computed geometry for external tooling.
//
// The deck model measures in inches; the canvas works in millimeters, so
// every coordinate crosses that boundary exactly once, here.
package render

import (
	"image/color"
	"strings"

	"github.com/tdewolff/canvas"

	"github.com/nilavan/kanadeck/pkg/deck"
	"github.com/nilavan/kanadeck/pkg/errors"
	"github.com/nilavan/kanadeck/pkg/fonts"
)

const (
	inchMM = 25.4

	// Cell borders, stroke width in mm.
	borderWidth = 0.2
)

var (
	textColor   = canvas.Black
	borderColor = canvas.Hex("#444444")
)

// Renderer draws deck slides using a loaded pair of font families.
// A Renderer is safe for concurrent use once constructed; drawing reads the
// families but never mutates them.
type Renderer struct {
	main *canvas.FontFamily
	sub  *canvas.FontFamily
}

// New loads the main (kana) and sub (romaji/Tamil) font families from the
// resolved font set.
func New(set fonts.Set) (*Renderer, error) {
	main, err := loadFamily("deck-main", set.Main)
	if err != nil {
		return nil, err
	}
	sub, err := loadFamily("deck-sub", set.Sub)
	if err != nil {
		return nil, err
	}
	return &Renderer{main: main, sub: sub}, nil
}

func loadFamily(name, path string) (*canvas.FontFamily, error) {
	family := canvas.NewFontFamily(name)
	if err := family.LoadFontFile(path, canvas.FontRegular); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "load font %s", path)
	}
	return family, nil
}

// drawSlide renders one slide onto a fresh canvas in CartesianIV (top-left
// origin), matching the deck model's coordinate system.
func (r *Renderer) drawSlide(d *deck.Deck, slide deck.Slide) *canvas.Canvas {
	c := canvas.New(d.Width*inchMM, d.Height*inchMM)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)

	// White background so raster output is not transparent.
	ctx.SetFillColor(canvas.White)
	ctx.SetStrokeColor(color.RGBA{})
	ctx.DrawPath(0, 0, canvas.Rectangle(d.Width*inchMM, d.Height*inchMM))

	for _, table := range slide.Tables {
		r.drawTable(ctx, table)
	}
	for _, text := range slide.Texts {
		r.drawTextBox(ctx, text, r.family(text.Font))
	}
	return c
}

// family maps a font role to the loaded family for it.
func (r *Renderer) family(role deck.FontRole) *canvas.FontFamily {
	if role == deck.FontSub {
		return r.sub
	}
	return r.main
}

// drawTable draws the title strip, the cell borders, and per-cell text:
// the glyph line in the main font above a smaller auxiliary line in the
// sub font.
func (r *Renderer) drawTable(ctx *canvas.Context, table deck.Table) {
	r.drawTextBox(ctx, table.TitleBox, r.main)

	l := table.Layout
	cellW := l.ColWidth * inchMM
	cellH := l.RowHeight * inchMM

	for rowIdx, row := range table.Cells {
		top := (l.GridTop + l.RowHeight*float64(rowIdx)) * inchMM
		for colIdx, cell := range row {
			left := (l.GridLeft + l.ColWidth*float64(colIdx)) * inchMM

			ctx.SetFillColor(canvas.White)
			ctx.SetStrokeColor(borderColor)
			ctx.SetStrokeWidth(borderWidth)
			ctx.DrawPath(left, top, canvas.Rectangle(cellW, cellH))

			if cell.Glyph == "" {
				continue
			}

			glyphFace := r.face(r.main, table.MainFontSize, true)
			auxFace := r.face(r.sub, table.AuxFontSize, false)

			// Center the two-line block vertically within the cell.
			blockH := glyphFace.Metrics().LineHeight + auxFace.Metrics().LineHeight
			cursor := top + (cellH-blockH)/2
			if cursor < top {
				cursor = top
			}
			centerX := left + cellW/2

			ctx.DrawText(centerX, cursor+glyphFace.Metrics().Ascent,
				canvas.NewTextLine(glyphFace, cell.Glyph, canvas.Center))
			cursor += glyphFace.Metrics().LineHeight
			ctx.DrawText(centerX, cursor+auxFace.Metrics().Ascent,
				canvas.NewTextLine(auxFace, cell.Aux, canvas.Center))
		}
	}
}

// drawTextBox draws a (possibly multi-line) text box, centering the line
// block vertically and each line horizontally unless left-aligned.
func (r *Renderer) drawTextBox(ctx *canvas.Context, tb deck.TextBox, family *canvas.FontFamily) {
	face := r.face(family, tb.FontSize, tb.Bold)
	lines := strings.Split(tb.Content, "\n")

	left := tb.Left * inchMM
	top := tb.Top * inchMM
	width := tb.Width * inchMM
	height := tb.Height * inchMM

	lineHeight := face.Metrics().LineHeight
	cursor := top + (height-lineHeight*float64(len(lines)))/2
	if cursor < top {
		cursor = top
	}

	align := canvas.Center
	anchorX := left + width/2
	if tb.Align == deck.AlignLeft {
		align = canvas.Left
		anchorX = left
	}

	for _, line := range lines {
		ctx.DrawText(anchorX, cursor+face.Metrics().Ascent, canvas.NewTextLine(face, line, align))
		cursor += lineHeight
	}
}

// face builds a font face at the given point size. Bold is synthesized by
// the canvas library when the family has no bold weight loaded.
func (r *Renderer) face(family *canvas.FontFamily, sizePt float64, bold bool) *canvas.FontFace {
	style := canvas.FontRegular
	if bold {
		style = canvas.FontBold
	}
	return family.Face(sizePt, textColor, style, canvas.FontNormal)
}
