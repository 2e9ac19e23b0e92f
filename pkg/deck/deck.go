// Package deck builds the slide deck model: an ordered list of slides whose
// elements carry final geometry in inches, ready for a renderer to draw.
//
// Building is a pure transformation of (config, readings) into a Deck. Each
// table slide invokes the layout calculator exactly once; no layout state
// survives between slides.
package deck

import (
	"github.com/nilavan/kanadeck/pkg/deck/layout"
)

// Alignment of text within a box.
type Alignment int

const (
	AlignCenter Alignment = iota
	AlignLeft
)

// FontRole selects which loaded font family renders a text box. Kana glyphs
// need the Japanese-capable main family; romaji/Tamil reading lines need the
// sub family, since neither covers the other's script.
type FontRole int

const (
	FontMain FontRole = iota
	FontSub
)

// TextBox is a positioned block of text. Multi-line content is separated by
// '\n'; the renderer centers the lines vertically within the box.
type TextBox struct {
	Content  string    `json:"content"`
	Left     float64   `json:"left"`
	Top      float64   `json:"top"`
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`
	FontSize float64   `json:"fontSize"` // pt
	Bold     bool      `json:"bold"`
	Align    Alignment `json:"align"`
	Font     FontRole  `json:"font"`
}

// Cell is one grid position. A blank Glyph means the syllabary has no
// character there; the cell still renders its border.
type Cell struct {
	Glyph string `json:"glyph,omitempty"`
	Aux   string `json:"aux,omitempty"` // "romaji | tamil" line under the glyph
}

// Table is a character grid with computed geometry. Cells is rectangular:
// ragged input rows are padded with blank cells to the widest row.
type Table struct {
	Title        string        `json:"title"`
	Cells        [][]Cell      `json:"cells"`
	Layout       layout.Result `json:"layout"`
	TitleBox     TextBox       `json:"titleBox"`
	MainFontSize float64       `json:"mainFontSize"` // pt, glyph line
	AuxFontSize  float64       `json:"auxFontSize"`  // pt, auxiliary line
}

// Rows returns the number of grid rows.
func (t Table) Rows() int { return len(t.Cells) }

// Cols returns the number of grid columns.
func (t Table) Cols() int {
	if len(t.Cells) == 0 {
		return 0
	}
	return len(t.Cells[0])
}

// Slide is one page of the deck.
type Slide struct {
	Name   string    `json:"name"`
	Tables []Table   `json:"tables,omitempty"`
	Texts  []TextBox `json:"texts,omitempty"`
}

// Deck is the fully-built presentation.
type Deck struct {
	Width  float64 `json:"width"`  // slide width, inches
	Height float64 `json:"height"` // slide height, inches
	Slides []Slide `json:"slides"`
}
