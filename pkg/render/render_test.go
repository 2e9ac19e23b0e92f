package render

import (
	"testing"

	"github.com/tdewolff/canvas"

	"github.com/nilavan/kanadeck/pkg/deck"
)

func TestFamilySelectionByRole(t *testing.T) {
	main := canvas.NewFontFamily("main")
	sub := canvas.NewFontFamily("sub")
	r := &Renderer{main: main, sub: sub}

	if r.family(deck.FontMain) != main {
		t.Error("FontMain should select the main family")
	}
	if r.family(deck.FontSub) != sub {
		t.Error("FontSub should select the sub family")
	}
	// Zero value routes to main, so kana-bearing boxes are safe by default.
	if r.family(deck.FontRole(0)) != main {
		t.Error("zero FontRole should select the main family")
	}
}
