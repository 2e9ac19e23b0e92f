package deck

import (
	"fmt"
	"strings"

	"github.com/nilavan/kanadeck/pkg/deck/layout"
	"github.com/nilavan/kanadeck/pkg/kana"
)

// Placement constants for the fixed slide elements. All values are inches
// except font sizes (pt).
const (
	overviewAnchorTop  = 0.5
	overviewAnchorLeft = 0.5
	dakutenAnchorLeft  = 0.7

	titleFontBump = 6 // title renders at main size + bump

	nBoxLeft        = 11.0
	nBoxTop         = 5.5
	nBoxWidth       = 1.2
	nBoxGlyphHeight = 0.6
	nBoxAuxHeight   = 0.4
	nBoxFontSize    = 24
	nBoxAuxFontSize = 14

	seriesNameFontSize  = 60
	seriesRowsFontSize  = 36
	focusGlyphsFontSize = 120
	focusAuxFontSize    = 50
)

// Build assembles the deck from the configured sections. readings is the
// explicit lookup table; characters missing from it render blank auxiliary
// text rather than failing.
func Build(cfg Config, readings kana.Readings) (*Deck, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := &Deck{Width: cfg.Slide.Width, Height: cfg.Slide.Height}

	if cfg.HasSection(SectionOverview) {
		hira := buildTableSlide(cfg, readings, "Hiragana (ひらがな) Overview", kana.HiraganaTable, overviewAnchorLeft)
		hira.Texts = append(hira.Texts, standaloneNBox(kana.HiraganaN, readings)...)
		d.Slides = append(d.Slides, hira)

		kata := buildTableSlide(cfg, readings, "Katakana (カタカナ) Overview", kana.KatakanaTable, overviewAnchorLeft)
		kata.Texts = append(kata.Texts, standaloneNBox(kana.KatakanaN, readings)...)
		d.Slides = append(d.Slides, kata)
	}

	if cfg.HasSection(SectionDakuten) {
		d.Slides = append(d.Slides,
			buildTableSlide(cfg, readings, "Hiragana Dakuten/Handakuten", kana.HiraganaDakutenTable, dakutenAnchorLeft),
			buildTableSlide(cfg, readings, "Katakana Dakuten/Handakuten", kana.KatakanaDakutenTable, dakutenAnchorLeft),
		)
	}

	if cfg.HasSection(SectionFocus) {
		for _, series := range kana.GojuonSeries {
			d.Slides = append(d.Slides, buildSeriesSlides(series, readings)...)
		}
		for _, series := range kana.DakutenSeries {
			d.Slides = append(d.Slides, buildSeriesSlides(series, readings)...)
		}
	}

	return d, nil
}

// buildTableSlide lays out one character grid with its title. The layout
// calculator runs once here; the title box keeps the requested (pre-shrink)
// grid width, so a scaled-down table stays centered under its title.
func buildTableSlide(cfg Config, readings kana.Readings, title string, grid [][]string, anchorLeft float64) Slide {
	rows, cols := layout.Dimensions(grid)

	result := layout.Compute(layout.Request{
		Rows:       rows,
		Cols:       cols,
		ColWidth:   cfg.Table.ColWidth,
		RowHeight:  cfg.Table.RowHeight,
		AnchorTop:  overviewAnchorTop,
		AnchorLeft: anchorLeft,
	}, layout.Frame{
		CanvasWidth:  cfg.Slide.Width,
		CanvasHeight: cfg.Slide.Height,
		WidthMargin:  cfg.Table.WidthMargin,
		HeightMargin: cfg.Table.HeightMargin,
	})

	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
		for c := 0; c < cols && c < len(grid[r]); c++ {
			glyph := grid[r][c]
			if glyph == "" {
				continue
			}
			cells[r][c] = Cell{Glyph: glyph, Aux: readings.Lookup(glyph).Aux()}
		}
	}

	table := Table{
		Title: title,
		Cells: cells,
		TitleBox: TextBox{
			Content:  title,
			Left:     anchorLeft,
			Top:      overviewAnchorTop,
			Width:    cfg.Table.ColWidth * float64(cols),
			Height:   layout.TitleHeight,
			FontSize: cfg.Fonts.MainSize + titleFontBump,
			Bold:     true,
		},
		Layout:       result,
		MainFontSize: cfg.Fonts.MainSize,
		AuxFontSize:  cfg.Fonts.SubSize,
	}

	return Slide{Name: title, Tables: []Table{table}}
}

// standaloneNBox places the syllabic n beside the overview grid, since it
// sits outside the five-vowel rows. The glyph and its reading line are
// separate boxes because they need different font families.
func standaloneNBox(char string, readings kana.Readings) []TextBox {
	return []TextBox{
		{
			Content:  char,
			Left:     nBoxLeft,
			Top:      nBoxTop,
			Width:    nBoxWidth,
			Height:   nBoxGlyphHeight,
			FontSize: nBoxFontSize,
		},
		{
			Content:  readings.Lookup(char).Aux(),
			Left:     nBoxLeft,
			Top:      nBoxTop + nBoxGlyphHeight,
			Width:    nBoxWidth,
			Height:   nBoxAuxHeight,
			FontSize: nBoxAuxFontSize,
			Font:     FontSub,
		},
	}
}

// buildSeriesSlides produces the series overview slide followed by one focus
// slide per character.
func buildSeriesSlides(series kana.Series, readings kana.Readings) []Slide {
	slides := make([]Slide, 0, series.Len()+1)

	overview := Slide{
		Name: series.Name,
		Texts: []TextBox{
			{
				Content:  series.Name,
				Left:     2.0,
				Top:      1.0,
				Width:    8.0,
				Height:   1.0,
				FontSize: seriesNameFontSize,
				Bold:     true,
			},
			{
				Content: fmt.Sprintf("Hiragana: %s\nKatakana: %s",
					strings.Join(series.Hiragana, " "),
					strings.Join(series.Katakana, " ")),
				Left:     2.0,
				Top:      3.0,
				Width:    8.0,
				Height:   2.0,
				FontSize: seriesRowsFontSize,
			},
		},
	}
	slides = append(slides, overview)

	for i := 0; i < series.Len(); i++ {
		h, k := series.Hiragana[i], series.Katakana[i]
		// Both scripts share a reading; the hiragana form is the lookup key
		// and the only auxiliary line shown.
		aux := readings.Lookup(h).Aux()

		slides = append(slides, Slide{
			Name: fmt.Sprintf("%s: %s %s", series.Name, h, k),
			Texts: []TextBox{
				{
					Content:  fmt.Sprintf("%s    %s", h, k),
					Left:     3.0,
					Top:      2.0,
					Width:    7.0,
					Height:   1.5,
					FontSize: focusGlyphsFontSize,
					Bold:     true,
				},
				{
					Content:  aux,
					Left:     3.0,
					Top:      4.0,
					Width:    7.0,
					Height:   1.0,
					FontSize: focusAuxFontSize,
					Font:     FontSub,
				},
			},
		})
	}

	return slides
}
