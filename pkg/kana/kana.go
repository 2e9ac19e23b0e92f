// Package kana holds the Japanese syllabary data the deck is built from:
// the hiragana and katakana grids, the dakuten/handakuten grids, the gojūon
// series used for focus slides, and the per-character readings that pair
// each kana with a romaji transliteration and a Tamil equivalent.
//
// Readings are passed around as an explicit immutable map rather than
// package-level state, so deck building has no load-order hazards and no
// shared mutable state between calls.
package kana

import "fmt"

// Reading is the auxiliary text pair shown under a character: the romaji
// transliteration and the closest Tamil script equivalent.
type Reading struct {
	Romaji string
	Tamil  string
}

// Aux formats the reading as the auxiliary line rendered under a glyph.
func (r Reading) Aux() string {
	return fmt.Sprintf("%s | %s", r.Romaji, r.Tamil)
}

// Readings maps a kana character to its reading.
type Readings map[string]Reading

// Lookup returns the reading for a character. A character absent from the
// map resolves to an empty pair rather than an error; callers render blank
// auxiliary text for it.
func (rs Readings) Lookup(char string) Reading {
	return rs[char]
}

// Series is one row of the syllabary (an initial-consonant family) with its
// hiragana and katakana forms side by side. The two slices are always the
// same length.
type Series struct {
	Name     string
	Hiragana []string
	Katakana []string
}

// Len returns the number of characters in the series.
func (s Series) Len() int {
	if len(s.Hiragana) < len(s.Katakana) {
		return len(s.Hiragana)
	}
	return len(s.Katakana)
}
