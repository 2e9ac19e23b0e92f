// Package pkg provides the core libraries for Kanadeck deck generation.
//
// # Overview
//
// Kanadeck builds a slide deck that teaches the Japanese kana syllabaries
// to Tamil speakers. The pkg directory is organized as:
//
//  1. [kana] - Character tables, readings, and CSV loading
//  2. [deck] - Deck model, configuration, and slide assembly
//  3. [deck/layout] - The grid layout calculator (pure geometry)
//  4. [fonts] - Font file resolution (explicit paths or system discovery)
//  5. [render] - Canvas rendering to PDF, SVG, PNG, and JSON
//  6. [cache] - Byte caches for rendered artifacts
//  7. [errors] - Structured error codes and input validation
//  8. [observability] - Optional instrumentation hooks
//
// # Architecture
//
// The typical data flow:
//
//	readings (built-in or CSV)
//	         ↓
//	    [deck] package (assemble slides, one layout per table)
//	         ↓
//	    [deck/layout] package (fit grids into the canvas)
//	         ↓
//	    [render] package (draw slides with tdewolff/canvas)
//	         ↓
//	    PDF/SVG/PNG/JSON output
//
// # Quick Start
//
// Build the default deck and render a PDF:
//
//	import (
//	    "github.com/nilavan/kanadeck/pkg/deck"
//	    "github.com/nilavan/kanadeck/pkg/fonts"
//	    "github.com/nilavan/kanadeck/pkg/kana"
//	    "github.com/nilavan/kanadeck/pkg/render"
//	)
//
//	d, _ := deck.Build(deck.DefaultConfig(), kana.DefaultReadings)
//	set, _ := fonts.Resolve("", "")
//	r, _ := render.New(set)
//	data, _ := r.PDF(d)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/deck/...     # Specific package
//
// [kana]: https://pkg.go.dev/github.com/nilavan/kanadeck/pkg/kana
// [deck]: https://pkg.go.dev/github.com/nilavan/kanadeck/pkg/deck
// [deck/layout]: https://pkg.go.dev/github.com/nilavan/kanadeck/pkg/deck/layout
// [fonts]: https://pkg.go.dev/github.com/nilavan/kanadeck/pkg/fonts
// [render]: https://pkg.go.dev/github.com/nilavan/kanadeck/pkg/render
// [cache]: https://pkg.go.dev/github.com/nilavan/kanadeck/pkg/cache
// [errors]: https://pkg.go.dev/github.com/nilavan/kanadeck/pkg/errors
// [observability]: https://pkg.go.dev/github.com/nilavan/kanadeck/pkg/observability
package pkg
