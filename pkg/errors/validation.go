package errors

import (
	"strings"
	"unicode"
)

// ValidateDimensions checks the geometry contract shared by the deck builder
// and the layout calculator: cell sizes must be positive and each margin must
// leave usable space on the canvas. The layout calculator itself never
// validates; callers go through here first.
func ValidateDimensions(colWidth, rowHeight, canvasWidth, canvasHeight, widthMargin, heightMargin float64) error {
	if colWidth <= 0 {
		return New(ErrCodeInvalidInput, "column width must be positive, got %v", colWidth)
	}
	if rowHeight <= 0 {
		return New(ErrCodeInvalidInput, "row height must be positive, got %v", rowHeight)
	}
	if canvasWidth <= 0 || canvasHeight <= 0 {
		return New(ErrCodeInvalidInput, "canvas dimensions must be positive, got %vx%v", canvasWidth, canvasHeight)
	}
	if widthMargin < 0 || heightMargin < 0 {
		return New(ErrCodeInvalidInput, "margins cannot be negative, got %v/%v", widthMargin, heightMargin)
	}
	if widthMargin >= canvasWidth {
		return New(ErrCodeInvalidInput, "width margin %v leaves no room on a %v-wide canvas", widthMargin, canvasWidth)
	}
	if heightMargin >= canvasHeight {
		return New(ErrCodeInvalidInput, "height margin %v leaves no room on a %v-tall canvas", heightMargin, canvasHeight)
	}
	return nil
}

// ValidatePath validates a user-supplied file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateSections checks that every requested deck section name is known.
func ValidateSections(sections, known []string) error {
	for _, s := range sections {
		found := false
		for _, k := range known {
			if s == k {
				found = true
				break
			}
		}
		if !found {
			return New(ErrCodeInvalidSection, "unknown section %q (valid: %s)", s, strings.Join(known, ", "))
		}
	}
	return nil
}
