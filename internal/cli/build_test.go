package cli

import (
	"reflect"
	"testing"
)

func TestParseFormats(t *testing.T) {
	if got := parseFormats(""); !reflect.DeepEqual(got, []string{"pdf"}) {
		t.Errorf("parseFormats(\"\") = %v, want [pdf]", got)
	}
	if got := parseFormats("svg,json"); !reflect.DeepEqual(got, []string{"svg", "json"}) {
		t.Errorf("parseFormats(\"svg,json\") = %v, want [svg json]", got)
	}
}

func TestValidateFormats(t *testing.T) {
	if err := validateFormats([]string{"pdf", "svg", "png", "json"}); err != nil {
		t.Errorf("valid formats rejected: %v", err)
	}
	if err := validateFormats([]string{"pptx"}); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestNeedsRenderer(t *testing.T) {
	if needsRenderer([]string{"json"}) {
		t.Error("json-only export should not need a renderer")
	}
	if !needsRenderer([]string{"json", "pdf"}) {
		t.Error("pdf export needs a renderer")
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output string
		want   string
	}{
		{"", appName},
		{"deck.pdf", "deck"},
		{"out/deck.svg", "out/deck"},
		{"deck", "deck"},
		{"deck.txt", "deck.txt"}, // unknown extension kept
	}
	for _, tt := range tests {
		if got := basePath(tt.output); got != tt.want {
			t.Errorf("basePath(%q) = %q, want %q", tt.output, got, tt.want)
		}
	}
}
