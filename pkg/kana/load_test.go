package kana

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nilavan/kanadeck/pkg/errors"
)

func TestReadCSV(t *testing.T) {
	input := strings.Join([]string{
		"# basic vowels",
		"あ,ア,அ,A",
		"い,イ,இ,I",
		"ん,ン,ன்,N",
	}, "\n")

	readings, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}

	if len(readings) != 6 {
		t.Errorf("len(readings) = %d, want 6 (both scripts per record)", len(readings))
	}
	if got := readings.Lookup("あ"); got.Romaji != "A" || got.Tamil != "அ" {
		t.Errorf("Lookup(あ) = %+v, want {A அ}", got)
	}
	if got := readings.Lookup("ン"); got.Romaji != "N" || got.Tamil != "ன்" {
		t.Errorf("Lookup(ン) = %+v, want {N ன்}", got)
	}
}

func TestReadCSVSingleScriptRecord(t *testing.T) {
	readings, err := ReadCSV(strings.NewReader("ゔ,,வு,Vu\n"))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if _, ok := readings[""]; ok {
		t.Error("blank script form must not become a map key")
	}
	if got := readings.Lookup("ゔ"); got.Romaji != "Vu" {
		t.Errorf("Lookup(ゔ) = %+v, want romaji Vu", got)
	}
}

func TestReadCSVNormalizesDecomposedKana(t *testing.T) {
	// か (U+304B) + combining dakuten (U+3099) must match precomposed が.
	decomposed := "が"
	readings, err := ReadCSV(strings.NewReader(decomposed + ",ガ,க,Ga\n"))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if got := readings.Lookup("が"); got.Romaji != "Ga" {
		t.Errorf("Lookup(が) = %+v, want romaji Ga (NFC-normalized key)", got)
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "wrong field count", input: "あ,ア,அ\n"},
		{name: "record with no character", input: ",,அ,A\n"},
		{name: "empty file", input: ""},
		{name: "comments only", input: "# nothing here\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadCSV(strings.NewReader(tt.input)); err == nil {
				t.Error("ReadCSV() = nil error, want failure")
			}
		})
	}
}

func TestLoadCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "readings.csv")
	if err := os.WriteFile(path, []byte("あ,ア,அ,A\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	readings, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV() error = %v", err)
	}
	if got := readings.Lookup("あ"); got.Romaji != "A" {
		t.Errorf("Lookup(あ) = %+v, want romaji A", got)
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("LoadCSV() = nil error, want failure")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %q, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}
