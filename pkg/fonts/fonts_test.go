package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nilavan/kanadeck/pkg/errors"
)

func TestResolveExplicitPaths(t *testing.T) {
	dir := t.TempDir()
	main := filepath.Join(dir, "jp.ttf")
	sub := filepath.Join(dir, "ta.ttf")
	for _, p := range []string{main, sub} {
		if err := os.WriteFile(p, []byte("stub"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	set, err := Resolve(main, sub)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if set.Main != main || set.Sub != sub {
		t.Errorf("Resolve() = %+v, want explicit paths kept", set)
	}
}

func TestResolveMissingExplicitPath(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "missing.ttf"), "")
	if err == nil {
		t.Fatal("Resolve() = nil error, want failure for missing file")
	}
	if !errors.Is(err, errors.ErrCodeFontNotFound) {
		t.Errorf("error code = %q, want FONT_NOT_FOUND", errors.GetCode(err))
	}
}
