package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nilavan/kanadeck/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kanadeck.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
sections = ["overview"]

[table]
col_width = 1.5

[fonts]
main = "/fonts/NotoSansJP-Regular.ttf"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Table.ColWidth != 1.5 {
		t.Errorf("ColWidth = %v, want 1.5 (overridden)", cfg.Table.ColWidth)
	}
	if cfg.Table.RowHeight != 1.0 {
		t.Errorf("RowHeight = %v, want 1.0 (default kept)", cfg.Table.RowHeight)
	}
	if cfg.Slide.Width != 13.333 {
		t.Errorf("Slide.Width = %v, want default 13.333", cfg.Slide.Width)
	}
	if cfg.Fonts.Main != "/fonts/NotoSansJP-Regular.ttf" {
		t.Errorf("Fonts.Main = %q, want override", cfg.Fonts.Main)
	}
	if len(cfg.Sections) != 1 || cfg.Sections[0] != SectionOverview {
		t.Errorf("Sections = %v, want [overview]", cfg.Sections)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[table]
col_wdith = 1.5
`)
	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("LoadConfig() = nil error, want unknown-key failure")
	}
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %q, want INVALID_CONFIG", errors.GetCode(err))
	}
}

func TestLoadConfigRejectsBadGeometry(t *testing.T) {
	path := writeConfig(t, `
[table]
width_margin = 14.0
`)
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() = nil error, want margin validation failure")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %q, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}

func TestValidateSections(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sections = []string{"overview", "bogus"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil error, want unknown-section failure")
	}
	if !errors.Is(err, errors.ErrCodeInvalidSection) {
		t.Errorf("error code = %q, want INVALID_SECTION", errors.GetCode(err))
	}
}
