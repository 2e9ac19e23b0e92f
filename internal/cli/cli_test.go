package cli

import (
	"io"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"overview", []string{"overview"}},
		{"overview,focus", []string{"overview", "focus"}},
		{"overview, focus ", []string{"overview", "focus"}},
		{"overview,,focus", []string{"overview", "focus"}},
	}
	for _, tt := range tests {
		if got := splitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	opts := deckOpts{
		dataPath: "custom.csv",
		sections: "focus",
		mainFont: "/fonts/main.ttf",
	}
	cfg, err := opts.loadConfig()
	if err != nil {
		t.Fatalf("loadConfig error: %v", err)
	}

	if cfg.Data.Readings != "custom.csv" {
		t.Errorf("Data.Readings = %q, want custom.csv", cfg.Data.Readings)
	}
	if got := cfg.Sections; !reflect.DeepEqual(got, []string{"focus"}) {
		t.Errorf("Sections = %v, want [focus]", got)
	}
	if cfg.Fonts.Main != "/fonts/main.ttf" {
		t.Errorf("Fonts.Main = %q, want /fonts/main.ttf", cfg.Fonts.Main)
	}
	// Untouched fields keep defaults
	if cfg.Slide.Width == 0 {
		t.Error("flag overrides should start from defaults")
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir error: %v", err)
	}
	want := filepath.Join("/tmp/xdg-cache", appName)
	if dir != want {
		t.Errorf("cacheDir = %q, want %q", dir, want)
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	for _, name := range []string{"build", "preview", "data", "completion"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
