// Package cli implements the kanadeck command-line interface.
//
// The main commands are:
//   - build: Generate the deck as PDF, SVG, PNG, or JSON
//   - preview: Serve a live preview that rebuilds on file changes
//   - data: Validate a readings CSV against the kana tables
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nilavan/kanadeck/pkg/buildinfo"
	"github.com/nilavan/kanadeck/pkg/deck"
	"github.com/nilavan/kanadeck/pkg/fonts"
	"github.com/nilavan/kanadeck/pkg/kana"
	"github.com/nilavan/kanadeck/pkg/render"
)

// appName is the application name used for directories and display.
const appName = "kanadeck"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Kanadeck generates kana teaching decks for Tamil speakers",
		Long:         `Kanadeck builds a slide deck that teaches the Japanese hiragana and katakana syllabaries to Tamil speakers, pairing each character with its romaji and Tamil readings.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.dataCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Option Loading
// =============================================================================

// deckOpts are the flags shared by build and preview for assembling a deck.
type deckOpts struct {
	configPath string // TOML config file, empty for defaults
	dataPath   string // readings CSV, empty for built-in readings
	sections   string // comma-separated section filter
	mainFont   string // main (kana) font file override
	subFont    string // sub (Latin/Tamil) font file override
}

// registerDeckFlags adds the shared deck flags to cmd.
func registerDeckFlags(cmd *cobra.Command, opts *deckOpts) {
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVar(&opts.dataPath, "data", "", "readings CSV file (overrides config)")
	cmd.Flags().StringVarP(&opts.sections, "sections", "s", "", "sections to include: overview, dakuten, focus (comma-separated)")
	cmd.Flags().StringVar(&opts.mainFont, "main-font", "", "font file for kana (overrides config)")
	cmd.Flags().StringVar(&opts.subFont, "sub-font", "", "font file for romaji/Tamil text (overrides config)")
}

// loadConfig resolves the effective config from the config file and flag
// overrides. Flags win over the file, the file wins over defaults.
func (o *deckOpts) loadConfig() (deck.Config, error) {
	cfg := deck.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = deck.LoadConfig(o.configPath); err != nil {
			return deck.Config{}, err
		}
	}
	if o.dataPath != "" {
		cfg.Data.Readings = o.dataPath
	}
	if o.mainFont != "" {
		cfg.Fonts.Main = o.mainFont
	}
	if o.subFont != "" {
		cfg.Fonts.Sub = o.subFont
	}
	if o.sections != "" {
		cfg.Sections = splitList(o.sections)
	}
	return cfg, nil
}

// loadReadings loads the readings named by cfg, falling back to the
// built-in table when no file is configured.
func loadReadings(cfg deck.Config) (kana.Readings, error) {
	if cfg.Data.Readings == "" {
		return kana.DefaultReadings, nil
	}
	return kana.LoadCSV(cfg.Data.Readings)
}

// newRenderer resolves fonts per cfg and constructs a renderer.
func newRenderer(cfg deck.Config) (*render.Renderer, error) {
	set, err := fonts.Resolve(cfg.Fonts.Main, cfg.Fonts.Sub)
	if err != nil {
		return nil, err
	}
	return render.New(set)
}

// splitList splits a comma-separated flag value, trimming whitespace.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/kanadeck/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
