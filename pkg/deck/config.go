package deck

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/nilavan/kanadeck/pkg/errors"
)

// Section names accepted in configuration and on the command line.
const (
	SectionOverview = "overview" // hiragana/katakana overview tables
	SectionDakuten  = "dakuten"  // dakuten/handakuten tables
	SectionFocus    = "focus"    // per-series overview and focus slides
)

// Sections lists all known sections in deck order.
var Sections = []string{SectionOverview, SectionDakuten, SectionFocus}

// Config controls deck geometry and content. The zero value is not usable;
// start from DefaultConfig and override via TOML or flags.
type Config struct {
	Slide    SlideConfig `toml:"slide"`
	Table    TableConfig `toml:"table"`
	Fonts    FontConfig  `toml:"fonts"`
	Data     DataConfig  `toml:"data"`
	Sections []string    `toml:"sections"`
}

// SlideConfig is the canvas size in inches. The defaults are a 16:9 layout.
type SlideConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// TableConfig is the requested cell geometry and the reserved margins used
// by the grid layout calculator. Margins are totals per axis.
type TableConfig struct {
	ColWidth     float64 `toml:"col_width"`
	RowHeight    float64 `toml:"row_height"`
	WidthMargin  float64 `toml:"width_margin"`
	HeightMargin float64 `toml:"height_margin"`
}

// FontConfig names the font files and base sizes (pt). Main renders kana,
// Sub renders the romaji/Tamil auxiliary lines. Empty paths fall back to
// system font discovery.
type FontConfig struct {
	Main     string  `toml:"main"`
	Sub      string  `toml:"sub"`
	MainSize float64 `toml:"main_size"`
	SubSize  float64 `toml:"sub_size"`
}

// DataConfig points at an external readings CSV. Empty means the built-in
// readings table.
type DataConfig struct {
	Readings string `toml:"readings"`
}

// DefaultConfig returns the default 16:9 deck geometry: a 13.333x7.5 in
// canvas, 1.1x1.0 in cells, 1.0/1.5 in margins, 32/14 pt fonts.
func DefaultConfig() Config {
	return Config{
		Slide: SlideConfig{Width: 13.333, Height: 7.5},
		Table: TableConfig{
			ColWidth:     1.1,
			RowHeight:    1.0,
			WidthMargin:  1.0,
			HeightMargin: 1.5,
		},
		Fonts:    FontConfig{MainSize: 32, SubSize: 14},
		Sections: Sections,
	}
}

// LoadConfig reads a TOML config file and overlays it on the defaults.
// Unknown keys are rejected so typos surface instead of silently using
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if err := errors.ValidatePath(path); err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config file %s", path)
	}

	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config file %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "config file %s: unknown key %q", path, undecoded[0].String())
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the geometry contract before any layout computation.
// The layout calculator itself treats bad margins as a caller violation,
// so all validation happens here.
func (c Config) Validate() error {
	if err := errors.ValidateDimensions(
		c.Table.ColWidth, c.Table.RowHeight,
		c.Slide.Width, c.Slide.Height,
		c.Table.WidthMargin, c.Table.HeightMargin,
	); err != nil {
		return err
	}
	if c.Fonts.MainSize <= 0 || c.Fonts.SubSize <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "font sizes must be positive, got %v/%v", c.Fonts.MainSize, c.Fonts.SubSize)
	}
	return errors.ValidateSections(c.Sections, Sections)
}

// HasSection reports whether the named section is enabled.
func (c Config) HasSection(name string) bool {
	for _, s := range c.Sections {
		if s == name {
			return true
		}
	}
	return false
}
