package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nilavan/kanadeck/pkg/deck"
	"github.com/nilavan/kanadeck/pkg/render"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	deckOpts
	output      string   // output file path (or base path for per-slide formats)
	formats     []string // output formats: "pdf", "svg", "png", "json"
	slide       int      // single slide index for svg/png, -1 for all
	dpi         float64  // raster resolution for png
	interactive bool     // pick sections via TUI
}

// newBuildCmd creates the build command for generating the deck.
//
// PDF and JSON are whole-deck formats written to a single file. SVG and
// PNG are per-slide formats; without --slide they produce one numbered
// file per slide.
func (c *CLI) buildCommand() *cobra.Command {
	var formatsStr string
	opts := buildOpts{
		slide: -1,
		dpi:   render.DefaultDPI,
	}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate the deck as PDF, SVG, PNG, or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runBuild(cmd.Context(), &opts)
		},
	}

	registerDeckFlags(cmd, &opts.deckOpts)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): pdf (default), svg, png, json (comma-separated)")
	cmd.Flags().IntVar(&opts.slide, "slide", opts.slide, "render only this slide index (svg/png)")
	cmd.Flags().Float64Var(&opts.dpi, "dpi", opts.dpi, "raster resolution for png output")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick sections interactively")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["pdf"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"pdf"}
	}
	return splitList(s)
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"pdf": true, "svg": true, "png": true, "json": true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'pdf', 'svg', 'png', or 'json')", f)
		}
	}
	return nil
}

// needsRenderer reports whether any requested format requires fonts.
// JSON export is pure geometry and works without them.
func needsRenderer(formats []string) bool {
	for _, f := range formats {
		if f != "json" {
			return true
		}
	}
	return false
}

// basePath derives the base output path from the output flag.
// A known format extension is stripped so multi-format runs can append
// their own.
func basePath(output string) string {
	if output == "" {
		return appName
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func (c *CLI) runBuild(ctx context.Context, opts *buildOpts) error {
	if opts.interactive {
		sections, err := pickSections()
		if err != nil {
			return err
		}
		if sections == nil {
			printWarning("build cancelled")
			return nil
		}
		opts.sections = strings.Join(sections, ",")
	}

	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	readings, err := loadReadings(cfg)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	d, err := deck.Build(cfg, readings)
	if err != nil {
		return err
	}
	c.Logger.Debugf("Built deck: %d slides, sections %s", len(d.Slides), strings.Join(cfg.Sections, ","))

	var renderer *render.Renderer
	if needsRenderer(opts.formats) {
		if renderer, err = newRenderer(cfg); err != nil {
			return err
		}
	}

	spinner := newSpinnerWithContext(ctx, "rendering deck")
	spinner.Start()
	paths, err := writeOutputs(d, renderer, opts)
	spinner.Stop()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered %d slides", len(d.Slides)))
	printSuccess("deck written")
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// writeOutputs renders every requested format and returns the written paths.
func writeOutputs(d *deck.Deck, renderer *render.Renderer, opts *buildOpts) ([]string, error) {
	base := basePath(opts.output)
	var paths []string

	for _, format := range opts.formats {
		switch format {
		case "pdf":
			data, err := renderer.PDF(d)
			if err != nil {
				return nil, err
			}
			path := base + ".pdf"
			if err := writeFile(path, data); err != nil {
				return nil, err
			}
			paths = append(paths, path)

		case "json":
			data, err := render.JSON(d)
			if err != nil {
				return nil, err
			}
			path := base + ".json"
			if err := writeFile(path, data); err != nil {
				return nil, err
			}
			paths = append(paths, path)

		case "svg", "png":
			out, err := writeSlides(d, renderer, base, format, opts)
			if err != nil {
				return nil, err
			}
			paths = append(paths, out...)
		}
	}
	return paths, nil
}

// writeSlides writes per-slide files for svg/png, either a single slide or
// the whole deck with zero-padded indices.
func writeSlides(d *deck.Deck, renderer *render.Renderer, base, format string, opts *buildOpts) ([]string, error) {
	renderOne := func(index int) ([]byte, error) {
		if format == "png" {
			return renderer.PNG(d, index, opts.dpi)
		}
		return renderer.SVG(d, index)
	}

	if opts.slide >= 0 {
		data, err := renderOne(opts.slide)
		if err != nil {
			return nil, err
		}
		path := fmt.Sprintf("%s_%03d.%s", base, opts.slide, format)
		if err := writeFile(path, data); err != nil {
			return nil, err
		}
		return []string{path}, nil
	}

	var paths []string
	for i := range d.Slides {
		data, err := renderOne(i)
		if err != nil {
			return nil, err
		}
		path := fmt.Sprintf("%s_%03d.%s", base, i, format)
		if err := writeFile(path, data); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}
