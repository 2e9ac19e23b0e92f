package cli

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nilavan/kanadeck/internal/preview"
	"github.com/nilavan/kanadeck/pkg/cache"
	"github.com/nilavan/kanadeck/pkg/deck"
)

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	deckOpts
	addr      string // listen address
	diskCache bool   // persist rendered slides across restarts
	noCache   bool   // disable the render cache entirely
}

// previewCommand creates the preview command, which serves the deck over
// HTTP and rebuilds it when the config or readings files change.
func (c *CLI) previewCommand() *cobra.Command {
	opts := previewOpts{addr: "localhost:8787"}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Serve a live preview that rebuilds on file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd.Context(), &opts)
		},
	}

	registerDeckFlags(cmd, &opts.deckOpts)
	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().BoolVar(&opts.diskCache, "disk-cache", false, "persist rendered slides across restarts")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")

	return cmd
}

func (c *CLI) runPreview(ctx context.Context, opts *previewOpts) error {
	// Fonts are resolved once at startup; edits to the config file change
	// geometry and content on reload, not the loaded font families.
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	store, err := newPreviewCache(opts.diskCache, opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	build := func() (*deck.Deck, error) {
		cfg, err := opts.loadConfig()
		if err != nil {
			return nil, err
		}
		readings, err := loadReadings(cfg)
		if err != nil {
			return nil, err
		}
		return deck.Build(cfg, readings)
	}

	srv, err := preview.New(c.Logger, renderer, store, build)
	if err != nil {
		return err
	}

	var watched []string
	if opts.configPath != "" {
		watched = append(watched, opts.configPath)
	}
	if cfg.Data.Readings != "" {
		watched = append(watched, cfg.Data.Readings)
	}
	go func() {
		if err := srv.Watch(ctx, watched...); err != nil && !errors.Is(err, context.Canceled) {
			c.Logger.Error("watcher stopped", "error", err)
		}
	}()

	printInfo("previewing at http://%s", opts.addr)
	if len(watched) > 0 {
		printDetail("watching %d file(s) for changes", len(watched))
	}

	err = srv.ListenAndServe(ctx, opts.addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// newPreviewCache picks the cache backend for the preview server.
// Memory is the default; --disk-cache persists under the XDG cache dir.
func newPreviewCache(disk, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if !disk {
		return cache.NewMemoryCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewMemoryCache(), nil
	}
	return cache.NewArtifactStore(filepath.Join(dir, "preview"))
}
