// Package preview implements the live preview HTTP server.
//
// The server renders slides on demand as SVG or PNG, caches rendered
// artifacts keyed by a hash of the full deck, and rebuilds the deck when
// the watched config or readings files change. Stale cache entries are
// never served because a rebuild changes the deck hash.
package preview

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nilavan/kanadeck/pkg/cache"
	"github.com/nilavan/kanadeck/pkg/deck"
	"github.com/nilavan/kanadeck/pkg/observability"
	"github.com/nilavan/kanadeck/pkg/render"
)

// BuildFunc assembles a fresh deck from the current config and data files.
// It is called once at startup and again after every file change.
type BuildFunc func() (*deck.Deck, error)

// Server serves a live preview of the deck.
type Server struct {
	logger   *log.Logger
	renderer *render.Renderer
	store    cache.Cache
	build    BuildFunc

	mu       sync.RWMutex
	deck     *deck.Deck
	deckJSON []byte
	deckHash string
}

// New creates a preview server and performs the initial deck build.
func New(logger *log.Logger, renderer *render.Renderer, store cache.Cache, build BuildFunc) (*Server, error) {
	s := &Server{
		logger:   logger,
		renderer: renderer,
		store:    store,
		build:    build,
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload rebuilds the deck and swaps it in atomically.
// The memory cache is purged since its entries can never be hit again.
func (s *Server) Reload() error {
	start := time.Now()
	d, err := s.build()
	if err != nil {
		observability.Deck().OnBuildComplete(context.Background(), 0, time.Since(start), err)
		return err
	}
	observability.Deck().OnBuildComplete(context.Background(), len(d.Slides), time.Since(start), nil)
	data, err := render.JSON(d)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.deck = d
	s.deckJSON = data
	s.deckHash = cache.Hash(data)
	s.mu.Unlock()

	if mc, ok := s.store.(*cache.MemoryCache); ok {
		mc.Purge()
	}

	s.logger.Info("deck rebuilt", "slides", len(d.Slides))
	return nil
}

// snapshot returns the current deck state under a read lock.
func (s *Server) snapshot() (*deck.Deck, []byte, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deck, s.deckJSON, s.deckHash
}

// Handler builds the chi router for the preview routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/deck.json", s.handleDeckJSON)
	r.Get("/slides/{index}.svg", s.handleSlideSVG)
	r.Get("/slides/{index}.png", s.handleSlidePNG)

	return r
}

// ListenAndServe runs the HTTP server until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("preview server listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	d, _, _ := s.snapshot()

	var b strings.Builder
	b.WriteString("<!doctype html>\n<html><head><title>kanadeck preview</title>\n")
	b.WriteString("<style>body{font-family:sans-serif;background:#222;color:#ddd;margin:2em}")
	b.WriteString("img{width:640px;display:block;background:#fff;margin:0.5em 0 2em}</style>\n")
	b.WriteString("</head><body>\n<h1>kanadeck preview</h1>\n")
	fmt.Fprintf(&b, "<p>%d slides. This page does not auto-refresh; reload after edits.</p>\n", len(d.Slides))
	for i, slide := range d.Slides {
		fmt.Fprintf(&b, "<h3>%d. %s</h3>\n<img src=\"/slides/%d.svg\" alt=\"%s\">\n", i, slide.Name, i, slide.Name)
	}
	b.WriteString("</body></html>\n")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(b.String()))
}

func (s *Server) handleDeckJSON(w http.ResponseWriter, r *http.Request) {
	_, data, _ := s.snapshot()
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (s *Server) handleSlideSVG(w http.ResponseWriter, r *http.Request) {
	s.serveSlide(w, r, "svg", "image/svg+xml", func(d *deck.Deck, index int) ([]byte, error) {
		return s.renderer.SVG(d, index)
	})
}

func (s *Server) handleSlidePNG(w http.ResponseWriter, r *http.Request) {
	s.serveSlide(w, r, "png", "image/png", func(d *deck.Deck, index int) ([]byte, error) {
		return s.renderer.PNG(d, index, render.DefaultDPI)
	})
}

// serveSlide renders one slide in the given format, consulting the cache
// first. Cache keys include the deck hash, so entries self-invalidate on
// rebuild.
func (s *Server) serveSlide(w http.ResponseWriter, r *http.Request, format, contentType string, renderFn func(*deck.Deck, int) ([]byte, error)) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid slide index", http.StatusBadRequest)
		return
	}

	d, _, hash := s.snapshot()
	if index < 0 || index >= len(d.Slides) {
		http.Error(w, "slide not found", http.StatusNotFound)
		return
	}

	key := cache.RenderKey(hash, index, format)
	if data, hit, err := s.store.Get(r.Context(), key); err == nil && hit {
		observability.Cache().OnCacheHit(r.Context(), "render")
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(data)
		return
	}
	observability.Cache().OnCacheMiss(r.Context(), "render")

	start := time.Now()
	data, err := renderFn(d, index)
	observability.Deck().OnRenderComplete(r.Context(), format, len(data), time.Since(start), err)
	if err != nil {
		s.logger.Error("render failed", "slide", index, "format", format, "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	if err := s.store.Set(r.Context(), key, data, cache.DefaultTTL); err != nil {
		s.logger.Debug("cache store failed", "error", err)
	} else {
		observability.Cache().OnCacheSet(r.Context(), "render", len(data))
	}

	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(data)
}
