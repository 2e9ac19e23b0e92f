// Package observability provides hooks for metrics and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about deck builds, slide rendering, and cache operations.
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDeckHooks(&myDeckHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Deck Hooks
// =============================================================================

// DeckHooks receives events from deck assembly and rendering.
type DeckHooks interface {
	// OnBuildComplete records a deck build.
	OnBuildComplete(ctx context.Context, slideCount int, duration time.Duration, err error)

	// OnRenderComplete records a single slide or whole-deck render.
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDeckHooks is a no-op implementation of DeckHooks.
type NoopDeckHooks struct{}

func (NoopDeckHooks) OnBuildComplete(context.Context, int, time.Duration, error)          {}
func (NoopDeckHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	deckHooks  DeckHooks  = NoopDeckHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	hooksMu    sync.RWMutex
)

// SetDeckHooks registers custom deck hooks.
// This should be called once at application startup before any deck operations.
func SetDeckHooks(h DeckHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		deckHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Deck returns the registered deck hooks.
func Deck() DeckHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return deckHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	deckHooks = NoopDeckHooks{}
	cacheHooks = NoopCacheHooks{}
}
