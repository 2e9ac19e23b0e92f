// Package cache provides pluggable byte caches used by the preview
// server to avoid re-rendering slides that have not changed.
package cache

import (
	"context"
	"time"
)

// DefaultTTL bounds how long a rendered slide artifact stays valid.
// Preview sessions rarely outlive it, and the deck hash in the key
// already invalidates artifacts on any content change.
const DefaultTTL = time.Hour

// Cache stores rendered artifacts keyed by content hash.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// RenderKey generates the cache key for a rendered slide artifact.
// The deck hash captures the full deck geometry and content, so any
// change to config or readings produces a new key.
func RenderKey(deckHash string, slide int, format string) string {
	return hashKey("render", deckHash, slide, format)
}
