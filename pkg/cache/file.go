package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// ArtifactStore persists rendered slide artifacts on disk so a preview
// session survives restarts without re-rendering unchanged slides.
// Each artifact is written as a JSON envelope carrying its expiry.
type ArtifactStore struct {
	dir string
}

// NewArtifactStore opens (creating if needed) an on-disk artifact store
// rooted at dir.
func NewArtifactStore(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &ArtifactStore{dir: dir}, nil
}

// artifact is the on-disk envelope around a rendered slide.
type artifact struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Get reads an artifact from disk. Expired or corrupt entries are
// removed and reported as misses so the caller simply re-renders.
func (s *ArtifactStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := s.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}

	if !a.ExpiresAt.IsZero() && time.Now().After(a.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return a.Data, true, nil
}

// Set writes an artifact to disk. A ttl of zero keeps it until the
// deck hash changes and the key stops being asked for.
func (s *ArtifactStore) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	a := artifact{
		Data: data,
	}
	if ttl > 0 {
		a.ExpiresAt = time.Now().Add(ttl)
	}

	envelope, err := json.Marshal(a)
	if err != nil {
		return err
	}

	path := s.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, envelope, 0644)
}

// Delete removes an artifact. Deleting a missing key is not an error.
func (s *ArtifactStore) Delete(ctx context.Context, key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for an on-disk store.
func (s *ArtifactStore) Close() error {
	return nil
}

// path maps a key to dir/<hash[:2]>/<hash[2:]>.json. Sharding on the
// first byte keeps a full deck of slides from piling into one directory.
func (s *ArtifactStore) path(key string) string {
	sum := Hash([]byte(key))
	return filepath.Join(s.dir, sum[:2], sum[2:]+".json")
}

var _ Cache = (*ArtifactStore)(nil)
