package preview

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/nilavan/kanadeck/pkg/cache"
	"github.com/nilavan/kanadeck/pkg/deck"
	"github.com/nilavan/kanadeck/pkg/fonts"
	"github.com/nilavan/kanadeck/pkg/kana"
	"github.com/nilavan/kanadeck/pkg/render"
)

func newTestServer(t *testing.T, renderer *render.Renderer) *Server {
	t.Helper()
	s, err := New(log.New(io.Discard), renderer, cache.NewMemoryCache(), func() (*deck.Deck, error) {
		return deck.Build(deck.DefaultConfig(), kana.DefaultReadings)
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return s
}

// newTestRenderer resolves system fonts, skipping when none are installed.
func newTestRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	set, err := fonts.Resolve("", "")
	if err != nil {
		t.Skipf("no suitable system fonts: %v", err)
	}
	r, err := render.New(set)
	if err != nil {
		t.Fatalf("render.New error: %v", err)
	}
	return r
}

func TestServerDeckJSON(t *testing.T) {
	s := newTestServer(t, nil)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/deck.json")
	if err != nil {
		t.Fatalf("GET /deck.json: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var d deck.Deck
	if err := json.NewDecoder(resp.Body).Decode(&d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(d.Slides) == 0 {
		t.Error("deck.json has no slides")
	}
}

func TestServerIndex(t *testing.T) {
	s := newTestServer(t, nil)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestServerSlideBounds(t *testing.T) {
	s := newTestServer(t, nil)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	tests := []struct {
		path string
		want int
	}{
		{"/slides/9999.svg", http.StatusNotFound},
		{"/slides/-1.svg", http.StatusNotFound},
		{"/slides/abc.svg", http.StatusBadRequest},
	}
	for _, tt := range tests {
		resp, err := http.Get(srv.URL + tt.path)
		if err != nil {
			t.Fatalf("GET %s: %v", tt.path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != tt.want {
			t.Errorf("GET %s status = %d, want %d", tt.path, resp.StatusCode, tt.want)
		}
	}
}

func TestServerSlideSVG(t *testing.T) {
	s := newTestServer(t, newTestRenderer(t))
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	// First request renders, second hits the cache. Both must agree.
	var bodies [][]byte
	for i := 0; i < 2; i++ {
		resp, err := http.Get(srv.URL + "/slides/0.svg")
		if err != nil {
			t.Fatalf("GET /slides/0.svg: %v", err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
			t.Errorf("Content-Type = %q, want image/svg+xml", ct)
		}
		bodies = append(bodies, body)
	}
	if string(bodies[0]) != string(bodies[1]) {
		t.Error("cached response differs from rendered response")
	}
}

func TestReloadRecomputesHash(t *testing.T) {
	s := newTestServer(t, nil)
	_, _, before := s.snapshot()

	if err := s.Reload(); err != nil {
		t.Fatalf("Reload error: %v", err)
	}
	_, _, after := s.snapshot()

	// Same inputs produce the same deck, so the hash must be stable.
	if before != after {
		t.Errorf("hash changed across identical rebuilds: %s vs %s", before, after)
	}
}
