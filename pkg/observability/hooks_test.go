package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	d := NoopDeckHooks{}
	d.OnBuildComplete(ctx, 90, time.Second, nil)
	d.OnRenderComplete(ctx, "svg", 1024, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "render")
	c.OnCacheMiss(ctx, "render")
	c.OnCacheSet(ctx, "render", 1024)
}

type countingCacheHooks struct {
	NoopCacheHooks
	hits, misses int
}

func (h *countingCacheHooks) OnCacheHit(context.Context, string)  { h.hits++ }
func (h *countingCacheHooks) OnCacheMiss(context.Context, string) { h.misses++ }

func TestSetCacheHooks(t *testing.T) {
	defer Reset()

	h := &countingCacheHooks{}
	SetCacheHooks(h)

	Cache().OnCacheHit(context.Background(), "render")
	Cache().OnCacheMiss(context.Background(), "render")

	if h.hits != 1 || h.misses != 1 {
		t.Errorf("hits = %d, misses = %d, want 1 and 1", h.hits, h.misses)
	}
}

func TestSetNilKeepsDefaults(t *testing.T) {
	defer Reset()

	SetDeckHooks(nil)
	SetCacheHooks(nil)

	if Deck() == nil || Cache() == nil {
		t.Error("nil registration must keep the no-op defaults")
	}
}

func TestReset(t *testing.T) {
	SetCacheHooks(&countingCacheHooks{})
	Reset()

	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset should restore the no-op cache hooks")
	}
}
