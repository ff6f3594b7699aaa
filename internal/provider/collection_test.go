package provider

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestLoadReplacesSnapshot(t *testing.T) {
	c := NewCollection("computers", func(ctx context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	})
	defer c.Close()
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := c.Snapshot()
	if len(got) != 2 || got[0] != "a" {
		t.Fatalf("snapshot = %v", got)
	}
}

func TestSnapshotNeverNil(t *testing.T) {
	c := NewCollection("computers", func(ctx context.Context) ([]string, error) {
		return nil, nil
	})
	defer c.Close()
	if c.Snapshot() == nil {
		t.Fatal("fresh snapshot is nil")
	}
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Snapshot() == nil {
		t.Fatal("snapshot is nil after loading an empty fetch result")
	}
}

func TestFailedFetchKeepsPreviousSnapshot(t *testing.T) {
	var fail atomic.Bool
	c := NewCollection("computers", func(ctx context.Context) ([]string, error) {
		if fail.Load() {
			return nil, errors.New("connection refused")
		}
		return []string{"a"}, nil
	})
	defer c.Close()
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	c.Start()

	fail.Store(true)
	c.Refresh()
	time.Sleep(50 * time.Millisecond)
	if got := c.Snapshot(); len(got) != 1 || got[0] != "a" {
		t.Fatalf("failed refresh mutated the snapshot: %v", got)
	}
}

func TestOverlappingRefreshesCollapseToOneCleanFetch(t *testing.T) {
	var fetches atomic.Int64
	block := make(chan struct{})
	c := NewCollection("computers", func(ctx context.Context) ([]string, error) {
		n := fetches.Add(1)
		if n == 1 {
			<-block
		}
		return []string{"final"}, nil
	})
	defer c.Close()
	c.Start()

	// Many triggers while the first fetch is blocked must collapse:
	// one in flight plus at most one queued.
	c.Refresh()
	waitFor(t, func() bool { return fetches.Load() == 1 })
	for i := 0; i < 25; i++ {
		c.Refresh()
	}
	close(block)

	waitFor(t, func() bool {
		s := c.Snapshot()
		return len(s) == 1 && s[0] == "final"
	})
	time.Sleep(50 * time.Millisecond)
	if n := fetches.Load(); n > 2 {
		t.Fatalf("expected at most 2 fetches for 26 triggers, got %d", n)
	}
}

func TestRefreshAfterCloseIsNoOp(t *testing.T) {
	var fetches atomic.Int64
	c := NewCollection("computers", func(ctx context.Context) ([]string, error) {
		fetches.Add(1)
		return []string{"x"}, nil
	})
	c.Start()
	c.Refresh()
	waitFor(t, func() bool { return fetches.Load() >= 1 })
	c.Close()

	before := fetches.Load()
	c.Refresh()
	c.Refresh()
	time.Sleep(50 * time.Millisecond)
	if fetches.Load() != before {
		t.Fatal("refresh after Close still fetched")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	c := NewCollection("computers", func(ctx context.Context) ([]string, error) {
		return nil, nil
	})
	c.Start()
	c.Close()
	c.Close()
}

func TestConcurrentRefreshAndSnapshot(t *testing.T) {
	c := NewCollection("computers", func(ctx context.Context) ([]string, error) {
		return []string{"a", "b", "c"}, nil
	})
	defer c.Close()
	c.Start()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Refresh()
				_ = c.Snapshot()
			}
		}()
	}
	wg.Wait()
	waitFor(t, func() bool { return len(c.Snapshot()) == 3 })
}

func TestGroupLoadingFlag(t *testing.T) {
	slow := NewCollection("computers", func(ctx context.Context) ([]string, error) {
		time.Sleep(30 * time.Millisecond)
		return []string{"a"}, nil
	})
	failing := NewCollection("peripherals", func(ctx context.Context) ([]string, error) {
		return nil, errors.New("boom")
	})
	g := NewGroup("storefront", slow, failing)
	if !g.Loading() {
		t.Fatal("group should report loading before Start")
	}
	g.Start(context.Background())
	defer g.Close()

	if g.Loading() {
		t.Fatal("loading should flip false once the first combined fetch settles")
	}
	if got := slow.Snapshot(); len(got) != 1 {
		t.Fatalf("slow collection snapshot = %v", got)
	}
	// The failed collection stays empty but present.
	if got := failing.Snapshot(); got == nil || len(got) != 0 {
		t.Fatalf("failing collection snapshot = %v, want empty non-nil", got)
	}
}

func TestGroupCloseStopsAllWorkers(t *testing.T) {
	var fetches atomic.Int64
	a := NewCollection("computers", func(ctx context.Context) ([]string, error) {
		fetches.Add(1)
		return nil, nil
	})
	b := NewCollection("peripherals", func(ctx context.Context) ([]string, error) {
		fetches.Add(1)
		return nil, nil
	})
	g := NewGroup("storefront", a, b)
	g.Start(context.Background())
	g.Close()

	before := fetches.Load()
	a.Refresh()
	b.Refresh()
	time.Sleep(50 * time.Millisecond)
	if fetches.Load() != before {
		t.Fatal("workers still fetching after group Close")
	}
}
