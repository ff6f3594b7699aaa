package provider

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Syncable is the collection surface the group and the realtime
// dispatcher need; *Collection[T] implements it for every T.
type Syncable interface {
	Name() string
	Load(ctx context.Context) error
	Refresh()
	Start()
	Close()
}

// Group owns a set of collections with one shared lifecycle: a
// parallel initial fill, then background refresh workers. Loading is
// true only until the first combined fetch completes; background
// refreshes never flip it back.
type Group struct {
	name    string
	cols    []Syncable
	loading atomic.Bool
}

func NewGroup(name string, cols ...Syncable) *Group {
	g := &Group{name: name, cols: cols}
	g.loading.Store(true)
	return g
}

// Start performs the first fetch of every collection in parallel, then
// starts the refresh workers. A collection whose initial fetch fails
// stays empty rather than holding up the rest of the service.
func (g *Group) Start(ctx context.Context) {
	var wg sync.WaitGroup
	for _, c := range g.cols {
		wg.Add(1)
		go func(c Syncable) {
			defer wg.Done()
			if err := c.Load(ctx); err != nil {
				slog.Error("initial fetch failed, starting with empty snapshot",
					"group", g.name, "collection", c.Name(), "error", err)
			}
		}(c)
	}
	wg.Wait()
	g.loading.Store(false)
	for _, c := range g.cols {
		c.Start()
	}
}

// Loading reports whether the first combined fetch is still running.
func (g *Group) Loading() bool { return g.loading.Load() }

// Collections exposes the group members for subscription wiring.
func (g *Group) Collections() []Syncable { return g.cols }

// Close tears down every refresh worker.
func (g *Group) Close() {
	for _, c := range g.cols {
		c.Close()
	}
}
