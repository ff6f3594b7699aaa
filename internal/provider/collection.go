// Package provider keeps an in-process snapshot of each remote
// collection. Handlers read snapshots; writes and realtime change
// notifications request a refresh, which a single worker per
// collection collapses into one in-flight fetch.
package provider

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dev-guime/arcade-backend/internal/metrics"
)

// FetchFunc loads the full, ordered collection from the database.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Collection holds the current snapshot of one table. The snapshot is
// replaced whole on every successful fetch, never merged, so it always
// equals some clean read of server state. A failed fetch leaves the
// previous snapshot untouched.
type Collection[T any] struct {
	name  string
	fetch FetchFunc[T]

	mu    sync.RWMutex
	items []T

	// trigger has capacity 1: a pending refresh absorbs every further
	// request until the worker picks it up.
	trigger chan struct{}

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

func NewCollection[T any](name string, fetch FetchFunc[T]) *Collection[T] {
	ctx, cancel := context.WithCancel(context.Background())
	return &Collection[T]{
		name:    name,
		fetch:   fetch,
		items:   []T{},
		trigger: make(chan struct{}, 1),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Name identifies the collection to the realtime dispatcher; it equals
// the watched table name.
func (c *Collection[T]) Name() string { return c.name }

// Load fetches synchronously and replaces the snapshot. Used for the
// initial fill; on error the snapshot stays empty and startup proceeds.
func (c *Collection[T]) Load(ctx context.Context) error {
	items, err := c.fetch(ctx)
	if err != nil {
		metrics.SnapshotRefreshes.WithLabelValues(c.name, "error").Inc()
		return err
	}
	metrics.SnapshotRefreshes.WithLabelValues(c.name, "ok").Inc()
	c.replace(items)
	return nil
}

// Refresh requests a background re-fetch. It never blocks: if a
// refresh is already pending the request is absorbed by it.
func (c *Collection[T]) Refresh() {
	select {
	case c.trigger <- struct{}{}:
	default:
		metrics.RefreshTriggersCollapsed.WithLabelValues(c.name).Inc()
	}
}

// Snapshot returns the current items. The returned slice is shared and
// must be treated as read-only; it is never nil.
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items
}

// Start launches the refresh worker. Call once, after the initial Load.
func (c *Collection[T]) Start() {
	c.wg.Add(1)
	go c.run()
}

func (c *Collection[T]) run() {
	defer c.wg.Done()
	for {
		select {
		case <-c.ctx.Done():
			return
		case <-c.trigger:
		}
		items, err := c.fetch(c.ctx)
		if err != nil {
			metrics.SnapshotRefreshes.WithLabelValues(c.name, "error").Inc()
			slog.Error("snapshot refresh failed, keeping previous snapshot",
				"collection", c.name, "error", err)
			continue
		}
		// Do not publish a result that lands after teardown.
		select {
		case <-c.ctx.Done():
			return
		default:
		}
		metrics.SnapshotRefreshes.WithLabelValues(c.name, "ok").Inc()
		c.replace(items)
	}
}

func (c *Collection[T]) replace(items []T) {
	if items == nil {
		items = []T{}
	}
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
}

// Close stops the worker. Refresh calls after Close are no-ops.
func (c *Collection[T]) Close() {
	c.once.Do(func() {
		c.cancel()
		c.wg.Wait()
	})
}
