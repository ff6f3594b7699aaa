package realtime

import (
	"log/slog"
	"sync"

	"github.com/dev-guime/arcade-backend/internal/metrics"
)

// Dispatcher routes change notifications to the refresh function of
// the collection watching that table. The kind of change is not
// distinguished; every event means "re-fetch".
type Dispatcher struct {
	src      Source
	handlers map[string]func()
	wg       sync.WaitGroup
	once     sync.Once
}

func NewDispatcher(src Source) *Dispatcher {
	return &Dispatcher{src: src, handlers: make(map[string]func())}
}

// Register binds a table name to a refresh function. Call before Run.
func (d *Dispatcher) Register(table string, refresh func()) {
	d.handlers[table] = refresh
}

// Run consumes events until Close. Unknown tables are logged and
// dropped; an empty table name refreshes every registered collection.
func (d *Dispatcher) Run() {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for table := range d.src.Events() {
			if table == "" {
				metrics.NotificationsReceived.WithLabelValues("*").Inc()
				for _, refresh := range d.handlers {
					refresh()
				}
				continue
			}
			metrics.NotificationsReceived.WithLabelValues(table).Inc()
			refresh, ok := d.handlers[table]
			if !ok {
				slog.Warn("change notification for unwatched table", "table", table)
				continue
			}
			refresh()
		}
	}()
}

// Close shuts the source down and waits for the dispatch loop to
// drain. Leaking the subscription across restarts of the owning
// provider would multiply refresh triggers, so Close is mandatory.
func (d *Dispatcher) Close() error {
	var err error
	d.once.Do(func() {
		err = d.src.Close()
		d.wg.Wait()
	})
	return err
}
