// Package realtime turns Postgres LISTEN/NOTIFY events into snapshot
// refreshes. Statement triggers installed by the migrator notify the table
// name on every insert, update or delete, regardless of which client
// performed the write.
package realtime

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/lib/pq"

	"github.com/dev-guime/arcade-backend/internal/database"
)

// Source yields the names of tables whose rows changed. An empty name
// means the origin cannot say which tables changed (e.g. the listener
// reconnected) and everything should be refreshed.
type Source interface {
	Events() <-chan string
	Close() error
}

// PQSource adapts lib/pq's LISTEN/NOTIFY listener to the Source
// interface.
type PQSource struct {
	listener *pq.Listener
	events   chan string
	done     chan struct{}
}

// NewPQSource opens a dedicated listener connection and subscribes to
// the shared notification channel.
func NewPQSource(dsn string) (*PQSource, error) {
	l := pq.NewListener(dsn, 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			slog.Error("realtime listener event", "event", ev, "error", err)
		}
	})
	if err := l.Listen(database.NotifyChannel); err != nil {
		_ = l.Close()
		return nil, fmt.Errorf("listen %s: %w", database.NotifyChannel, err)
	}
	s := &PQSource{
		listener: l,
		events:   make(chan string),
		done:     make(chan struct{}),
	}
	go s.pump()
	return s, nil
}

func (s *PQSource) pump() {
	defer close(s.events)
	for {
		select {
		case <-s.done:
			return
		case n, ok := <-s.listener.Notify:
			if !ok {
				return
			}
			// A nil notification signals a re-established connection;
			// events may have been missed, so request a full refresh.
			name := ""
			if n != nil {
				name = n.Extra
			}
			select {
			case s.events <- name:
			case <-s.done:
				return
			}
		}
	}
}

func (s *PQSource) Events() <-chan string { return s.events }

func (s *PQSource) Close() error {
	close(s.done)
	return s.listener.Close()
}
