// Package metrics exposes the Prometheus instrumentation for the API
// and the snapshot-refresh machinery.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arcade_http_requests_total",
		Help: "HTTP requests served, by method and status code.",
	}, []string{"method", "status"})

	NotificationsReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arcade_realtime_notifications_total",
		Help: "Change notifications received from the database, by table.",
	}, []string{"table"})

	SnapshotRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arcade_snapshot_refreshes_total",
		Help: "Snapshot refresh attempts, by collection and result.",
	}, []string{"collection", "result"})

	RefreshTriggersCollapsed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arcade_refresh_triggers_collapsed_total",
		Help: "Refresh triggers absorbed by an already-pending refresh.",
	}, []string{"collection"})
)

// Handler serves the /metrics endpoint.
func Handler() http.Handler { return promhttp.Handler() }

// Middleware counts every request by method and final status.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)
		HTTPRequests.WithLabelValues(r.Method, strconv.Itoa(ww.status)).Inc()
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
