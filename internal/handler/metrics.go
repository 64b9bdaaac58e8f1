package handler

import (
	"fmt"
	"net/http"

	"github.com/rosterhq/roster/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns counters in Prometheus exposition format.
//
// GET /metrics
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "roster_users_created_total %d\n", snap.UsersCreated)
	writeMetric(w, "roster_users_updated_total %d\n", snap.UsersUpdated)
	writeMetric(w, "roster_users_deleted_total %d\n", snap.UsersDeleted)
	writeMetric(w, "roster_users_listed_total %d\n", snap.UsersListed)
	writeMetric(w, "roster_users_not_found_total %d\n", snap.UsersNotFound)
	writeMetric(w, "roster_validations_failed_total %d\n", snap.ValidationsFailed)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
