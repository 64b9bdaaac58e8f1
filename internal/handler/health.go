package handler

import (
	"net/http"
	"strconv"
)

// UserCounter reports the size of the backing user store.
type UserCounter interface {
	Count() int
}

// HealthHandler manages health check endpoints.
type HealthHandler struct {
	store UserCounter
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store UserCounter) *HealthHandler {
	return &HealthHandler{store: store}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Healthz is a liveness probe endpoint.
// It returns 200 if the server is running.
//
// GET /healthz
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readyz is a readiness probe endpoint. The store lives in process, so
// readiness only reports its size; there is no dependency that can fail.
//
// GET /readyz
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{
		"store": "ok, " + strconv.Itoa(h.store.Count()) + " users",
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Checks: checks})
}
