// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rosterhq/roster/internal/handler/dto"
)

// Error codes exposed to API clients.
const (
	CodeValidationError  = "VALIDATION_ERROR"
	CodeResourceNotFound = "RESOURCE_NOT_FOUND"
	CodeInternalError    = "INTERNAL_ERROR"
	CodeRouteNotFound    = "ROUTE_NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

// Handler provides fallback and informational endpoints.
type Handler struct{}

// New creates a new Handler instance.
func New() *Handler {
	return &Handler{}
}

// Hello is the root info endpoint.
// GET /
func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]string{
		"service": "roster",
		"version": "0.1.0",
	})
}

// NotFound handles requests for unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, CodeRouteNotFound, "Route not found", nil)
}

// MethodNotAllowed handles 405 responses.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "Method not allowed", nil)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already out; nothing useful left to do.
		_ = err
	}
}

// writeSuccess writes a success envelope around the given data.
func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, dto.SuccessResponse{
		Status: "success",
		Data:   data,
	})
}

// writeError writes an error envelope. The errors map is optional.
func writeError(w http.ResponseWriter, status int, code, message string, errs map[string][]string) {
	writeJSON(w, status, dto.ErrorResponse{
		Status:    "error",
		Message:   message,
		ErrorCode: code,
		Errors:    errs,
	})
}
