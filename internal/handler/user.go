package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rosterhq/roster/internal/handler/dto"
	"github.com/rosterhq/roster/internal/metrics"
	"github.com/rosterhq/roster/internal/model"
	"github.com/rosterhq/roster/internal/service"
	"github.com/rosterhq/roster/internal/validation"
)

// Query parameter defaults and bounds for the list endpoint.
const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	svc     *service.UserService
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService, logger *slog.Logger, recorder metrics.Recorder) *UserHandler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserHandler{
		svc:     svc,
		logger:  logger,
		metrics: recorder,
	}
}

// List handles GET /api/v1/users.
// page below 1 is clamped to 1; limit outside [1,100] falls back to 10.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := defaultPage
	if p := query.Get("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil {
			page = parsed
		}
	}
	if page < 1 {
		page = 1
	}

	limit := defaultLimit
	if l := query.Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil {
			limit = parsed
		}
	}
	if limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}

	search := query.Get("search")
	users, pagination := h.svc.ListUsers(page, limit, search)

	h.logger.Info("users_listed",
		"page", pagination.Page,
		"limit", pagination.Limit,
		"search", search,
		"total", pagination.Total,
	)

	writeSuccess(w, http.StatusOK, dto.ToUserListData(users, pagination))
}

// Create handles POST /api/v1/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.handleServiceError(w, validation.NewError(validation.GeneralField, "Invalid JSON payload"))
		return
	}

	req, err := validation.ParseCreateUser(body)
	if err != nil {
		h.metrics.IncValidationFailed()
		h.handleServiceError(w, err)
		return
	}

	user, err := h.svc.CreateUser(req.Name, req.Email)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("user_created", "user_id", user.ID)
	writeSuccess(w, http.StatusCreated, dto.UserData{User: dto.ToUserResponse(user)})
}

// Get handles GET /api/v1/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, ok := h.svc.GetUser(id)
	if !ok {
		h.writeNotFound(w, id)
		return
	}

	writeSuccess(w, http.StatusOK, dto.UserData{User: dto.ToUserResponse(user)})
}

// Update handles PUT /api/v1/users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.handleServiceError(w, validation.NewError(validation.GeneralField, "Invalid JSON payload"))
		return
	}

	req, err := validation.ParseUpdateUser(body)
	if err != nil {
		h.metrics.IncValidationFailed()
		h.handleServiceError(w, err)
		return
	}

	user, err := h.svc.UpdateUser(id, model.UserPatch{Name: req.Name, Email: req.Email})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	if user == nil {
		h.writeNotFound(w, id)
		return
	}

	h.logger.Info("user_updated", "user_id", user.ID)
	writeSuccess(w, http.StatusOK, dto.UserData{User: dto.ToUserResponse(user)})
}

// Delete handles DELETE /api/v1/users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if !h.svc.DeleteUser(id) {
		h.writeNotFound(w, id)
		return
	}

	h.logger.Info("user_deleted", "user_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// handleServiceError maps service and validation errors to HTTP responses.
func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		h.logger.Warn("validation_error", "errors", verr.Fields)
		writeError(w, http.StatusBadRequest, CodeValidationError, "Invalid request parameters", verr.Fields)
		return
	}

	h.logger.Error("internal_error", "error", err)
	writeError(w, http.StatusInternalServerError, CodeInternalError, "Internal server error", nil)
}

func (h *UserHandler) writeNotFound(w http.ResponseWriter, id string) {
	h.metrics.IncUserNotFound()
	h.logger.Warn("user_not_found", "user_id", id)
	writeError(w, http.StatusNotFound, CodeResourceNotFound, "User not found", nil)
}
