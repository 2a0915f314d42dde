package set_user_enabled

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hotelharmony/hotel-ops-service/internal/api/handlers"
	"github.com/hotelharmony/hotel-ops-service/internal/service/users"
)

const (
	msgInvalidUserID      = "invalid user ID"
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "user not found"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/users/{userId}/enabled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /users/{id}/enabled - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /users/{id}/enabled - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetEnabled(r.Context(), userID, req.Enabled); err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("PATCH /users/{id}/enabled - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /users/{id}/enabled - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /users/{id}/enabled - Account user_id=%d enabled=%t", userID, req.Enabled)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
