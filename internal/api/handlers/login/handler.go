package login

import (
	"errors"
	"net/http"

	"github.com/hotelharmony/hotel-ops-service/internal/api/handlers"
	"github.com/hotelharmony/hotel-ops-service/internal/service/users"
	"github.com/hotelharmony/hotel-ops-service/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgBadCredentials     = "invalid username or password"
	msgAccountDisabled    = "account disabled"
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

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	auth, err := h.service.Authenticate(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Bad credentials for username=%s", req.Username)
			handlers.RespondUnauthorized(w, msgBadCredentials)

		case errors.Is(err, users.ErrAccountDisabled):
			h.logger.Warn("POST /auth/login - Disabled account: username=%s", req.Username)
			handlers.RespondForbidden(w, msgAccountDisabled)

		default:
			h.logger.Error("POST /auth/login - Failed to authenticate: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - Login successful: user_id=%d", auth.User.ID)
	handlers.RespondJSON(w, http.StatusOK, auth)
}
