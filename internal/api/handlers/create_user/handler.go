package create_user

import (
	"errors"
	"net/http"

	"github.com/hotelharmony/hotel-ops-service/internal/api/handlers"
	"github.com/hotelharmony/hotel-ops-service/internal/service/users"
	"github.com/hotelharmony/hotel-ops-service/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUsernameTaken      = "username already taken"
	msgEmailTaken         = "email already taken"
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

// Handle POST /api/v1/users
// Manager-only account creation, any role is allowed here.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUsernameTaken):
			h.logger.Warn("POST /users - Username taken: %s", req.Username)
			handlers.RespondConflict(w, msgUsernameTaken)

		case errors.Is(err, users.ErrEmailTaken):
			h.logger.Warn("POST /users - Email taken: %s", req.Email)
			handlers.RespondConflict(w, msgEmailTaken)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("POST /users - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /users - Failed to create user: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users - Account created: id=%d, role=%s", user.ID, user.Role)
	handlers.RespondJSON(w, http.StatusCreated, user)
}
