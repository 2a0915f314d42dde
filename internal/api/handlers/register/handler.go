package register

import (
	"errors"
	"net/http"

	"github.com/hotelharmony/hotel-ops-service/internal/api/handlers"
	"github.com/hotelharmony/hotel-ops-service/internal/domain"
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

// Handle POST /api/v1/auth/register
// Self-serve registration always creates a guest account. Staff accounts
// are created by a manager through POST /api/v1/users.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req.Role = string(domain.RoleGuest)
	req.Department = nil
	req.Position = nil

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUsernameTaken):
			h.logger.Warn("POST /auth/register - Username taken: %s", req.Username)
			handlers.RespondConflict(w, msgUsernameTaken)

		case errors.Is(err, users.ErrEmailTaken):
			h.logger.Warn("POST /auth/register - Email taken: %s", req.Email)
			handlers.RespondConflict(w, msgEmailTaken)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("POST /auth/register - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /auth/register - Failed to register: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - Guest registered: id=%d", user.ID)
	handlers.RespondJSON(w, http.StatusCreated, user)
}
