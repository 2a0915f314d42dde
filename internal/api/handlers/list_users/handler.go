package list_users

import (
	"errors"
	"net/http"

	"github.com/hotelharmony/hotel-ops-service/internal/api/handlers"
	"github.com/hotelharmony/hotel-ops-service/internal/service/users"
)

const msgInvalidRole = "unknown role"

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

// Handle GET /api/v1/users?role=receptionist
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var role *string
	if value := r.URL.Query().Get("role"); value != "" {
		role = &value
	}

	list, err := h.service.List(r.Context(), role)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("GET /users - Invalid role filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRole)

		default:
			h.logger.Error("GET /users - Failed to list users: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}
