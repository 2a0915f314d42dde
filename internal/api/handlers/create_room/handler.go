package create_room

import (
	"errors"
	"net/http"

	"github.com/hotelharmony/hotel-ops-service/internal/api/handlers"
	"github.com/hotelharmony/hotel-ops-service/internal/service/rooms"
	"github.com/hotelharmony/hotel-ops-service/internal/service/rooms/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNumberTaken        = "room number already taken"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	room, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrNumberTaken):
			h.logger.Warn("POST /rooms - Room number taken: %s", req.Number)
			handlers.RespondConflict(w, msgNumberTaken)

		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("POST /rooms - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /rooms - Failed to create room: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms - Room created: id=%d, number=%s", room.ID, room.Number)
	handlers.RespondJSON(w, http.StatusCreated, room)
}
