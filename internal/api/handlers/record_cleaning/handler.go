package record_cleaning

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hotelharmony/hotel-ops-service/internal/api/handlers"
	"github.com/hotelharmony/hotel-ops-service/internal/service/rooms"
)

const (
	msgInvalidRoomID = "invalid room ID"
	msgNotFound      = "room not found"
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

// Handle POST /api/v1/rooms/{roomId}/cleaning
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/cleaning - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	room, err := h.service.RecordCleaning(r.Context(), roomID)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("POST /rooms/{id}/cleaning - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /rooms/{id}/cleaning - Failed: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms/{id}/cleaning - Cleaning recorded: room_id=%d", roomID)
	handlers.RespondJSON(w, http.StatusOK, room)
}
