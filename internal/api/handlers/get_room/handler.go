package get_room

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

// Handle GET /api/v1/rooms/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	room, err := h.service.Get(r.Context(), roomID)
	if err != nil {
		h.respondError(w, "GET /rooms/{id}", roomID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, room)
}

// HandleByNumber GET /api/v1/rooms/number/{number}
func (h *Handler) HandleByNumber(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	number := vars["number"]

	room, err := h.service.GetByNumber(r.Context(), number)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/number/{number} - Room not found: number=%s", number)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /rooms/number/{number} - Failed: number=%s, error=%v", number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, room)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, roomID int64, err error) {
	switch {
	case errors.Is(err, rooms.ErrRoomNotFound):
		h.logger.Warn("%s - Room not found: room_id=%d", route, roomID)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		h.logger.Error("%s - Failed to get room: room_id=%d, error=%v", route, roomID, err)
		handlers.RespondInternalError(w)
	}
}
