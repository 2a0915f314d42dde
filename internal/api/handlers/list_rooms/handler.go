package list_rooms

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/hotelharmony/hotel-ops-service/internal/api/handlers"
	"github.com/hotelharmony/hotel-ops-service/internal/service/rooms"
	"github.com/hotelharmony/hotel-ops-service/internal/service/rooms/models"
)

const msgInvalidFilter = "invalid filter"

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

// Handle GET /api/v1/rooms?type=deluxe&status=available&clean=true&minCapacity=2
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r)
	if err != nil {
		h.logger.Warn("GET /rooms - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /rooms - Failed to list rooms: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

func parseQuery(r *http.Request) (*models.ListRoomsRequest, error) {
	query := r.URL.Query()
	req := &models.ListRoomsRequest{}

	if value := query.Get("type"); value != "" {
		req.Type = &value
	}
	if value := query.Get("status"); value != "" {
		req.Status = &value
	}
	if value := query.Get("clean"); value != "" {
		clean, err := strconv.ParseBool(value)
		if err != nil {
			return nil, err
		}
		req.CleanOnly = clean
	}
	if value := query.Get("minCapacity"); value != "" {
		capacity, err := strconv.Atoi(value)
		if err != nil {
			return nil, err
		}
		req.MinCapacity = &capacity
	}

	return req, nil
}
