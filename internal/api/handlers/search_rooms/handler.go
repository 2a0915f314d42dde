package search_rooms

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/hotelharmony/hotel-ops-service/internal/api/handlers"
	"github.com/hotelharmony/hotel-ops-service/internal/domain"
	"github.com/hotelharmony/hotel-ops-service/internal/usecase/search_rooms"
)

const msgInvalidQuery = "invalid search parameters, expected checkIn and checkOut as YYYY-MM-DD"

type Handler struct {
	useCase SearchRoomsUseCase
	logger  Logger
}

func NewHandler(useCase SearchRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/search?checkIn=2025-10-15&checkOut=2025-10-18&guests=2&type=deluxe
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r)
	if err != nil {
		h.logger.Warn("GET /rooms/search - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, search_rooms.ErrInvalidInput),
			errors.Is(err, search_rooms.ErrInvalidDate),
			errors.Is(err, search_rooms.ErrStayTooLong):
			h.logger.Warn("GET /rooms/search - Invalid stay: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /rooms/search - Search failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/search - %d rooms available", len(resp.Rooms))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}

func parseQuery(r *http.Request) (*search_rooms.Request, error) {
	query := r.URL.Query()

	checkIn, err := time.Parse(domain.DateFormat, query.Get("checkIn"))
	if err != nil {
		return nil, err
	}
	checkOut, err := time.Parse(domain.DateFormat, query.Get("checkOut"))
	if err != nil {
		return nil, err
	}

	req := &search_rooms.Request{
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}

	if value := query.Get("guests"); value != "" {
		guests, err := strconv.Atoi(value)
		if err != nil {
			return nil, err
		}
		req.Guests = &guests
	}
	if value := query.Get("type"); value != "" {
		req.RoomType = &value
	}

	return req, nil
}
