package list_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/hotelharmony/hotel-ops-service/internal/api/handlers"
	"github.com/hotelharmony/hotel-ops-service/internal/service/bookings"
	"github.com/hotelharmony/hotel-ops-service/internal/service/bookings/models"
)

const msgInvalidQuery = "invalid query parameters"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?roomId=12&status=reserved&startDate=2025-10-01&endDate=2025-10-31
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /bookings - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

func parseQuery(r *http.Request) (*models.ListBookingsRequest, error) {
	query := r.URL.Query()
	req := &models.ListBookingsRequest{}

	if value := query.Get("roomId"); value != "" {
		roomID, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, err
		}
		req.RoomID = &roomID
	}
	if value := query.Get("guestId"); value != "" {
		guestID, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, err
		}
		req.GuestID = &guestID
	}
	if value := query.Get("status"); value != "" {
		req.Status = &value
	}
	if value := query.Get("startDate"); value != "" {
		req.StartDate = &value
	}
	if value := query.Get("endDate"); value != "" {
		req.EndDate = &value
	}
	if value := query.Get("includeInactive"); value != "" {
		include, err := strconv.ParseBool(value)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = include
	}

	return req, nil
}
