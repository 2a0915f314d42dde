package front_desk

import (
	"errors"
	"net/http"

	"github.com/hotelharmony/hotel-ops-service/internal/api/handlers"
	"github.com/hotelharmony/hotel-ops-service/internal/domain"
	"github.com/hotelharmony/hotel-ops-service/internal/service/bookings"
)

type Handler struct {
	service BookingService
	timer   TimeProvider
	logger  Logger
}

func NewHandler(service BookingService, timer TimeProvider, logger Logger) *Handler {
	return &Handler{
		service: service,
		timer:   timer,
		logger:  logger,
	}
}

// HandleArrivals GET /api/v1/front-desk/arrivals?date=2025-10-15
func (h *Handler) HandleArrivals(w http.ResponseWriter, r *http.Request) {
	date := h.dateParam(r)

	list, err := h.service.Arrivals(r.Context(), date)
	if err != nil {
		h.respondServiceError(w, "GET /front-desk/arrivals", date, err)
		return
	}

	h.logger.Info("GET /front-desk/arrivals - %d arrivals on %s", list.Total, date)
	handlers.RespondJSON(w, http.StatusOK, list)
}

// HandleDepartures GET /api/v1/front-desk/departures?date=2025-10-15
func (h *Handler) HandleDepartures(w http.ResponseWriter, r *http.Request) {
	date := h.dateParam(r)

	list, err := h.service.Departures(r.Context(), date)
	if err != nil {
		h.respondServiceError(w, "GET /front-desk/departures", date, err)
		return
	}

	h.logger.Info("GET /front-desk/departures - %d departures on %s", list.Total, date)
	handlers.RespondJSON(w, http.StatusOK, list)
}

func (h *Handler) dateParam(r *http.Request) string {
	if date := r.URL.Query().Get("date"); date != "" {
		return date
	}
	return h.timer.Now().Format(domain.DateFormat)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route, date string, err error) {
	switch {
	case errors.Is(err, bookings.ErrInvalidInput):
		h.logger.Warn("%s - Invalid date: %s", route, date)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Failed: date=%s, error=%v", route, date, err)
		handlers.RespondInternalError(w)
	}
}
