package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hotelharmony/hotel-ops-service/internal/api/handlers"
	"github.com/hotelharmony/hotel-ops-service/internal/api/middleware"
	"github.com/hotelharmony/hotel-ops-service/internal/service/bookings"
)

const (
	msgInvalidBookingID = "invalid booking ID"
	msgNotFound         = "booking not found"
	msgAccessDenied     = "access denied"
)

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

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	callerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}
	callerRole, _ := middleware.GetRole(r.Context())

	booking, err := h.service.GetByID(r.Context(), bookingID, callerID, callerRole)
	if err != nil {
		h.respondServiceError(w, "GET /bookings/{id}", bookingID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, booking)
}

// HandleByCode GET /api/v1/bookings/code/{code}
func (h *Handler) HandleByCode(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	callerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}
	callerRole, _ := middleware.GetRole(r.Context())

	booking, err := h.service.GetByCode(r.Context(), code, callerID, callerRole)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/code/{code} - Booking not found: code=%s", code)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/code/{code} - Access denied: code=%s, user_id=%d", code, callerID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /bookings/code/{code} - Failed: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, booking)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, bookingID int64, err error) {
	switch {
	case errors.Is(err, bookings.ErrBookingNotFound):
		h.logger.Warn("%s - Booking not found: booking_id=%d", route, bookingID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, bookings.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: booking_id=%d", route, bookingID)
		handlers.RespondForbidden(w, msgAccessDenied)

	default:
		h.logger.Error("%s - Failed: booking_id=%d, error=%v", route, bookingID, err)
		handlers.RespondInternalError(w)
	}
}
