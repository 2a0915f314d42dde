package check_in

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hotelharmony/hotel-ops-service/internal/api/handlers"
	"github.com/hotelharmony/hotel-ops-service/internal/service/bookings"
)

const (
	msgInvalidBookingID = "invalid booking ID"
	msgNotFound         = "booking not found"
	msgCannotCheckIn    = "booking is not ready for check-in"
	msgTooEarly         = "check-in date has not arrived yet"
	msgTooLate          = "stay dates have already passed"
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

// Handle POST /api/v1/bookings/{bookingId}/check-in
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/check-in - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.service.CheckIn(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/check-in - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrCannotCheckIn):
			h.logger.Warn("POST /bookings/{id}/check-in - Illegal transition: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgCannotCheckIn)

		case errors.Is(err, bookings.ErrCheckInTooEarly):
			h.logger.Warn("POST /bookings/{id}/check-in - Too early: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgTooEarly)

		case errors.Is(err, bookings.ErrCheckInTooLate):
			h.logger.Warn("POST /bookings/{id}/check-in - Stay already over: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgTooLate)

		default:
			h.logger.Error("POST /bookings/{id}/check-in - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/check-in - Guest checked in: booking_id=%d, room_id=%d", bookingID, booking.RoomID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
