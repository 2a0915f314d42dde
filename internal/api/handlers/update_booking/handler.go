package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hotelharmony/hotel-ops-service/internal/api/handlers"
	"github.com/hotelharmony/hotel-ops-service/internal/api/middleware"
	"github.com/hotelharmony/hotel-ops-service/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID   = "invalid booking ID"
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "booking not found"
	msgAccessDenied       = "access denied"
	msgCannotUpdate       = "booking can no longer be updated"
	msgRoomNotAvailable   = "room not available for the requested dates"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	callerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}
	callerRole, _ := middleware.GetRole(r.Context())

	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest(bookingID, callerID, callerRole)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid payload: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	resp, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, update_booking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, update_booking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id} - Access denied: booking_id=%d, user_id=%d", bookingID, callerID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, update_booking.ErrCannotUpdate):
			h.logger.Warn("PATCH /bookings/{id} - Past the point of change: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgCannotUpdate)

		case errors.Is(err, update_booking.ErrRoomNotAvailable):
			h.logger.Warn("PATCH /bookings/{id} - Room not available: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgRoomNotAvailable)

		case errors.Is(err, update_booking.ErrInvalidInput),
			errors.Is(err, update_booking.ErrRoomTooSmall),
			errors.Is(err, update_booking.ErrInvalidDate),
			errors.Is(err, update_booking.ErrStayTooLong),
			errors.Is(err, update_booking.ErrDateTooFarInFuture):
			h.logger.Warn("PATCH /bookings/{id} - Rejected: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /bookings/{id} - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id} - Booking updated: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
