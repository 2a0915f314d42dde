package create_booking

import (
	"errors"
	"net/http"

	"github.com/hotelharmony/hotel-ops-service/internal/api/handlers"
	"github.com/hotelharmony/hotel-ops-service/internal/api/middleware"
	"github.com/hotelharmony/hotel-ops-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgRoomNotFound       = "room not found"
	msgRoomNotAvailable   = "room not available for the requested dates"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}
	callerRole, _ := middleware.GetRole(r.Context())

	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest(callerID, callerRole)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid payload: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	resp, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, create_booking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, create_booking.ErrRoomNotAvailable):
			h.logger.Warn("POST /bookings - Room not available: room_id=%d, check_in=%s", req.RoomID, req.CheckIn)
			handlers.RespondConflict(w, msgRoomNotAvailable)

		case errors.Is(err, create_booking.ErrInvalidInput),
			errors.Is(err, create_booking.ErrRoomNotBookable),
			errors.Is(err, create_booking.ErrRoomTooSmall),
			errors.Is(err, create_booking.ErrInvalidDate),
			errors.Is(err, create_booking.ErrStayTooLong),
			errors.Is(err, create_booking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Rejected: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, code=%s, room_id=%d", resp.ID, resp.Code, resp.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
