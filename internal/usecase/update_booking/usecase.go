package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
	bookingRepo "github.com/hotelharmony/hotel-ops-service/internal/infra/storage/booking"
	roomRepo "github.com/hotelharmony/hotel-ops-service/internal/infra/storage/room"
)

// UseCase reschedules a reserved booking: new dates, party size or notes.
// Date changes re-run the availability check and reprice the stay inside a
// serializable transaction, the booking's own dates do not conflict with
// themselves.
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the booking update use case.
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute applies the update.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking=%d, caller=%d", req.BookingID, req.CallerID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if req.CallerRole == domain.RoleGuest && booking.GuestID != req.CallerID {
		uc.logger.Warn("UpdateBooking: access denied: booking=%d, caller=%d", req.BookingID, req.CallerID)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeUpdated() {
		uc.logger.Warn("UpdateBooking: booking id=%d is %s, cannot update", booking.ID, booking.Status)
		return nil, ErrCannotUpdate
	}

	room, err := uc.roomRepo.GetByID(ctx, booking.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Error("UpdateBooking: room id=%d missing for booking id=%d", booking.RoomID, booking.ID)
			return nil, fmt.Errorf("%w: booked room is gone", ErrInternal)
		}
		uc.logger.Error("UpdateBooking: failed to get room id=%d: %v", booking.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	checkIn := booking.CheckIn
	checkOut := booking.CheckOut
	datesChanged := false
	if req.CheckIn != nil {
		checkIn = domain.DateOnly(*req.CheckIn)
		datesChanged = true
	}
	if req.CheckOut != nil {
		checkOut = domain.DateOnly(*req.CheckOut)
		datesChanged = true
	}

	if datesChanged {
		if err := validateStay(checkIn, checkOut, uc.timeProvider.Now()); err != nil {
			uc.logger.Warn("UpdateBooking: stay validation failed: %v", err)
			return nil, err
		}
	}

	guests := booking.Guests
	if req.Guests != nil {
		guests = *req.Guests
	}
	if !room.FitsGuests(guests) {
		uc.logger.Warn("UpdateBooking: room id=%d fits %d, requested %d", room.ID, room.Capacity, guests)
		return nil, ErrRoomTooSmall
	}

	booking.CheckIn = checkIn
	booking.CheckOut = checkOut
	booking.Guests = guests
	booking.TotalPrice = domain.StayPrice(room.NightlyRate, checkIn, checkOut)
	if req.SpecialRequests != nil {
		booking.SpecialRequests = req.SpecialRequests
	}
	if req.Notes != nil {
		booking.Notes = req.Notes
	}

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if datesChanged {
			active, err := uc.bookingRepo.ListActiveForRoom(txCtx, booking.RoomID, checkIn, checkOut)
			if err != nil {
				uc.logger.Error("UpdateBooking: failed to list active bookings: %v", err)
				return fmt.Errorf("%w: failed to list active bookings: %v", ErrInternal, err)
			}

			for _, other := range active {
				if other.ID == booking.ID || !other.IsActive() {
					continue
				}
				if other.Overlaps(checkIn, checkOut) {
					uc.logger.Warn("UpdateBooking: room id=%d already booked for %s..%s",
						booking.RoomID, checkIn.Format(domain.DateFormat), checkOut.Format(domain.DateFormat))
					return ErrRoomNotAvailable
				}
			}
		}

		if err := uc.bookingRepo.UpdateStay(txCtx, booking); err != nil {
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: booking updated: id=%d, stay=%s..%s, total=%.2f",
		booking.ID, checkIn.Format(domain.DateFormat), checkOut.Format(domain.DateFormat), booking.TotalPrice)

	return &Response{
		ID:              booking.ID,
		Code:            booking.Code,
		GuestID:         booking.GuestID,
		RoomID:          booking.RoomID,
		CheckIn:         booking.CheckIn,
		CheckOut:        booking.CheckOut,
		Nights:          booking.Nights(),
		Guests:          booking.Guests,
		TotalPrice:      booking.TotalPrice,
		Status:          string(booking.Status),
		PaymentStatus:   string(booking.PaymentStatus),
		SpecialRequests: booking.SpecialRequests,
		Notes:           booking.Notes,
	}, nil
}
