package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
	roomRepo "github.com/hotelharmony/hotel-ops-service/internal/infra/storage/room"
)

// UseCase reserves a room for a stay. The availability check and the insert
// run in one serializable transaction, with the room's active bookings
// locked, so two concurrent requests for the same dates cannot both succeed.
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the booking creation use case.
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute reserves the room.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: guest=%d, room=%d, stay=%s..%s, guests=%d",
		req.GuestID, req.RoomID,
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.Guests)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	checkIn := domain.DateOnly(req.CheckIn)
	checkOut := domain.DateOnly(req.CheckOut)

	if err := validateStay(checkIn, checkOut, now); err != nil {
		uc.logger.Warn("CreateBooking: stay validation failed: %v", err)
		return nil, err
	}

	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	if !room.IsBookable() {
		uc.logger.Warn("CreateBooking: room id=%d is under maintenance", room.ID)
		return nil, ErrRoomNotBookable
	}

	if !room.FitsGuests(req.Guests) {
		uc.logger.Warn("CreateBooking: room id=%d fits %d, requested %d", room.ID, room.Capacity, req.Guests)
		return nil, ErrRoomTooSmall
	}

	var result *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Active bookings for the room are read with FOR UPDATE inside the
		// transaction, serializing concurrent attempts on the same room.
		active, err := uc.bookingRepo.ListActiveForRoom(txCtx, req.RoomID, checkIn, checkOut)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list active bookings: %v", err)
			return fmt.Errorf("%w: failed to list active bookings: %v", ErrInternal, err)
		}

		if hasOverlap(active, checkIn, checkOut, 0) {
			uc.logger.Warn("CreateBooking: room id=%d already booked for %s..%s",
				req.RoomID, checkIn.Format(domain.DateFormat), checkOut.Format(domain.DateFormat))
			return ErrRoomNotAvailable
		}

		booking := &domain.Booking{
			Code:            uuid.NewString(),
			GuestID:         req.GuestID,
			RoomID:          req.RoomID,
			CheckIn:         checkIn,
			CheckOut:        checkOut,
			Guests:          req.Guests,
			TotalPrice:      domain.StayPrice(room.NightlyRate, checkIn, checkOut),
			Status:          domain.StatusReserved,
			PaymentStatus:   domain.PaymentPending,
			SpecialRequests: req.SpecialRequests,
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.IncBookingsCreated(string(room.Type))
	uc.logger.Info("CreateBooking: booking created: id=%d, code=%s, total=%.2f",
		result.ID, result.Code, result.TotalPrice)

	return &Response{
		ID:              result.ID,
		Code:            result.Code,
		GuestID:         result.GuestID,
		RoomID:          result.RoomID,
		RoomNumber:      room.Number,
		CheckIn:         result.CheckIn,
		CheckOut:        result.CheckOut,
		Nights:          result.Nights(),
		Guests:          result.Guests,
		TotalPrice:      result.TotalPrice,
		Status:          string(result.Status),
		PaymentStatus:   string(result.PaymentStatus),
		SpecialRequests: result.SpecialRequests,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
	}, nil
}
