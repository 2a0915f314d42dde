package search_rooms

import (
	"context"
	"fmt"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
)

// UseCase finds rooms free for a stay. A room qualifies when it is not
// under maintenance, fits the party and has no active booking overlapping
// the requested dates.
type UseCase struct {
	roomRepo     RoomRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the availability search use case.
func NewUseCase(roomRepo RoomRepository, logger Logger) *UseCase {
	return &UseCase{
		roomRepo:     roomRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the search.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := uc.validate(req); err != nil {
		uc.logger.Warn("SearchRooms: validation failed: %v", err)
		return nil, err
	}

	checkIn := domain.DateOnly(req.CheckIn)
	checkOut := domain.DateOnly(req.CheckOut)

	filter := domain.RoomSearchFilter{Guests: req.Guests}
	if req.RoomType != nil {
		if !domain.ValidRoomType(*req.RoomType) {
			return nil, fmt.Errorf("%w: unknown room type %q", ErrInvalidInput, *req.RoomType)
		}
		roomType := domain.RoomType(*req.RoomType)
		filter.Type = &roomType
	}

	rooms, err := uc.roomRepo.FindAvailableBetween(ctx, checkIn, checkOut, filter)
	if err != nil {
		uc.logger.Error("SearchRooms: availability query failed: %v", err)
		return nil, fmt.Errorf("%w: availability query failed: %v", ErrInternal, err)
	}

	available := make([]*AvailableRoom, 0, len(rooms))
	for _, room := range rooms {
		available = append(available, &AvailableRoom{
			ID:          room.ID,
			Number:      room.Number,
			Type:        string(room.Type),
			Capacity:    room.Capacity,
			NightlyRate: room.NightlyRate,
			Floor:       room.Floor,
			Description: room.Description,
			Amenities:   room.Amenities,
			TotalPrice:  domain.StayPrice(room.NightlyRate, checkIn, checkOut),
		})
	}

	uc.logger.Info("SearchRooms: %d rooms available for %s..%s",
		len(available), checkIn.Format(domain.DateFormat), checkOut.Format(domain.DateFormat))

	return &Response{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Nights:   domain.NightsBetween(checkIn, checkOut),
		Rooms:    available,
	}, nil
}

func (uc *UseCase) validate(req *Request) error {
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: check-in and check-out dates are required", ErrInvalidInput)
	}

	if req.Guests != nil && *req.Guests <= 0 {
		return fmt.Errorf("%w: guests must be positive", ErrInvalidInput)
	}

	nights := domain.NightsBetween(req.CheckIn, req.CheckOut)
	if nights < domain.MinNights {
		return fmt.Errorf("%w: stay must be at least %d night(s)", ErrInvalidInput, domain.MinNights)
	}
	if nights > domain.MaxStayNights {
		return fmt.Errorf("%w: at most %d nights", ErrStayTooLong, domain.MaxStayNights)
	}

	if domain.DateOnly(req.CheckIn).Before(domain.DateOnly(uc.timeProvider.Now())) {
		return ErrInvalidDate
	}

	return nil
}
