package create_booking

import (
	"context"
	"time"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
)

// BookingRepository is the booking persistence the use case needs.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListActiveForRoom(ctx context.Context, roomID int64, checkIn, checkOut time.Time) ([]*domain.Booking, error)
}

// RoomRepository loads the room being booked.
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// TransactionManager runs the availability check and the insert atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics counts created bookings.
type Metrics interface {
	IncBookingsCreated(roomType string)
}

// TimeProvider supplies the current time, swappable in tests.
type TimeProvider interface {
	Now() time.Time
}

// Logger writes leveled log lines.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
