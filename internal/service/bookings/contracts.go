package bookings

import (
	"context"
	"time"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
)

// BookingRepository is the persistence surface the service needs.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCode(ctx context.Context, code string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	ArrivalsOn(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	DeparturesOn(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
	UpdatePayment(ctx context.Context, id int64, status domain.PaymentStatus, method *string) error
}

// RoomRepository covers the room side effects of the booking lifecycle.
type RoomRepository interface {
	UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error
	SetCleanliness(ctx context.Context, id int64, clean bool) error
}

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production time source.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger writes leveled log lines.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
