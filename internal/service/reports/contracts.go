package reports

import (
	"context"
	"time"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
)

// BookingRepository is the booking data the reports are computed from.
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	ArrivalsOn(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	DeparturesOn(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// RoomRepository supplies the room inventory.
type RoomRepository interface {
	List(ctx context.Context, filter domain.RoomFilter) ([]*domain.Room, error)
}

// MaintenanceRepository supplies the maintenance workload.
type MaintenanceRepository interface {
	List(ctx context.Context, filter domain.MaintenanceFilter, now time.Time) ([]*domain.MaintenanceRequest, error)
	CountOverdue(ctx context.Context, now time.Time) (int, error)
}

// TransactionManager runs a function inside a database transaction. Reports
// read several tables and want one consistent snapshot.
type TransactionManager interface {
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
