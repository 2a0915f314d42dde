package maintenance

import (
	"context"
	"time"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
)

// MaintenanceRepository is the persistence surface the service needs.
type MaintenanceRepository interface {
	Create(ctx context.Context, req *domain.MaintenanceRequest) (*domain.MaintenanceRequest, error)
	GetByID(ctx context.Context, id int64) (*domain.MaintenanceRequest, error)
	List(ctx context.Context, filter domain.MaintenanceFilter, now time.Time) ([]*domain.MaintenanceRequest, error)
	CountOverdue(ctx context.Context, now time.Time) (int, error)
	Assign(ctx context.Context, id int64, staffID int64) error
	Start(ctx context.Context, id int64) error
	Complete(ctx context.Context, id int64, resolution string) error
	CancelRequest(ctx context.Context, id int64, reason *string) error
	UpdatePriority(ctx context.Context, id int64, priority domain.Priority) error
}

// RoomRepository covers the room side effects of blocking requests.
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error
}

// UserRepository is used to check who a request may be assigned to.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// BookingFinder locates the stay a reported issue belongs to.
type BookingFinder interface {
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
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
