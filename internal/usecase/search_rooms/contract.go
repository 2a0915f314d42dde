package search_rooms

import (
	"context"
	"time"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
)

// RoomRepository runs the availability query.
type RoomRepository interface {
	FindAvailableBetween(ctx context.Context, checkIn, checkOut time.Time, filter domain.RoomSearchFilter) ([]*domain.Room, error)
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
