package front_desk

import (
	"context"
	"time"

	"github.com/hotelharmony/hotel-ops-service/internal/service/bookings/models"
)

type BookingService interface {
	Arrivals(ctx context.Context, date string) (*models.BookingListResponse, error)
	Departures(ctx context.Context, date string) (*models.BookingListResponse, error)
}

// TimeProvider supplies the current time, the date defaults to today.
type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
