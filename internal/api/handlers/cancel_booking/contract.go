package cancel_booking

import (
	"context"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
	"github.com/hotelharmony/hotel-ops-service/internal/service/bookings/models"
)

type BookingService interface {
	Cancel(ctx context.Context, id int64, callerID int64, callerRole domain.Role, req *models.CancelBookingRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
