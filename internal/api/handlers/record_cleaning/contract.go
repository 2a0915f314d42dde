package record_cleaning

import (
	"context"

	"github.com/hotelharmony/hotel-ops-service/internal/service/rooms/models"
)

type RoomService interface {
	RecordCleaning(ctx context.Context, id int64) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
