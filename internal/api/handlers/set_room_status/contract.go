package set_room_status

import (
	"context"

	"github.com/hotelharmony/hotel-ops-service/internal/service/rooms/models"
)

type RoomService interface {
	SetStatus(ctx context.Context, id int64, status string) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
