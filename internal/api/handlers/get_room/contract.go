package get_room

import (
	"context"

	"github.com/hotelharmony/hotel-ops-service/internal/service/rooms/models"
)

type RoomService interface {
	Get(ctx context.Context, id int64) (*models.RoomResponse, error)
	GetByNumber(ctx context.Context, number string) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
