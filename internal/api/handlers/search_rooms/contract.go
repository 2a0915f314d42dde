package search_rooms

import (
	"context"

	"github.com/hotelharmony/hotel-ops-service/internal/usecase/search_rooms"
)

type SearchRoomsUseCase interface {
	Execute(ctx context.Context, req *search_rooms.Request) (*search_rooms.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
