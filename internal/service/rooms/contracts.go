package rooms

import (
	"context"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
)

// RoomRepository is the persistence surface the service needs.
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetByNumber(ctx context.Context, number string) (*domain.Room, error)
	List(ctx context.Context, filter domain.RoomFilter) ([]*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error
	SetCleanliness(ctx context.Context, id int64, clean bool) error
	Delete(ctx context.Context, id int64) error
}

// BookingCounter reports how many active bookings a room has. Used to block
// deleting a room that still has stays ahead of it.
type BookingCounter interface {
	CountActiveForRoom(ctx context.Context, roomID int64) (int, error)
}

// Logger writes leveled log lines.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
