package list_users

import (
	"context"

	"github.com/hotelharmony/hotel-ops-service/internal/service/users/models"
)

type UserService interface {
	List(ctx context.Context, role *string) (*models.UserListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
