package get_current_user

import (
	"context"

	"github.com/hotelharmony/hotel-ops-service/internal/service/users/models"
)

type UserService interface {
	Get(ctx context.Context, id int64) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
