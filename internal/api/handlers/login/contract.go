package login

import (
	"context"

	"github.com/hotelharmony/hotel-ops-service/internal/service/users/models"
)

type UserService interface {
	Authenticate(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
