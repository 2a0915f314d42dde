package users

import (
	"context"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
)

// UserRepository is the persistence surface the service needs.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, role *domain.Role) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, name, email string, phone *string) error
	SetEnabled(ctx context.Context, id int64, enabled bool) error
	TouchLastLogin(ctx context.Context, id int64) error
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Generate(u *domain.User) (string, error)
}

// Logger writes leveled log lines.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
