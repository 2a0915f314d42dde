package models

import (
	"time"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
)

// Request models

// RegisterRequest carries the data needed to create an account. Role is
// forced to guest on the public registration route, staff accounts come in
// through the manager-only route.
type RegisterRequest struct {
	Username   string  `json:"username"`
	Password   string  `json:"password"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone,omitempty"`
	Role       string  `json:"role"`
	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateProfileRequest carries the mutable profile fields.
type UpdateProfileRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// Response models

// UserResponse is the account representation returned by the API.
type UserResponse struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone,omitempty"`
	Role        string  `json:"role"`
	Enabled     bool    `json:"enabled"`
	LastLoginAt *string `json:"lastLoginAt,omitempty"`

	LoyaltyPoints *int    `json:"loyaltyPoints,omitempty"`
	Preferences   *string `json:"preferences,omitempty"`

	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
	HireDate   *string `json:"hireDate,omitempty"`

	CreatedAt string `json:"createdAt"`
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// UserListResponse wraps a list of accounts.
type UserListResponse struct {
	Users []*UserResponse `json:"users"`
	Total int             `json:"total"`
}

// FromDomainUser converts a domain user to its API representation. The
// password hash never leaves the service layer.
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		Name:          u.Name,
		Email:         u.Email,
		Phone:         u.Phone,
		Role:          string(u.Role),
		Enabled:       u.Enabled,
		LastLoginAt:   formatTimePtr(u.LastLoginAt, time.RFC3339),
		LoyaltyPoints: u.LoyaltyPoints,
		Preferences:   u.Preferences,
		Department:    u.Department,
		Position:      u.Position,
		HireDate:      formatTimePtr(u.HireDate, domain.DateFormat),
		CreatedAt:     u.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainUserList converts a list of domain users.
func FromDomainUserList(users []*domain.User) *UserListResponse {
	responses := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, FromDomainUser(u))
	}
	return &UserListResponse{
		Users: responses,
		Total: len(responses),
	}
}

func formatTimePtr(t *time.Time, layout string) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(layout)
	return &formatted
}
