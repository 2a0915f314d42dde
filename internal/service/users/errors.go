package users

import "errors"

var (
	// ErrUserNotFound is returned when the account does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when the username is already registered
	ErrUsernameTaken = errors.New("username already taken")

	// ErrEmailTaken is returned when the email is already registered
	ErrEmailTaken = errors.New("email already taken")

	// ErrInvalidCredentials is returned on a bad username or password
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountDisabled is returned when the account has been disabled
	ErrAccountDisabled = errors.New("account disabled")

	// ErrInvalidInput is returned on invalid input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("users service: internal error")
)
