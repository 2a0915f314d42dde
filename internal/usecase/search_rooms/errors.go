package search_rooms

import "errors"

var (
	// ErrInvalidInput is returned on invalid input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate is returned when the stay starts in the past
	ErrInvalidDate = errors.New("check-in date cannot be in the past")

	// ErrStayTooLong is returned when the stay exceeds the maximum length
	ErrStayTooLong = errors.New("stay exceeds the maximum length")

	// ErrInternal is returned on internal errors
	ErrInternal = errors.New("search_rooms: internal error")
)
