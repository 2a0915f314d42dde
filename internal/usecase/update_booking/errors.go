package update_booking

import "errors"

var (
	// ErrInvalidInput is returned on invalid input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied is returned when the caller may not change the booking
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotUpdate is returned when the booking is past the point of change
	ErrCannotUpdate = errors.New("booking can no longer be updated")

	// ErrRoomTooSmall is returned when the party does not fit the room
	ErrRoomTooSmall = errors.New("room cannot host that many guests")

	// ErrRoomNotAvailable is returned when the new dates overlap another booking
	ErrRoomNotAvailable = errors.New("room not available for the requested dates")

	// ErrInvalidDate is returned when the stay starts in the past
	ErrInvalidDate = errors.New("check-in date cannot be in the past")

	// ErrStayTooLong is returned when the stay exceeds the maximum length
	ErrStayTooLong = errors.New("stay exceeds the maximum length")

	// ErrDateTooFarInFuture is returned when booking beyond the advance window
	ErrDateTooFarInFuture = errors.New("check-in date too far in the future")

	// ErrInternal is returned on internal errors
	ErrInternal = errors.New("update_booking: internal error")
)
