package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied is returned when the caller may not see or change the booking
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel is returned when the booking is past the point of cancellation
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrCannotCheckIn is returned when the booking is not awaiting arrival
	ErrCannotCheckIn = errors.New("booking cannot be checked in")

	// ErrCannotCheckOut is returned when the guest is not checked in
	ErrCannotCheckOut = errors.New("booking cannot be checked out")

	// ErrCheckInTooEarly is returned when checking in before the arrival date
	ErrCheckInTooEarly = errors.New("check-in date not reached")

	// ErrCheckInTooLate is returned when the stay dates have already passed
	ErrCheckInTooLate = errors.New("stay dates have passed")

	// ErrInvalidInput is returned on invalid input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("bookings service: internal error")
)
