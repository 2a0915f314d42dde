package rooms

import "errors"

var (
	// ErrRoomNotFound is returned when the room does not exist
	ErrRoomNotFound = errors.New("room not found")

	// ErrNumberTaken is returned when another room already has the number
	ErrNumberTaken = errors.New("room number already taken")

	// ErrRoomHasBookings is returned when deleting a room with active bookings
	ErrRoomHasBookings = errors.New("room has active bookings")

	// ErrInvalidInput is returned on invalid input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("rooms service: internal error")
)
