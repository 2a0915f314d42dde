package create_booking

import "errors"

var (
	// ErrInvalidInput is returned on invalid input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrRoomNotFound is returned when the room does not exist
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomNotBookable is returned when the room is out of inventory
	ErrRoomNotBookable = errors.New("room is not bookable")

	// ErrRoomTooSmall is returned when the party does not fit the room
	ErrRoomTooSmall = errors.New("room cannot host that many guests")

	// ErrRoomNotAvailable is returned when the dates overlap another booking
	ErrRoomNotAvailable = errors.New("room not available for the requested dates")

	// ErrInvalidDate is returned when the stay starts in the past
	ErrInvalidDate = errors.New("check-in date cannot be in the past")

	// ErrStayTooLong is returned when the stay exceeds the maximum length
	ErrStayTooLong = errors.New("stay exceeds the maximum length")

	// ErrDateTooFarInFuture is returned when booking beyond the advance window
	ErrDateTooFarInFuture = errors.New("check-in date too far in the future")

	// ErrInternal is returned on internal errors
	ErrInternal = errors.New("create_booking: internal error")
)
