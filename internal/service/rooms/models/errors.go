package models

import "errors"

var (
	// ErrInvalidRoomType is returned on an unknown room type
	ErrInvalidRoomType = errors.New("invalid room type")

	// ErrInvalidRoomStatus is returned on an unknown room status
	ErrInvalidRoomStatus = errors.New("invalid room status")
)
