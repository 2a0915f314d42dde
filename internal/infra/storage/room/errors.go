package room

import "errors"

var (
	// ErrRoomNotFound is returned when no room matches the lookup
	ErrRoomNotFound = errors.New("room.repository: room not found")

	// ErrDuplicateNumber is returned when the room number is already taken
	ErrDuplicateNumber = errors.New("room.repository: room number already exists")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("room.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("room.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("room.repository: failed to scan row")
)
