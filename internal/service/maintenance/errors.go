package maintenance

import "errors"

var (
	// ErrRequestNotFound is returned when the maintenance request does not exist
	ErrRequestNotFound = errors.New("maintenance request not found")

	// ErrRoomNotFound is returned when the referenced room does not exist
	ErrRoomNotFound = errors.New("room not found")

	// ErrStaffNotFound is returned when the assignee does not exist
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrNotMaintenanceStaff is returned when assigning to someone who cannot work requests
	ErrNotMaintenanceStaff = errors.New("user cannot work maintenance requests")

	// ErrIllegalTransition is returned on a workflow transition that is not allowed
	ErrIllegalTransition = errors.New("illegal maintenance status transition")

	// ErrInvalidInput is returned on invalid input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("maintenance service: internal error")
)
