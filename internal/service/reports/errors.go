package reports

import "errors"

var (
	// ErrInvalidPeriod is returned when the report period is malformed
	ErrInvalidPeriod = errors.New("invalid report period")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("reports service: internal error")
)
