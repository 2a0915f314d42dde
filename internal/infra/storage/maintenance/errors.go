package maintenance

import "errors"

var (
	// ErrRequestNotFound is returned when no maintenance request matches the lookup
	ErrRequestNotFound = errors.New("maintenance.repository: request not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("maintenance.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("maintenance.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("maintenance.repository: failed to scan row")
)
