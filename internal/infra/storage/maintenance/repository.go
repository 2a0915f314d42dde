package maintenance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
	"github.com/hotelharmony/hotel-ops-service/pkg/dbmetrics"
	"github.com/hotelharmony/hotel-ops-service/pkg/psqlbuilder"
)

var requestColumns = []string{
	"id",
	"room_id",
	"booking_id",
	"reported_by",
	"assigned_to",
	"issue_type",
	"priority",
	"status",
	"description",
	"blocks_room",
	"notes",
	"resolution_details",
	"created_at",
	"assigned_at",
	"started_at",
	"completed_at",
}

// Repository persists maintenance requests.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a maintenance request repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new maintenance request and fills in its generated fields.
func (r *Repository) Create(ctx context.Context, req *domain.MaintenanceRequest) (*domain.MaintenanceRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("maintenance_requests").
		Columns(
			"room_id",
			"booking_id",
			"reported_by",
			"issue_type",
			"priority",
			"status",
			"description",
			"blocks_room",
			"notes",
		).
		Values(
			req.RoomID,
			req.BookingID,
			req.ReportedBy,
			req.IssueType,
			req.Priority,
			req.Status,
			req.Description,
			req.BlocksRoom,
			req.Notes,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&req.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	req.CreatedAt = createdAt.Time
	return req, nil
}

// GetByID returns the maintenance request with the given id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.MaintenanceRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(requestColumns...).
		From("maintenance_requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	req, err := scanRequest(executor.QueryRowContext(ctx, query, args...).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan request: %v", ErrScanRow, err)
	}
	return req, nil
}

// List returns maintenance requests matching the filter, newest first.
// OverdueOnly filtering happens on the SLA deadline computed per priority.
func (r *Repository) List(ctx context.Context, filter domain.MaintenanceFilter, now time.Time) ([]*domain.MaintenanceRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(requestColumns...).
		From("maintenance_requests").
		OrderBy("created_at DESC, id DESC")

	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}
	if filter.AssignedTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"assigned_to": *filter.AssignedTo})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Priority != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"priority": *filter.Priority})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"created_at": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"created_at": *filter.EndDate})
	}
	if filter.OverdueOnly {
		selectBuilder = selectBuilder.
			Where(squirrel.NotEq{"status": terminalStatusStrings()}).
			Where(overdueDeadlineExpr(now))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRequests(rows)
}

// CountOverdue returns how many unresolved requests are past their SLA
// deadline. Feeds the overdue gauge.
func (r *Repository) CountOverdue(ctx context.Context, now time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("maintenance_requests").
		Where(squirrel.NotEq{"status": terminalStatusStrings()}).
		Where(overdueDeadlineExpr(now)).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountOverdue - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountOverdue - scan count: %v", ErrScanRow, err)
	}
	return count, nil
}

// Assign sets the assignee and moves an open request to assigned.
func (r *Repository) Assign(ctx context.Context, id int64, staffID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("maintenance_requests").
		Set("assigned_to", staffID).
		Set("status", domain.MaintenanceAssigned).
		Set("assigned_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Assign - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Assign - execute update: %v", ErrExecQuery, err)
	}

	return requireRowsAffected(result, "Assign")
}

// Start moves the request to in_progress and records the start time.
func (r *Repository) Start(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("maintenance_requests").
		Set("status", domain.MaintenanceInProgress).
		Set("started_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Start - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Start - execute update: %v", ErrExecQuery, err)
	}

	return requireRowsAffected(result, "Start")
}

// Complete closes the request with its resolution details.
func (r *Repository) Complete(ctx context.Context, id int64, resolution string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("maintenance_requests").
		Set("status", domain.MaintenanceCompleted).
		Set("resolution_details", resolution).
		Set("completed_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Complete - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Complete - execute update: %v", ErrExecQuery, err)
	}

	return requireRowsAffected(result, "Complete")
}

// CancelRequest cancels the request, appending the reason to its notes.
// A nil reason leaves the notes untouched.
func (r *Repository) CancelRequest(ctx context.Context, id int64, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := cancelRequestBuilder(id, reason).ToSql()

	if err != nil {
		return fmt.Errorf("%w: CancelRequest - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: CancelRequest - execute update: %v", ErrExecQuery, err)
	}

	return requireRowsAffected(result, "CancelRequest")
}

// cancelRequestBuilder keeps existing notes and appends the cancellation
// reason on its own line when one was given.
func cancelRequestBuilder(id int64, reason *string) squirrel.UpdateBuilder {
	updateBuilder := psqlbuilder.Update("maintenance_requests").
		Set("status", domain.MaintenanceCancelled).
		Where(squirrel.Eq{"id": id})

	if reason != nil {
		updateBuilder = updateBuilder.Set("notes", squirrel.Expr("COALESCE(notes || E'\\n', '') || ?", *reason))
	}
	return updateBuilder
}

// UpdatePriority changes the request priority, which also moves its SLA
// deadline.
func (r *Repository) UpdatePriority(ctx context.Context, id int64, priority domain.Priority) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("maintenance_requests").
		Set("priority", priority).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePriority - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePriority - execute update: %v", ErrExecQuery, err)
	}

	return requireRowsAffected(result, "UpdatePriority")
}

// overdueDeadlineExpr encodes the per-priority SLA deadline in SQL so overdue
// filtering happens in the database. Must stay in sync with
// domain.SLADuration.
func overdueDeadlineExpr(now time.Time) squirrel.Sqlizer {
	return squirrel.Expr(`created_at + (CASE priority
		WHEN 'urgent' THEN INTERVAL '4 hours'
		WHEN 'high'   THEN INTERVAL '24 hours'
		WHEN 'medium' THEN INTERVAL '72 hours'
		ELSE               INTERVAL '168 hours'
	END) < ?`, now)
}

func scanRequests(rows *sql.Rows) ([]*domain.MaintenanceRequest, error) {
	requests := make([]*domain.MaintenanceRequest, 0)

	for rows.Next() {
		req, err := scanRequest(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRequests - scan row: %v", ErrScanRow, err)
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRequests - rows error: %v", ErrScanRow, err)
	}
	return requests, nil
}

func scanRequest(scan func(dest ...interface{}) error) (*domain.MaintenanceRequest, error) {
	var req domain.MaintenanceRequest
	var createdAt sql.NullTime

	err := scan(
		&req.ID,
		&req.RoomID,
		&req.BookingID,
		&req.ReportedBy,
		&req.AssignedTo,
		&req.IssueType,
		&req.Priority,
		&req.Status,
		&req.Description,
		&req.BlocksRoom,
		&req.Notes,
		&req.ResolutionDetails,
		&createdAt,
		&req.AssignedAt,
		&req.StartedAt,
		&req.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	req.CreatedAt = createdAt.Time
	return &req, nil
}

func terminalStatusStrings() []string {
	return []string{
		string(domain.MaintenanceCompleted),
		string(domain.MaintenanceCancelled),
	}
}

func requireRowsAffected(result sql.Result, method string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}
	if rowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}
