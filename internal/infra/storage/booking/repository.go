package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
	"github.com/hotelharmony/hotel-ops-service/pkg/dbmetrics"
	"github.com/hotelharmony/hotel-ops-service/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"code",
	"guest_id",
	"room_id",
	"check_in",
	"check_out",
	"guests",
	"total_price",
	"status",
	"payment_status",
	"payment_method",
	"special_requests",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository persists bookings.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking and fills in its generated fields.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"code",
			"guest_id",
			"room_id",
			"check_in",
			"check_out",
			"guests",
			"total_price",
			"status",
			"payment_status",
			"payment_method",
			"special_requests",
			"notes",
		).
		Values(
			b.Code,
			b.GuestID,
			b.RoomID,
			b.CheckIn,
			b.CheckOut,
			b.Guests,
			b.TotalPrice,
			b.Status,
			b.PaymentStatus,
			b.PaymentMethod,
			b.SpecialRequests,
			b.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, execErr("Create", "execute insert", err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID returns the booking with the given id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByCode returns the booking with the given public reference code.
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"code": code}, "GetByCode")
}

// ListActiveForRoom returns the room's active bookings whose stays overlap
// [checkIn, checkOut). Inside a transaction the rows are locked FOR UPDATE,
// which is what the availability check relies on to serialize competing
// booking attempts for the same room.
func (r *Repository) ListActiveForRoom(ctx context.Context, roomID int64, checkIn, checkOut time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"status": activeStatusStrings()}).
		Where(squirrel.Lt{"check_in": checkOut}).
		Where(squirrel.Gt{"check_out": checkIn}).
		OrderBy("check_in ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveForRoom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, execErr("ListActiveForRoom", "execute query", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// List returns bookings matching the filter.
func (r *Repository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("check_in DESC, id DESC")

	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}
	if filter.GuestID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"guest_id": *filter.GuestID})
	}

	// Stays overlapping the requested period, half-open on both sides.
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"check_out": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"check_in": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": activeStatusStrings()})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, execErr("List", "execute query", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ArrivalsOn returns reserved bookings checking in on the given date.
func (r *Repository) ArrivalsOn(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	return r.listByDateAndStatus(ctx, "check_in", date, domain.StatusReserved, "ArrivalsOn")
}

// DeparturesOn returns checked-in bookings checking out on the given date.
func (r *Repository) DeparturesOn(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	return r.listByDateAndStatus(ctx, "check_out", date, domain.StatusCheckedIn, "DeparturesOn")
}

// UpdateStatus moves the booking to the given status. Legality of the
// transition is the caller's responsibility.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return execErr("UpdateStatus", "execute update", err)
	}

	return requireRowsAffected(result, "UpdateStatus")
}

// UpdateStay replaces the stay parameters and the recomputed total price.
func (r *Repository) UpdateStay(ctx context.Context, b *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("check_in", b.CheckIn).
		Set("check_out", b.CheckOut).
		Set("guests", b.Guests).
		Set("total_price", b.TotalPrice).
		Set("special_requests", b.SpecialRequests).
		Set("notes", b.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStay - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return execErr("UpdateStay", "execute update", err)
	}

	return requireRowsAffected(result, "UpdateStay")
}

// Cancel cancels the booking recording the reason.
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return execErr("Cancel", "execute update", err)
	}

	return requireRowsAffected(result, "Cancel")
}

// UpdatePayment sets the payment status and method.
func (r *Repository) UpdatePayment(ctx context.Context, id int64, status domain.PaymentStatus, method *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_status", status).
		Set("payment_method", method).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePayment - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return execErr("UpdatePayment", "execute update", err)
	}

	return requireRowsAffected(result, "UpdatePayment")
}

// MarkNoShows marks reserved bookings whose check-in date is before the
// given date as no-shows and returns the affected ids. Used by the nightly
// sweep.
func (r *Repository) MarkNoShows(ctx context.Context, before time.Time) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusNoShow).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.StatusReserved}).
		Where(squirrel.Lt{"check_in": before}).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: MarkNoShows - build update query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, execErr("MarkNoShows", "execute update", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: MarkNoShows - scan id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: MarkNoShows - rows error: %v", ErrScanRow, err)
	}
	return ids, nil
}

// CountActiveForRoom returns how many active bookings reference the room.
// Room deletion is refused while this is non-zero.
func (r *Repository) CountActiveForRoom(ctx context.Context, roomID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"status": activeStatusStrings()}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveForRoom - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveForRoom - scan count: %v", ErrScanRow, err)
	}
	return count, nil
}

func (r *Repository) listByDateAndStatus(ctx context.Context, dateColumn string, date time.Time, status domain.BookingStatus, method string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{dateColumn: domain.DateOnly(date)}).
		Where(squirrel.Eq{"status": status}).
		OrderBy("room_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, method string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, method, err)
	}
	return b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}
	return bookings, nil
}

func scanBooking(scan func(dest ...interface{}) error) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&b.ID,
		&b.Code,
		&b.GuestID,
		&b.RoomID,
		&b.CheckIn,
		&b.CheckOut,
		&b.Guests,
		&b.TotalPrice,
		&b.Status,
		&b.PaymentStatus,
		&b.PaymentMethod,
		&b.SpecialRequests,
		&b.Notes,
		&b.CancellationReason,
		&b.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time
	return &b, nil
}

func activeStatusStrings() []string {
	statuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

// execErr wraps a driver error in ErrExecQuery, except for serialization
// failures (SQLSTATE 40001), which are returned intact so the transaction
// manager can recognize them and retry the whole transaction.
func execErr(method, step string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "40001" {
		return err
	}
	return fmt.Errorf("%w: %s - %s: %v", ErrExecQuery, method, step, err)
}

func requireRowsAffected(result sql.Result, method string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}
