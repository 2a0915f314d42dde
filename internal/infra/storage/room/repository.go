package room

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

var roomColumns = []string{
	"id",
	"number",
	"type",
	"capacity",
	"nightly_rate",
	"floor",
	"status",
	"is_clean",
	"last_cleaned",
	"description",
	"amenities",
	"created_at",
	"updated_at",
}

// Repository persists the room inventory.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a room repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new room and fills in its generated fields.
func (r *Repository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rooms").
		Columns(
			"number",
			"type",
			"capacity",
			"nightly_rate",
			"floor",
			"status",
			"is_clean",
			"description",
			"amenities",
		).
		Values(
			room.Number,
			room.Type,
			room.Capacity,
			room.NightlyRate,
			room.Floor,
			room.Status,
			room.IsClean,
			room.Description,
			pq.Array(room.Amenities),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isDuplicateNumber(err) {
			return nil, ErrDuplicateNumber
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return room, nil
}

// GetByID returns the room with the given id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByNumber returns the room with the given room number.
func (r *Repository) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	return r.getOne(ctx, squirrel.Eq{"number": number}, "GetByNumber")
}

// List returns rooms matching the filter, ordered by room number.
func (r *Repository) List(ctx context.Context, filter domain.RoomFilter) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		OrderBy("number ASC")

	if filter.Type != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"type": *filter.Type})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.CleanOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_clean": true})
	}
	if filter.MinCapacity != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"capacity": *filter.MinCapacity})
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

	return scanRooms(rows)
}

// FindAvailableBetween returns rooms with no active booking overlapping
// [checkIn, checkOut) that are not under maintenance. The overlap predicate
// uses half-open ranges, so back-to-back stays do not conflict.
func (r *Repository) FindAvailableBetween(ctx context.Context, checkIn, checkOut time.Time, filter domain.RoomSearchFilter) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	overlapSubquery := squirrel.Expr(
		`rooms.id NOT IN (
			SELECT room_id FROM bookings
			WHERE status IN ('reserved', 'checked_in')
			  AND check_in < ? AND check_out > ?
		)`, checkOut, checkIn)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.NotEq{"status": domain.RoomStatusMaintenance}).
		Where(overlapSubquery).
		OrderBy("number ASC")

	if filter.Type != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"type": *filter.Type})
	}
	if filter.Guests != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"capacity": *filter.Guests})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindAvailableBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindAvailableBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRooms(rows)
}

// Update replaces the mutable room fields.
func (r *Repository) Update(ctx context.Context, room *domain.Room) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("number", room.Number).
		Set("type", room.Type).
		Set("capacity", room.Capacity).
		Set("nightly_rate", room.NightlyRate).
		Set("floor", room.Floor).
		Set("status", room.Status).
		Set("is_clean", room.IsClean).
		Set("description", room.Description).
		Set("amenities", pq.Array(room.Amenities)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": room.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isDuplicateNumber(err) {
			return ErrDuplicateNumber
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return requireRowsAffected(result, "Update")
}

// UpdateStatus moves the room to the given status.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return requireRowsAffected(result, "UpdateStatus")
}

// SetCleanliness updates the clean flag. Marking the room clean also records
// the cleaning timestamp.
func (r *Repository) SetCleanliness(ctx context.Context, id int64, clean bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("rooms").
		Set("is_clean", clean).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if clean {
		updateBuilder = updateBuilder.Set("last_cleaned", squirrel.Expr("NOW()"))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetCleanliness - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetCleanliness - execute update: %v", ErrExecQuery, err)
	}

	return requireRowsAffected(result, "SetCleanliness")
}

// Delete removes the room. Callers must first ensure the room has no active
// bookings.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return requireRowsAffected(result, "Delete")
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, method string) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan room: %v", ErrScanRow, method, err)
	}
	return room, nil
}

func scanRooms(rows *sql.Rows) ([]*domain.Room, error) {
	rooms := make([]*domain.Room, 0)

	for rows.Next() {
		room, err := scanRoom(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRooms - scan row: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRooms - rows error: %v", ErrScanRow, err)
	}
	return rooms, nil
}

func scanRoom(scan func(dest ...interface{}) error) (*domain.Room, error) {
	var room domain.Room
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&room.ID,
		&room.Number,
		&room.Type,
		&room.Capacity,
		&room.NightlyRate,
		&room.Floor,
		&room.Status,
		&room.IsClean,
		&room.LastCleaned,
		&room.Description,
		pq.Array(&room.Amenities),
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time
	return &room, nil
}

func isDuplicateNumber(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func requireRowsAffected(result sql.Result, method string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}
	if rowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}
