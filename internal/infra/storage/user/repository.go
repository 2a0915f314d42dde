package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
	"github.com/hotelharmony/hotel-ops-service/pkg/dbmetrics"
	"github.com/hotelharmony/hotel-ops-service/pkg/psqlbuilder"
)

var userColumns = []string{
	"id",
	"username",
	"password_hash",
	"name",
	"email",
	"phone",
	"role",
	"enabled",
	"last_login_at",
	"loyalty_points",
	"preferences",
	"department",
	"position",
	"hire_date",
	"staff_status",
	"created_at",
	"updated_at",
}

// Repository persists user accounts.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a user repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user and fills in its generated fields.
func (r *Repository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns(
			"username",
			"password_hash",
			"name",
			"email",
			"phone",
			"role",
			"enabled",
			"loyalty_points",
			"preferences",
			"department",
			"position",
			"hire_date",
			"staff_status",
		).
		Values(
			u.Username,
			u.PasswordHash,
			u.Name,
			u.Email,
			u.Phone,
			u.Role,
			u.Enabled,
			u.LoyaltyPoints,
			u.Preferences,
			u.Department,
			u.Position,
			u.HireDate,
			u.StaffStatus,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&u.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if dup := duplicateKeyError(err); dup != nil {
			return nil, dup
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	u.CreatedAt = createdAt.Time
	u.UpdatedAt = updatedAt.Time

	return u, nil
}

// GetByID returns the user with the given id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByUsername returns the user with the given username.
func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"username": username}, "GetByUsername")
}

// List returns users, optionally filtered by role.
func (r *Repository) List(ctx context.Context, role *domain.Role) ([]*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(userColumns...).
		From("users").
		OrderBy("id ASC")

	if role != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"role": *role})
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

	users := make([]*domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}
	return users, nil
}

// UpdateProfile updates the mutable profile fields.
func (r *Repository) UpdateProfile(ctx context.Context, id int64, name, email string, phone *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("users").
		Set("name", name).
		Set("email", email).
		Set("phone", phone).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateProfile - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if dup := duplicateKeyError(err); dup != nil {
			return dup
		}
		return fmt.Errorf("%w: UpdateProfile - execute update: %v", ErrExecQuery, err)
	}

	return requireRowsAffected(result, "UpdateProfile")
}

// SetEnabled enables or disables the account.
func (r *Repository) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("users").
		Set("enabled", enabled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetEnabled - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetEnabled - execute update: %v", ErrExecQuery, err)
	}

	return requireRowsAffected(result, "SetEnabled")
}

// TouchLastLogin records a successful login.
func (r *Repository) TouchLastLogin(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("users").
		Set("last_login_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: TouchLastLogin - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: TouchLastLogin - execute update: %v", ErrExecQuery, err)
	}

	return requireRowsAffected(result, "TouchLastLogin")
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, method string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	u, err := scanUser(executor.QueryRowContext(ctx, query, args...).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %v", ErrScanRow, method, err)
	}
	return u, nil
}

func scanUser(scan func(dest ...interface{}) error) (*domain.User, error) {
	var u domain.User
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Name,
		&u.Email,
		&u.Phone,
		&u.Role,
		&u.Enabled,
		&u.LastLoginAt,
		&u.LoyaltyPoints,
		&u.Preferences,
		&u.Department,
		&u.Position,
		&u.HireDate,
		&u.StaffStatus,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.CreatedAt = createdAt.Time
	u.UpdatedAt = updatedAt.Time
	return &u, nil
}

// duplicateKeyError maps unique constraint violations onto the repository's
// sentinel errors.
func duplicateKeyError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != "23505" {
		return nil
	}
	switch pqErr.Constraint {
	case "users_username_key":
		return ErrDuplicateUsername
	case "users_email_key":
		return ErrDuplicateEmail
	}
	return ErrDuplicateUsername
}

func requireRowsAffected(result sql.Result, method string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
