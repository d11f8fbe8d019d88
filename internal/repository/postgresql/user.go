package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/user"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `
	u.id, u.employee_code, u.email, u.password_hash, u.first_name, u.last_name,
	u.role, u.branch_id, u.mobile_number, u.login_time, u.grace_minutes,
	u.supervisor_id, u.is_verified, u.is_active, u.created_at, u.updated_at,
	b.name AS branch_name,
	s.first_name || ' ' || s.last_name AS supervisor_name
`

const userJoins = `
	FROM users u
	JOIN branches b ON b.id = u.branch_id
	LEFT JOIN users s ON s.id = u.supervisor_id
`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.EmployeeCode,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.Role,
		&u.BranchID,
		&u.MobileNumber,
		&u.LoginTime,
		&u.GraceMinutes,
		&u.SupervisorID,
		&u.IsVerified,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.BranchName,
		&u.SupervisorName,
	)
	return u, err
}

// mapUserConstraint translates unique-violation errors into domain errors.
func mapUserConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "employee_code"):
			return user.ErrEmployeeCodeExists
		case strings.Contains(pgErr.ConstraintName, "email"):
			return user.ErrEmailExists
		}
	}
	return err
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (
			id, employee_code, email, password_hash, first_name, last_name,
			role, branch_id, mobile_number, login_time, grace_minutes,
			supervisor_id, is_verified, is_active, created_at, updated_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		u.EmployeeCode,
		u.Email,
		u.PasswordHash,
		u.FirstName,
		u.LastName,
		u.Role,
		u.BranchID,
		u.MobileNumber,
		u.LoginTime,
		u.GraceMinutes,
		u.SupervisorID,
		u.IsVerified,
		u.IsActive,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if mapped := mapUserConstraint(err); mapped != err {
			return user.User{}, mapped
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + userJoins + ` WHERE u.id = $1`

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// GetByEmployeeCode implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmployeeCode(ctx context.Context, code string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + userJoins + ` WHERE u.employee_code = $1`

	u, err := scanUser(q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by employee code: %w", err)
	}

	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + userJoins + ` WHERE u.email = $1`

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET email = $1, password_hash = $2, first_name = $3, last_name = $4,
			role = $5, branch_id = $6, mobile_number = $7, login_time = $8,
			grace_minutes = $9, supervisor_id = $10, is_verified = $11,
			is_active = $12, updated_at = NOW()
		WHERE id = $13
	`

	commandTag, err := q.Exec(ctx, query,
		u.Email,
		u.PasswordHash,
		u.FirstName,
		u.LastName,
		u.Role,
		u.BranchID,
		u.MobileNumber,
		u.LoginTime,
		u.GraceMinutes,
		u.SupervisorID,
		u.IsVerified,
		u.IsActive,
		u.ID,
	)
	if err != nil {
		if mapped := mapUserConstraint(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context, filter user.Filter) ([]user.User, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.BranchID != nil && *filter.BranchID != "" {
		where = append(where, fmt.Sprintf("u.branch_id = $%d", argIdx))
		args = append(args, *filter.BranchID)
		argIdx++
	}
	if filter.Role != nil && *filter.Role != "" {
		where = append(where, fmt.Sprintf("u.role = $%d", argIdx))
		args = append(args, *filter.Role)
		argIdx++
	}
	if filter.IsActive != nil {
		where = append(where, fmt.Sprintf("u.is_active = $%d", argIdx))
		args = append(args, *filter.IsActive)
		argIdx++
	}
	if filter.Search != nil && *filter.Search != "" {
		where = append(where, fmt.Sprintf(
			"(u.first_name ILIKE $%d OR u.last_name ILIKE $%d OR u.employee_code ILIKE $%d OR u.email ILIKE $%d)",
			argIdx, argIdx, argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM users u WHERE ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query := `SELECT ` + userColumns + userJoins + ` WHERE ` + whereClause +
		fmt.Sprintf(" ORDER BY u.employee_code ASC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, total, nil
}

// GetBranchSupervisor implements user.UserRepository.
func (r *userRepositoryImpl) GetBranchSupervisor(ctx context.Context, branchID string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + userJoins + `
		WHERE u.branch_id = $1 AND u.role = 'supervisor' AND u.is_active = true
		ORDER BY u.created_at ASC
		LIMIT 1`

	u, err := scanUser(q.QueryRow(ctx, query, branchID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrSupervisorNotFound
		}
		return user.User{}, fmt.Errorf("failed to get branch supervisor: %w", err)
	}

	return u, nil
}

// GetActive implements user.UserRepository.
func (r *userRepositoryImpl) GetActive(ctx context.Context, branchID *string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + userJoins + ` WHERE u.is_active = true`
	args := []interface{}{}
	if branchID != nil && *branchID != "" {
		query += " AND u.branch_id = $1"
		args = append(args, *branchID)
	}
	query += " ORDER BY u.employee_code ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get active users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}
