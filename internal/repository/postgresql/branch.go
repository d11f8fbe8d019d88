package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/branch"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type branchRepositoryImpl struct {
	db *database.DB
}

func NewBranchRepository(db *database.DB) branch.BranchRepository {
	return &branchRepositoryImpl{db: db}
}

const branchColumns = `
	b.id, b.name, b.created_at, b.updated_at,
	(SELECT COUNT(*) FROM users u WHERE u.branch_id = b.id AND u.is_active = true) AS active_employees,
	(SELECT COUNT(*) FROM users u WHERE u.branch_id = b.id AND u.is_active = true AND u.role = 'therapist') AS therapists
`

// Create implements branch.BranchRepository.
func (r *branchRepositoryImpl) Create(ctx context.Context, b branch.Branch) (branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO branches (id, name, created_at, updated_at)
		VALUES (uuidv7(), $1, NOW(), NOW())
		RETURNING id, name, created_at, updated_at
	`

	var result branch.Branch
	err := q.QueryRow(ctx, query, b.Name).Scan(
		&result.ID,
		&result.Name,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return branch.Branch{}, branch.ErrBranchNameExists
		}
		return branch.Branch{}, fmt.Errorf("failed to create branch: %w", err)
	}

	return result, nil
}

// GetByID implements branch.BranchRepository.
func (r *branchRepositoryImpl) GetByID(ctx context.Context, id string) (branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + branchColumns + ` FROM branches b WHERE b.id = $1`

	var result branch.Branch
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Name,
		&result.CreatedAt,
		&result.UpdatedAt,
		&result.ActiveEmployees,
		&result.Therapists,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return branch.Branch{}, branch.ErrBranchNotFound
		}
		return branch.Branch{}, fmt.Errorf("failed to get branch: %w", err)
	}

	return result, nil
}

// List implements branch.BranchRepository.
func (r *branchRepositoryImpl) List(ctx context.Context) ([]branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + branchColumns + ` FROM branches b ORDER BY b.name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer rows.Close()

	var branches []branch.Branch
	for rows.Next() {
		var b branch.Branch
		err := rows.Scan(
			&b.ID,
			&b.Name,
			&b.CreatedAt,
			&b.UpdatedAt,
			&b.ActiveEmployees,
			&b.Therapists,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan branch: %w", err)
		}
		branches = append(branches, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return branches, nil
}

// Update implements branch.BranchRepository.
func (r *branchRepositoryImpl) Update(ctx context.Context, req branch.UpdateBranchRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE branches SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		query += fmt.Sprintf(", name = $%d", argIdx)
		args = append(args, *req.Name)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return branch.ErrBranchNameExists
		}
		return fmt.Errorf("failed to update branch: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return branch.ErrBranchNotFound
	}

	return nil
}

// Delete implements branch.BranchRepository.
func (r *branchRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM branches WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return branch.ErrBranchNotEmpty
		}
		return fmt.Errorf("failed to delete branch: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return branch.ErrBranchNotFound
	}

	return nil
}
