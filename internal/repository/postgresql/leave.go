package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/leave"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `
	l.id, l.employee_id, l.leave_type, l.start_date, l.end_date, l.reason,
	l.status, l.leave_days, l.month_year, l.applied_at, l.approved_by, l.approved_at,
	u.first_name || ' ' || u.last_name AS employee_name,
	u.employee_code, u.branch_id, b.name AS branch_name,
	ap.first_name || ' ' || ap.last_name AS approver_name
`

const leaveJoins = `
	FROM leave_applications l
	JOIN users u ON u.id = l.employee_id
	JOIN branches b ON b.id = u.branch_id
	LEFT JOIN users ap ON ap.id = l.approved_by
`

func scanLeave(row pgx.Row) (leave.LeaveApplication, error) {
	var l leave.LeaveApplication
	err := row.Scan(
		&l.ID,
		&l.EmployeeID,
		&l.LeaveType,
		&l.StartDate,
		&l.EndDate,
		&l.Reason,
		&l.Status,
		&l.LeaveDays,
		&l.MonthYear,
		&l.AppliedAt,
		&l.ApprovedBy,
		&l.ApprovedAt,
		&l.EmployeeName,
		&l.EmployeeCode,
		&l.BranchID,
		&l.BranchName,
		&l.ApproverName,
	)
	return l, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, app leave.LeaveApplication) (leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_applications (
			id, employee_id, leave_type, start_date, end_date, reason,
			status, leave_days, month_year, applied_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, applied_at
	`

	err := q.QueryRow(ctx, query,
		app.EmployeeID,
		app.LeaveType,
		app.StartDate,
		app.EndDate,
		app.Reason,
		app.Status,
		app.LeaveDays,
		app.MonthYear,
	).Scan(&app.ID, &app.AppliedAt)

	if err != nil {
		return leave.LeaveApplication{}, fmt.Errorf("failed to create leave application: %w", err)
	}

	return app, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + leaveJoins + ` WHERE l.id = $1`

	l, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveApplication{}, leave.ErrApplicationNotFound
		}
		return leave.LeaveApplication{}, fmt.Errorf("failed to get leave application: %w", err)
	}

	return l, nil
}

// Update implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Update(ctx context.Context, app leave.LeaveApplication) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_applications
		SET leave_type = $1, start_date = $2, end_date = $3, reason = $4,
			status = $5, leave_days = $6, month_year = $7,
			approved_by = $8, approved_at = $9
		WHERE id = $10
	`

	commandTag, err := q.Exec(ctx, query,
		app.LeaveType,
		app.StartDate,
		app.EndDate,
		app.Reason,
		app.Status,
		app.LeaveDays,
		app.MonthYear,
		app.ApprovedBy,
		app.ApprovedAt,
		app.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave application: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return leave.ErrApplicationNotFound
	}

	return nil
}

// Delete implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM leave_applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave application: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return leave.ErrApplicationNotFound
	}

	return nil
}

// HasOverlapping implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_applications
			WHERE employee_id = $1
			  AND status IN ('pending', 'approved')
			  AND start_date <= $2
			  AND end_date >= $3
			  AND ($4 = '' OR id::text <> $4)
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, end, start, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overlapping leave: %w", err)
	}

	return exists, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.Filter) ([]leave.LeaveApplication, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		where = append(where, fmt.Sprintf("l.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.BranchID != nil && *filter.BranchID != "" {
		where = append(where, fmt.Sprintf("u.branch_id = $%d", argIdx))
		args = append(args, *filter.BranchID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		where = append(where, fmt.Sprintf("l.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.MonthYear != nil && *filter.MonthYear != "" {
		where = append(where, fmt.Sprintf("l.month_year = $%d", argIdx))
		args = append(args, *filter.MonthYear)
		argIdx++
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM leave_applications l JOIN users u ON u.id = l.employee_id WHERE ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave applications: %w", err)
	}

	query := `SELECT ` + leaveColumns + leaveJoins + ` WHERE ` + whereClause +
		fmt.Sprintf(" ORDER BY l.applied_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave applications: %w", err)
	}
	defer rows.Close()

	var applications []leave.LeaveApplication
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave application: %w", err)
		}
		applications = append(applications, l)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return applications, total, nil
}
