package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/attendance"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.check_in_time, a.check_out_time,
	a.status, a.checkin_status, a.total_hours, a.needs_checkout_correction,
	a.auto_checkout, a.created_at, a.updated_at,
	u.first_name || ' ' || u.last_name AS employee_name,
	u.employee_code, u.branch_id, b.name AS branch_name
`

const attendanceJoins = `
	FROM attendance_logs a
	JOIN users u ON u.id = a.employee_id
	JOIN branches b ON b.id = u.branch_id
`

func scanAttendance(row pgx.Row) (attendance.AttendanceLog, error) {
	var a attendance.AttendanceLog
	err := row.Scan(
		&a.ID,
		&a.EmployeeID,
		&a.Date,
		&a.CheckInTime,
		&a.CheckOutTime,
		&a.Status,
		&a.CheckinStatus,
		&a.TotalHours,
		&a.NeedsCheckoutCorrection,
		&a.AutoCheckout,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.EmployeeName,
		&a.EmployeeCode,
		&a.BranchID,
		&a.BranchName,
	)
	return a, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, log attendance.AttendanceLog) (attendance.AttendanceLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_logs (
			id, employee_id, date, check_in_time, check_out_time, status,
			checkin_status, total_hours, needs_checkout_correction,
			auto_checkout, created_at, updated_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		log.EmployeeID,
		log.Date,
		log.CheckInTime,
		log.CheckOutTime,
		log.Status,
		log.CheckinStatus,
		log.TotalHours,
		log.NeedsCheckoutCorrection,
		log.AutoCheckout,
	).Scan(&log.ID, &log.CreatedAt, &log.UpdatedAt)

	if err != nil {
		return attendance.AttendanceLog{}, fmt.Errorf("failed to create attendance log: %w", err)
	}

	return log, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.AttendanceLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + ` WHERE a.id = $1`

	a, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceLog{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceLog{}, fmt.Errorf("failed to get attendance log: %w", err)
	}

	return a, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, log attendance.AttendanceLog) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_logs
		SET check_in_time = $1, check_out_time = $2, status = $3,
			checkin_status = $4, total_hours = $5,
			needs_checkout_correction = $6, auto_checkout = $7,
			updated_at = NOW()
		WHERE id = $8
	`

	commandTag, err := q.Exec(ctx, query,
		log.CheckInTime,
		log.CheckOutTime,
		log.Status,
		log.CheckinStatus,
		log.TotalHours,
		log.NeedsCheckoutCorrection,
		log.AutoCheckout,
		log.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance log: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM attendance_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance log: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// GetOpenLog implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetOpenLog(ctx context.Context, employeeID string, date time.Time) (attendance.AttendanceLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + `
		WHERE a.employee_id = $1 AND a.date = $2
		  AND a.check_in_time IS NOT NULL AND a.check_out_time IS NULL
		ORDER BY a.check_in_time DESC
		LIMIT 1`

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceLog{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceLog{}, fmt.Errorf("failed to get open attendance log: %w", err)
	}

	return a, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]attendance.AttendanceLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + `
		WHERE a.employee_id = $1 AND a.date = $2
		ORDER BY a.check_in_time DESC NULLS LAST`

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance logs: %w", err)
	}
	defer rows.Close()

	var logs []attendance.AttendanceLog
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		logs = append(logs, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return logs, nil
}

// HasRecordOn implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) HasRecordOn(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM attendance_logs WHERE employee_id = $1 AND date = $2)`
	if err := q.QueryRow(ctx, query, employeeID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check attendance record: %w", err)
	}

	return exists, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.AttendanceLog, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		where = append(where, fmt.Sprintf("a.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.BranchID != nil && *filter.BranchID != "" {
		where = append(where, fmt.Sprintf("u.branch_id = $%d", argIdx))
		args = append(args, *filter.BranchID)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		where = append(where, fmt.Sprintf("a.date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		where = append(where, fmt.Sprintf("a.date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		where = append(where, fmt.Sprintf("a.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendance_logs a JOIN users u ON u.id = a.employee_id WHERE ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance logs: %w", err)
	}

	query := `SELECT ` + attendanceColumns + attendanceJoins + ` WHERE ` + whereClause +
		fmt.Sprintf(" ORDER BY a.date DESC, a.check_in_time DESC NULLS LAST LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance logs: %w", err)
	}
	defer rows.Close()

	var logs []attendance.AttendanceLog
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		logs = append(logs, a)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return logs, total, nil
}

// GetStaleOpenLogs implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetStaleOpenLogs(ctx context.Context, before time.Time) ([]attendance.AttendanceLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + `
		WHERE a.check_in_time IS NOT NULL AND a.check_out_time IS NULL
		  AND a.date < $1
		ORDER BY a.date ASC`

	rows, err := q.Query(ctx, query, before)
	if err != nil {
		return nil, fmt.Errorf("failed to get stale attendance logs: %w", err)
	}
	defer rows.Close()

	var logs []attendance.AttendanceLog
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		logs = append(logs, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return logs, nil
}

// BulkCreateAbsences implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) BulkCreateAbsences(ctx context.Context, logs []attendance.AttendanceLog) error {
	if len(logs) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	batch := &pgx.Batch{}
	query := `
		INSERT INTO attendance_logs (
			id, employee_id, date, status, checkin_status, total_hours,
			needs_checkout_correction, auto_checkout, created_at, updated_at
		)
		VALUES (uuidv7(), $1, $2, 'absent', 'no_data', 0, false, false, NOW(), NOW())
		ON CONFLICT (employee_id, date) WHERE check_in_time IS NULL DO NOTHING
	`
	for _, log := range logs {
		batch.Queue(query, log.EmployeeID, log.Date)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range logs {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert absence: %w", err)
		}
	}

	return nil
}
