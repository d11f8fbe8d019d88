package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/attendance"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type qrLogRepositoryImpl struct {
	db *database.DB
}

func NewQRLogRepository(db *database.DB) attendance.QRLogRepository {
	return &qrLogRepositoryImpl{db: db}
}

// Create implements attendance.QRLogRepository.
func (r *qrLogRepositoryImpl) Create(ctx context.Context, log attendance.QRCodeLog) (attendance.QRCodeLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO qr_code_logs (id, employee_code, issued_at, qr_type, is_used, created_at)
		VALUES (uuidv7(), $1, $2, $3, false, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, log.EmployeeCode, log.IssuedAt, log.QRType).
		Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		return attendance.QRCodeLog{}, fmt.Errorf("failed to create qr code log: %w", err)
	}

	return log, nil
}

// GetUnusedByEmployeeAndIssue implements attendance.QRLogRepository.
func (r *qrLogRepositoryImpl) GetUnusedByEmployeeAndIssue(ctx context.Context, employeeCode string, issuedAt time.Time, tolerance time.Duration) (attendance.QRCodeLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_code, issued_at, qr_type, is_used, used_at, created_at
		FROM qr_code_logs
		WHERE employee_code = $1
		  AND is_used = false
		  AND issued_at BETWEEN $2 AND $3
		ORDER BY issued_at DESC
		LIMIT 1
	`

	var log attendance.QRCodeLog
	err := q.QueryRow(ctx, query, employeeCode, issuedAt.Add(-tolerance), issuedAt.Add(tolerance)).Scan(
		&log.ID,
		&log.EmployeeCode,
		&log.IssuedAt,
		&log.QRType,
		&log.IsUsed,
		&log.UsedAt,
		&log.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.QRCodeLog{}, attendance.ErrQRAlreadyUsed
		}
		return attendance.QRCodeLog{}, fmt.Errorf("failed to get qr code log: %w", err)
	}

	return log, nil
}

// MarkUsed implements attendance.QRLogRepository.
func (r *qrLogRepositoryImpl) MarkUsed(ctx context.Context, id string, usedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE qr_code_logs
		SET is_used = true, used_at = $1
		WHERE id = $2 AND is_used = false
	`

	commandTag, err := q.Exec(ctx, query, usedAt, id)
	if err != nil {
		return fmt.Errorf("failed to mark qr code used: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrQRAlreadyUsed
	}

	return nil
}
