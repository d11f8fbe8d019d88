package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/checkout"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type checkoutRequestRepositoryImpl struct {
	db *database.DB
}

func NewCheckoutRequestRepository(db *database.DB) checkout.CheckoutRequestRepository {
	return &checkoutRequestRepositoryImpl{db: db}
}

const checkoutColumns = `
	c.id, c.therapist_id, c.attendance_log_id, c.requested_time, c.reason,
	c.status, c.supervisor_id, c.supervisor_notes, c.created_at, c.processed_at,
	t.first_name || ' ' || t.last_name AS therapist_name,
	t.employee_code AS therapist_code,
	s.first_name || ' ' || s.last_name AS supervisor_name,
	a.date AS attendance_date,
	a.check_in_time
`

const checkoutJoins = `
	FROM checkout_requests c
	JOIN users t ON t.id = c.therapist_id
	JOIN users s ON s.id = c.supervisor_id
	JOIN attendance_logs a ON a.id = c.attendance_log_id
`

func scanCheckoutRequest(row pgx.Row) (checkout.CheckoutRequest, error) {
	var c checkout.CheckoutRequest
	err := row.Scan(
		&c.ID,
		&c.TherapistID,
		&c.AttendanceLogID,
		&c.RequestedTime,
		&c.Reason,
		&c.Status,
		&c.SupervisorID,
		&c.SupervisorNotes,
		&c.CreatedAt,
		&c.ProcessedAt,
		&c.TherapistName,
		&c.TherapistCode,
		&c.SupervisorName,
		&c.AttendanceDate,
		&c.CheckInTime,
	)
	return c, err
}

// Create implements checkout.CheckoutRequestRepository.
func (r *checkoutRequestRepositoryImpl) Create(ctx context.Context, req checkout.CheckoutRequest) (checkout.CheckoutRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO checkout_requests (
			id, therapist_id, attendance_log_id, requested_time, reason,
			status, supervisor_id, supervisor_notes, created_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		req.TherapistID,
		req.AttendanceLogID,
		req.RequestedTime,
		req.Reason,
		req.Status,
		req.SupervisorID,
		req.SupervisorNotes,
	).Scan(&req.ID, &req.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return checkout.CheckoutRequest{}, checkout.ErrDuplicateRequest
		}
		return checkout.CheckoutRequest{}, fmt.Errorf("failed to create checkout request: %w", err)
	}

	return req, nil
}

// GetByID implements checkout.CheckoutRequestRepository.
func (r *checkoutRequestRepositoryImpl) GetByID(ctx context.Context, id string) (checkout.CheckoutRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + checkoutColumns + checkoutJoins + ` WHERE c.id = $1`

	c, err := scanCheckoutRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return checkout.CheckoutRequest{}, checkout.ErrRequestNotFound
		}
		return checkout.CheckoutRequest{}, fmt.Errorf("failed to get checkout request: %w", err)
	}

	return c, nil
}

// ExistsForAttendanceLog implements checkout.CheckoutRequestRepository.
func (r *checkoutRequestRepositoryImpl) ExistsForAttendanceLog(ctx context.Context, attendanceLogID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM checkout_requests WHERE attendance_log_id = $1)`
	if err := q.QueryRow(ctx, query, attendanceLogID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check checkout request existence: %w", err)
	}

	return exists, nil
}

// Update implements checkout.CheckoutRequestRepository.
func (r *checkoutRequestRepositoryImpl) Update(ctx context.Context, req checkout.CheckoutRequest) error {
	q := GetQuerier(ctx, r.db)

	// The status guard makes resolution first-writer-wins when two
	// resolvers race on the same pending request.
	query := `
		UPDATE checkout_requests
		SET status = $1, supervisor_notes = $2, processed_at = $3
		WHERE id = $4 AND status = 'pending'
	`

	commandTag, err := q.Exec(ctx, query, req.Status, req.SupervisorNotes, req.ProcessedAt, req.ID)
	if err != nil {
		return fmt.Errorf("failed to update checkout request: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return checkout.ErrAlreadyProcessed
	}

	return nil
}

// List implements checkout.CheckoutRequestRepository.
func (r *checkoutRequestRepositoryImpl) List(ctx context.Context, filter checkout.Filter) ([]checkout.CheckoutRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Status != nil && *filter.Status != "" {
		where = append(where, fmt.Sprintf("c.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.TherapistID != nil && *filter.TherapistID != "" {
		where = append(where, fmt.Sprintf("c.therapist_id = $%d", argIdx))
		args = append(args, *filter.TherapistID)
		argIdx++
	}
	if filter.SupervisorID != nil && *filter.SupervisorID != "" {
		where = append(where, fmt.Sprintf("c.supervisor_id = $%d", argIdx))
		args = append(args, *filter.SupervisorID)
		argIdx++
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM checkout_requests c WHERE ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count checkout requests: %w", err)
	}

	query := `SELECT ` + checkoutColumns + checkoutJoins + ` WHERE ` + whereClause +
		fmt.Sprintf(" ORDER BY c.created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list checkout requests: %w", err)
	}
	defer rows.Close()

	var requests []checkout.CheckoutRequest
	for rows.Next() {
		c, err := scanCheckoutRequest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan checkout request: %w", err)
		}
		requests = append(requests, c)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, total, nil
}
