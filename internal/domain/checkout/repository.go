package checkout

import "context"

type CheckoutRequestRepository interface {
	Create(ctx context.Context, req CheckoutRequest) (CheckoutRequest, error)
	GetByID(ctx context.Context, id string) (CheckoutRequest, error)

	// ExistsForAttendanceLog enforces the one-request-per-record rule.
	ExistsForAttendanceLog(ctx context.Context, attendanceLogID string) (bool, error)

	// Update persists a resolution (status, notes, processed_at).
	Update(ctx context.Context, req CheckoutRequest) error

	List(ctx context.Context, filter Filter) ([]CheckoutRequest, int64, error)
}
