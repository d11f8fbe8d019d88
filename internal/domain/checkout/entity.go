package checkout

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// CheckoutRequest is a therapist's claim of the time they actually left
// on a day they forgot to check out. pending -> approved|rejected, both
// terminal; approval retroactively patches the attendance log.
type CheckoutRequest struct {
	ID              string
	TherapistID     string
	AttendanceLogID string
	RequestedTime   time.Time // time-of-day the employee claims they left
	Reason          string
	Status          Status
	SupervisorID    string
	SupervisorNotes string
	CreatedAt       time.Time
	ProcessedAt     *time.Time

	// Joins
	TherapistName  *string
	TherapistCode  *string
	SupervisorName *string
	AttendanceDate *time.Time
	CheckInTime    *time.Time
}

// Resolved reports whether the request has left the pending state.
func (r *CheckoutRequest) Resolved() bool {
	return r.Status != StatusPending
}
