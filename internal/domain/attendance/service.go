package attendance

import "context"

// AttendanceService owns the attendance record lifecycle.
type AttendanceService interface {
	// CheckIn records the employee's arrival. Fails with
	// ErrAlreadyCheckedIn while an open record exists for today.
	CheckIn(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// CheckOut closes the latest open record for today, subject to the
	// 18:00 cutoff.
	CheckOut(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// GenerateQR issues a signed, short-lived check-in payload for the
	// authenticated employee.
	GenerateQR(ctx context.Context, employeeID string) (GenerateQRResponse, error)

	// ScanQR validates a scanned payload and performs the check-in it
	// encodes.
	ScanQR(ctx context.Context, req ScanQRRequest) (AttendanceResponse, error)

	// GetToday returns today's records for the authenticated employee.
	GetToday(ctx context.Context, employeeID string) ([]AttendanceResponse, error)

	// List returns records visible to the acting user under the access
	// policy, newest date first.
	List(ctx context.Context, actorID string, filter Filter) (ListAttendanceResponse, error)

	// Delete removes a record (superadmin only).
	Delete(ctx context.Context, actorID, id string) error
}
