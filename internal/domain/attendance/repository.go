package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance logs.
type AttendanceRepository interface {
	Create(ctx context.Context, log AttendanceLog) (AttendanceLog, error)
	GetByID(ctx context.Context, id string) (AttendanceLog, error)
	Update(ctx context.Context, log AttendanceLog) error
	Delete(ctx context.Context, id string) error

	// GetOpenLog returns the latest open record (check-in set,
	// check-out unset) for the employee on date, or ErrAttendanceNotFound.
	GetOpenLog(ctx context.Context, employeeID string, date time.Time) (AttendanceLog, error)

	// GetByEmployeeAndDate returns all records for the employee on
	// date, newest check-in first. Multiple rows occur when re-check-in
	// after a completed cycle is enabled.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]AttendanceLog, error)

	// HasRecordOn reports whether any record exists for the employee on
	// the date, regardless of state.
	HasRecordOn(ctx context.Context, employeeID string, date time.Time) (bool, error)

	List(ctx context.Context, filter Filter) ([]AttendanceLog, int64, error)

	// GetStaleOpenLogs returns open records whose date is at least
	// minAgeDays days in the past, for the auto-checkout job.
	GetStaleOpenLogs(ctx context.Context, before time.Time) ([]AttendanceLog, error)

	// BulkCreateAbsences inserts absent records in one round trip
	// (administrative batch-create path).
	BulkCreateAbsences(ctx context.Context, logs []AttendanceLog) error
}

// QRLogRepository tracks issued check-in QR codes. Expiry is checked at
// read time against issued_at; nothing actively purges old rows.
type QRLogRepository interface {
	Create(ctx context.Context, log QRCodeLog) (QRCodeLog, error)

	// GetUnusedByEmployeeAndIssue locates the unused log matching the
	// scanned payload's issue instant (within a small tolerance).
	GetUnusedByEmployeeAndIssue(ctx context.Context, employeeCode string, issuedAt time.Time, tolerance time.Duration) (QRCodeLog, error)

	MarkUsed(ctx context.Context, id string, usedAt time.Time) error
}
