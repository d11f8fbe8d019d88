package attendance

import "time"

type Status string

const (
	StatusPresent        Status = "present"
	StatusAbsent         Status = "absent"
	StatusDidNotCheckout Status = "did_not_checkout"
)

type CheckinStatus string

const (
	CheckinOnTime   CheckinStatus = "on_time"
	CheckinLate     CheckinStatus = "late"
	CheckinVeryLate CheckinStatus = "very_late"
	CheckinNoData   CheckinStatus = "no_data"
)

// AttendanceLog is one employee's attendance for one calendar date.
// status, checkin_status, total_hours and needs_checkout_correction are
// derived; Recompute re-establishes them after every mutation.
type AttendanceLog struct {
	ID                      string
	EmployeeID              string
	Date                    time.Time // calendar date, midnight in org timezone
	CheckInTime             *time.Time
	CheckOutTime            *time.Time
	Status                  Status
	CheckinStatus           CheckinStatus
	TotalHours              float64
	NeedsCheckoutCorrection bool
	AutoCheckout            bool
	CreatedAt               time.Time
	UpdatedAt               time.Time

	// Joins
	EmployeeName *string
	EmployeeCode *string
	BranchID     *string
	BranchName   *string
}

// Schedule carries the per-employee expectations the time policy
// classifies against.
type Schedule struct {
	LoginTime    time.Time // time-of-day
	GraceMinutes int
}

// Recompute derives status, checkin classification, worked hours and
// the correction flag from the raw timestamps. Callers invoke it after
// every timestamp mutation; nothing else may set the derived fields.
func (a *AttendanceLog) Recompute(sched Schedule, loc *time.Location) {
	switch {
	case a.CheckInTime != nil && a.CheckOutTime != nil:
		a.TotalHours = WorkedHours(*a.CheckInTime, *a.CheckOutTime)
		a.Status = StatusPresent
		a.NeedsCheckoutCorrection = false
	case a.CheckInTime != nil:
		a.TotalHours = 0
		a.Status = StatusDidNotCheckout
		a.NeedsCheckoutCorrection = true
	default:
		a.TotalHours = 0
		a.NeedsCheckoutCorrection = false
	}

	if a.CheckInTime != nil {
		a.CheckinStatus = ClassifyCheckIn(*a.CheckInTime, a.Date, sched, loc)
	} else {
		a.CheckinStatus = CheckinNoData
	}
}

// IsOpen reports whether the record is awaiting checkout.
func (a *AttendanceLog) IsOpen() bool {
	return a.CheckInTime != nil && a.CheckOutTime == nil
}
