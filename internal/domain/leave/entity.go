package leave

import "time"

type Type string

const (
	TypeCasual    Type = "casual"
	TypeSick      Type = "sick"
	TypeEmergency Type = "emergency"
	TypeUnpaid    Type = "unpaid"
)

// ValidType reports whether s names a known leave type.
func ValidType(s string) bool {
	switch Type(s) {
	case TypeCasual, TypeSick, TypeEmergency, TypeUnpaid:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// LeaveApplication is an employee's request for time off over an
// inclusive [StartDate, EndDate] range. LeaveDays and MonthYear are
// derived on every save.
type LeaveApplication struct {
	ID         string
	EmployeeID string
	LeaveType  Type
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     Status
	LeaveDays  int
	MonthYear  string // "YYYY-MM" of the start date, for monthly CL tracking
	AppliedAt  time.Time
	ApprovedBy *string
	ApprovedAt *time.Time

	// Joins
	EmployeeName *string
	EmployeeCode *string
	BranchID     *string
	BranchName   *string
	ApproverName *string
}

// Recompute derives the day count and month tag from the date range.
func (l *LeaveApplication) Recompute() {
	l.LeaveDays = DayCount(l.StartDate, l.EndDate)
	l.MonthYear = l.StartDate.Format("2006-01")
}

// DayCount returns the inclusive number of calendar days in the range.
func DayCount(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// Overlaps reports whether two inclusive date ranges intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// Resolved reports whether the application has left the pending state.
func (l *LeaveApplication) Resolved() bool {
	return l.Status != StatusPending
}
