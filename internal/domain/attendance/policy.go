package attendance

import (
	"math"
	"time"

	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/clock"
)

// Same-day button checkout is only allowed up to 18:00 local; beyond
// that the employee must go through the correction workflow. The
// correction workflow also caps claimed times at this cutoff.
const (
	CheckoutCutoffHour   = 18
	CheckoutCutoffMinute = 0

	// Late window after the grace deadline before a check-in counts as
	// very late.
	lateWindow = time.Hour
)

// ClassifyCheckIn classifies a check-in instant against the employee's
// expected login time and grace period, all in loc:
//
//	on_time    checkIn <= expected + grace
//	late       checkIn <= expected + grace + 1h
//	very_late  beyond
func ClassifyCheckIn(checkIn time.Time, date time.Time, sched Schedule, loc *time.Location) CheckinStatus {
	expected := clock.CombineDateTime(date, sched.LoginTime, loc)
	graceDeadline := expected.Add(time.Duration(sched.GraceMinutes) * time.Minute)
	lateDeadline := graceDeadline.Add(lateWindow)

	local := checkIn.In(loc)
	switch {
	case !local.After(graceDeadline):
		return CheckinOnTime
	case !local.After(lateDeadline):
		return CheckinLate
	default:
		return CheckinVeryLate
	}
}

// WorkedHours returns the hours between in and out, rounded to two
// decimal places. Returns 0 for a non-positive interval.
func WorkedHours(in, out time.Time) float64 {
	if !out.After(in) {
		return 0
	}
	hours := out.Sub(in).Hours()
	return math.Round(hours*100) / 100
}

// PastCutoff reports whether t's local time-of-day is strictly after
// the 18:00 checkout cutoff.
func PastCutoff(t time.Time, loc *time.Location) bool {
	local := t.In(loc)
	if local.Hour() != CheckoutCutoffHour {
		return local.Hour() > CheckoutCutoffHour
	}
	return local.Minute() > CheckoutCutoffMinute || local.Second() > 0 || local.Nanosecond() > 0
}

// CutoffFor returns the 18:00 cutoff instant for the given date in loc.
func CutoffFor(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), CheckoutCutoffHour, CheckoutCutoffMinute, 0, 0, loc)
}
