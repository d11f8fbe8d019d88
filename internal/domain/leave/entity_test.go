package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayCount(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single day", day(2026, 3, 2), day(2026, 3, 2), 1},
		{"three days inclusive", day(2026, 3, 2), day(2026, 3, 4), 3},
		{"across month boundary", day(2026, 2, 27), day(2026, 3, 2), 4},
		{"across leap day", day(2028, 2, 28), day(2028, 3, 1), 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, DayCount(c.start, c.end))
		})
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name   string
		aStart time.Time
		aEnd   time.Time
		bStart time.Time
		bEnd   time.Time
		want   bool
	}{
		{"identical ranges", day(2026, 3, 2), day(2026, 3, 4), day(2026, 3, 2), day(2026, 3, 4), true},
		{"partial overlap", day(2026, 3, 2), day(2026, 3, 4), day(2026, 3, 4), day(2026, 3, 6), true},
		{"contained", day(2026, 3, 1), day(2026, 3, 10), day(2026, 3, 3), day(2026, 3, 5), true},
		{"adjacent days", day(2026, 3, 2), day(2026, 3, 4), day(2026, 3, 5), day(2026, 3, 7), false},
		{"disjoint", day(2026, 3, 2), day(2026, 3, 4), day(2026, 4, 1), day(2026, 4, 3), false},
		{"single day inside", day(2026, 3, 3), day(2026, 3, 3), day(2026, 3, 2), day(2026, 3, 4), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Overlaps(c.aStart, c.aEnd, c.bStart, c.bEnd))
			// Overlap is symmetric.
			assert.Equal(t, c.want, Overlaps(c.bStart, c.bEnd, c.aStart, c.aEnd))
		})
	}
}

func TestRecompute(t *testing.T) {
	app := LeaveApplication{
		StartDate: day(2026, 3, 30),
		EndDate:   day(2026, 4, 1),
	}
	app.Recompute()

	assert.Equal(t, 3, app.LeaveDays)
	assert.Equal(t, "2026-03", app.MonthYear)
}

func TestValidType(t *testing.T) {
	for _, s := range []string{"casual", "sick", "emergency", "unpaid"} {
		assert.True(t, ValidType(s), s)
	}
	for _, s := range []string{"annual", "Casual", ""} {
		assert.False(t, ValidType(s), s)
	}
}

func TestResolved(t *testing.T) {
	assert.False(t, (&LeaveApplication{Status: StatusPending}).Resolved())
	assert.True(t, (&LeaveApplication{Status: StatusApproved}).Resolved())
	assert.True(t, (&LeaveApplication{Status: StatusRejected}).Resolved())
}
