package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLocation(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return loc
}

func TestClassifyCheckIn(t *testing.T) {
	loc := testLocation(t)
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)
	sched := Schedule{
		LoginTime:    time.Date(0, 1, 1, 9, 30, 0, 0, time.UTC),
		GraceMinutes: 10,
	}

	cases := []struct {
		name    string
		checkIn time.Time
		want    CheckinStatus
	}{
		{"well before login", time.Date(2026, 3, 2, 8, 45, 0, 0, loc), CheckinOnTime},
		{"exactly at login", time.Date(2026, 3, 2, 9, 30, 0, 0, loc), CheckinOnTime},
		{"at grace deadline", time.Date(2026, 3, 2, 9, 40, 0, 0, loc), CheckinOnTime},
		{"one second past grace", time.Date(2026, 3, 2, 9, 40, 1, 0, loc), CheckinLate},
		{"within late window", time.Date(2026, 3, 2, 10, 15, 0, 0, loc), CheckinLate},
		{"at late deadline", time.Date(2026, 3, 2, 10, 40, 0, 0, loc), CheckinLate},
		{"one second past late window", time.Date(2026, 3, 2, 10, 40, 1, 0, loc), CheckinVeryLate},
		{"mid afternoon", time.Date(2026, 3, 2, 14, 0, 0, 0, loc), CheckinVeryLate},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ClassifyCheckIn(c.checkIn, date, sched, loc)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestClassifyCheckInNormalizesTimezone(t *testing.T) {
	loc := testLocation(t)
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)
	sched := Schedule{
		LoginTime:    time.Date(0, 1, 1, 9, 30, 0, 0, time.UTC),
		GraceMinutes: 10,
	}

	// 04:05 UTC is 09:35 in Kolkata, inside the grace window.
	checkIn := time.Date(2026, 3, 2, 4, 5, 0, 0, time.UTC)
	assert.Equal(t, CheckinOnTime, ClassifyCheckIn(checkIn, date, sched, loc))
}

func TestWorkedHours(t *testing.T) {
	in := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		out  time.Time
		want float64
	}{
		{"seven and three quarter hours", in.Add(7*time.Hour + 45*time.Minute), 7.75},
		{"rounds to two decimals", in.Add(7*time.Hour + 50*time.Minute), 7.83},
		{"zero interval", in, 0},
		{"checkout before checkin", in.Add(-time.Hour), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, WorkedHours(in, c.out))
		})
	}
}

func TestPastCutoff(t *testing.T) {
	loc := testLocation(t)

	cases := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"morning", time.Date(2026, 3, 2, 9, 0, 0, 0, loc), false},
		{"exactly 18:00", time.Date(2026, 3, 2, 18, 0, 0, 0, loc), false},
		{"one second past", time.Date(2026, 3, 2, 18, 0, 1, 0, loc), true},
		{"one nanosecond past", time.Date(2026, 3, 2, 18, 0, 0, 1, loc), true},
		{"evening", time.Date(2026, 3, 2, 19, 30, 0, 0, loc), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, PastCutoff(c.t, loc))
		})
	}
}

func TestPastCutoffConvertsToLocal(t *testing.T) {
	loc := testLocation(t)

	// 13:00 UTC is 18:30 in Kolkata.
	assert.True(t, PastCutoff(time.Date(2026, 3, 2, 13, 0, 0, 0, time.UTC), loc))
	// 12:00 UTC is 17:30 in Kolkata.
	assert.False(t, PastCutoff(time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC), loc))
}

func TestCutoffFor(t *testing.T) {
	loc := testLocation(t)
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	got := CutoffFor(date, loc)
	assert.Equal(t, time.Date(2026, 3, 2, 18, 0, 0, 0, loc), got)
}

func TestRecompute(t *testing.T) {
	loc := testLocation(t)
	sched := Schedule{
		LoginTime:    time.Date(0, 1, 1, 9, 30, 0, 0, time.UTC),
		GraceMinutes: 10,
	}
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)
	checkIn := time.Date(2026, 3, 2, 9, 35, 0, 0, loc)
	checkOut := time.Date(2026, 3, 2, 17, 20, 0, 0, loc)

	t.Run("closed record", func(t *testing.T) {
		log := AttendanceLog{Date: date, CheckInTime: &checkIn, CheckOutTime: &checkOut}
		log.Recompute(sched, loc)

		assert.Equal(t, StatusPresent, log.Status)
		assert.Equal(t, CheckinOnTime, log.CheckinStatus)
		assert.Equal(t, 7.75, log.TotalHours)
		assert.False(t, log.NeedsCheckoutCorrection)
		assert.False(t, log.IsOpen())
	})

	t.Run("open record needs correction", func(t *testing.T) {
		log := AttendanceLog{Date: date, CheckInTime: &checkIn}
		log.Recompute(sched, loc)

		assert.Equal(t, StatusDidNotCheckout, log.Status)
		assert.Equal(t, CheckinOnTime, log.CheckinStatus)
		assert.Zero(t, log.TotalHours)
		assert.True(t, log.NeedsCheckoutCorrection)
		assert.True(t, log.IsOpen())
	})

	t.Run("no timestamps", func(t *testing.T) {
		log := AttendanceLog{Date: date, Status: StatusAbsent}
		log.Recompute(sched, loc)

		assert.Equal(t, StatusAbsent, log.Status)
		assert.Equal(t, CheckinNoData, log.CheckinStatus)
		assert.Zero(t, log.TotalHours)
		assert.False(t, log.NeedsCheckoutCorrection)
	})

	t.Run("correction clears after checkout is filled", func(t *testing.T) {
		log := AttendanceLog{Date: date, CheckInTime: &checkIn}
		log.Recompute(sched, loc)
		require.True(t, log.NeedsCheckoutCorrection)

		log.CheckOutTime = &checkOut
		log.Recompute(sched, loc)
		assert.False(t, log.NeedsCheckoutCorrection)
		assert.Equal(t, StatusPresent, log.Status)
		assert.Equal(t, 7.75, log.TotalHours)
	})
}
