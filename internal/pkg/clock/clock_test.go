package clock

import (
	"testing"
	"time"
)

func TestFixed(t *testing.T) {
	instant := time.Date(2026, 3, 2, 9, 31, 0, 0, time.UTC)
	c := Fixed{Instant: instant}
	if !c.Now().Equal(instant) {
		t.Errorf("Fixed.Now() = %v, want %v", c.Now(), instant)
	}
}

func TestCombineDateTime(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatal(err)
	}

	date := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)
	tod := time.Date(0, 1, 1, 9, 30, 0, 0, time.UTC)

	got := CombineDateTime(date, tod, loc)
	want := time.Date(2026, 3, 2, 9, 30, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("CombineDateTime = %v, want %v", got, want)
	}
}

func TestDateOnly(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatal(err)
	}

	// 22:00 UTC on March 1 is already March 2 in Kolkata.
	in := time.Date(2026, 3, 1, 22, 0, 0, 0, time.UTC)
	got := DateOnly(in, loc)
	want := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("DateOnly = %v, want %v", got, want)
	}
}

func TestSameDate(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatal(err)
	}

	a := time.Date(2026, 3, 1, 22, 0, 0, 0, time.UTC) // March 2 in Kolkata
	b := time.Date(2026, 3, 2, 9, 0, 0, 0, loc)
	if !SameDate(a, b, loc) {
		t.Errorf("SameDate(%v, %v) = false, want true", a, b)
	}

	c := time.Date(2026, 3, 3, 9, 0, 0, 0, loc)
	if SameDate(a, c, loc) {
		t.Errorf("SameDate(%v, %v) = true, want false", a, c)
	}
}
