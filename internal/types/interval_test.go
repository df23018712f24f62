package types

import (
	"testing"
	"time"
)

func d(y int, m time.Month, day, hh, mm, ss int) time.Time {
	return time.Date(y, m, day, hh, mm, ss, 0, time.UTC)
}

func TestIntervalContains(t *testing.T) {
	iv := Interval{Start: d(2024, 6, 14, 0, 0, 0), End: d(2024, 6, 15, 0, 0, 0)}
	if !iv.Contains(iv.Start) {
		t.Error("start excluded")
	}
	if iv.Contains(iv.End) {
		t.Error("end included; interval must be half-open")
	}
	if !iv.Contains(d(2024, 6, 14, 23, 59, 59)) {
		t.Error("last second excluded")
	}
}

func TestSpan(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
		want       Span
	}{
		{
			"one day",
			d(2024, 6, 14, 0, 0, 0), d(2024, 6, 15, 0, 0, 0),
			Span{Days: 1},
		},
		{
			"one calendar month regardless of length",
			d(2024, 2, 1, 0, 0, 0), d(2024, 3, 1, 0, 0, 0),
			Span{Months: 1},
		},
		{
			"day and clock fields",
			d(2024, 6, 14, 0, 0, 0), d(2024, 6, 15, 10, 30, 0),
			Span{Days: 1, Hours: 10, Minutes: 30},
		},
		{
			"borrow across a year boundary",
			d(2023, 12, 25, 0, 0, 0), d(2024, 1, 2, 0, 0, 0),
			Span{Days: 8},
		},
		{
			"double borrow when the month is too short",
			d(2024, 1, 31, 0, 0, 0), d(2024, 3, 1, 0, 0, 0),
			Span{Days: 30},
		},
		{
			"seconds borrow cascades",
			d(2024, 6, 14, 23, 59, 59), d(2024, 6, 15, 0, 0, 0),
			Span{Seconds: 1},
		},
	}
	for _, c := range cases {
		got := Interval{Start: c.start, End: c.end}.Span()
		if got != c.want {
			t.Errorf("%s: got %+v, want %+v", c.name, got, c.want)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	now := d(2024, 6, 15, 10, 30, 0)
	cfg := DefaultConfig(now)
	if !cfg.Now.Equal(now) {
		t.Errorf("Now = %v", cfg.Now)
	}
	if !cfg.DefaultToPast || !cfg.MondayStartsWeek {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.PayPeriodLength != 14 || !cfg.PayPeriodStart.IsZero() {
		t.Errorf("unexpected pay period defaults: %+v", cfg)
	}

	cfg = DefaultConfig(time.Time{})
	if cfg.Now.IsZero() {
		t.Error("zero now not replaced with wall clock")
	}
}
