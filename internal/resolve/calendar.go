package resolve

import (
	"fmt"
	"time"

	"github.com/steveyegge/timespan/internal/ast"
	"github.com/steveyegge/timespan/internal/types"
)

// Calendar arithmetic. Everything works on zone-naive values in
// time.UTC, so a day is always 24 hours and a week 168; there is no
// DST to account for.

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// dayInterval returns the full day beginning at d, which must be a
// day start.
func dayInterval(d time.Time) types.Interval {
	return types.Interval{Start: d, End: d.AddDate(0, 0, 1)}
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func monthInterval(year, month int) types.Interval {
	s := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return types.Interval{Start: s, End: s.AddDate(0, 1, 0)}
}

func yearInterval(year int) types.Interval {
	s := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return types.Interval{Start: s, End: s.AddDate(1, 0, 0)}
}

// weekStart returns the start of the week containing t under the given
// first-day convention.
func weekStart(t time.Time, mondayFirst bool) time.Time {
	d := dayStart(t)
	wd := int(d.Weekday()) // Sunday = 0
	if mondayFirst {
		wd = (wd + 6) % 7
	}
	return d.AddDate(0, 0, -wd)
}

// addMonths shifts t by n calendar months, clamping to the last day of
// the target month (January 31 plus one month is February 28 or 29).
// time.AddDate normalizes overflow forward instead, which is wrong for
// period arithmetic.
func addMonths(t time.Time, n int) time.Time {
	m := int(t.Month()) - 1 + n
	y := t.Year() + floorDiv(m, 12)
	m = mod(m, 12) + 1
	d := t.Day()
	if last := daysIn(y, m); d > last {
		d = last
	}
	return time.Date(y, time.Month(m), d, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// daysIn returns the number of days in the given month; day zero of the
// following month is its last day.
func daysIn(year, month int) int {
	return time.Date(year, time.Month(month+1), 0, 0, 0, 0, 0, time.UTC).Day()
}

// romanDay maps a Roman day name to its day-of-month. The nones and
// ides fall later in March, May, July, and October.
func romanDay(r ast.Roman, month int) int {
	long := month == 3 || month == 5 || month == 7 || month == 10
	switch r {
	case ast.RomanKalends:
		return 1
	case ast.RomanNones:
		if long {
			return 7
		}
		return 5
	case ast.RomanIdes:
		if long {
			return 15
		}
		return 13
	}
	panic(fmt.Sprintf("resolve: bad roman day %d", int(r)))
}

// expandYear completes a two-digit year against the reference instant:
// values at or below the current year-of-century land in the current
// century, larger values in the previous one ('69 is 1969 in 2026,
// '21 is 2021).
func expandYear(y int, now time.Time) int {
	century := now.Year() - now.Year()%100
	if y > now.Year()%100 {
		return century - 100 + y
	}
	return century + y
}

// ordinal renders 1 as "1st", 22 as "22nd", and so on, for error text.
func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
