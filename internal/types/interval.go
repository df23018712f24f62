// Package types holds the shared value types of the timespan engine:
// intervals, resolution configuration, and the error taxonomy.
//
// All timestamps are zone-naive calendar values carried in time.UTC.
// The engine never consults a system clock; the reference instant comes
// in through Config.
package types

import (
	"fmt"
	"time"
)

// MinInstant and MaxInstant bound the representable calendar range.
// Universal expressions ("forever") and absolute termini ("the beginning
// of time", "eternity") resolve to these.
var (
	MinInstant = time.Date(-9999, time.January, 1, 0, 0, 0, 0, time.UTC)
	MaxInstant = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)
)

// Interval is a half-open calendar range [Start, End). Start never
// exceeds End. A zero-width interval appears only for degenerate inputs
// (e.g. "the end of time"); every named period has a non-zero span.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Duration returns the absolute length of the interval.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Contains reports whether t falls inside the half-open range.
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}

// Span is the field-wise calendar difference between Start and End.
// Unlike Duration it respects calendar units: the span of a month
// interval is one month regardless of the month's length in days.
type Span struct {
	Years   int `json:"years"`
	Months  int `json:"months"`
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Span computes the field-wise calendar difference from Start to End.
func (iv Interval) Span() Span {
	a, b := iv.Start, iv.End

	seconds := b.Second() - a.Second()
	minutes := b.Minute() - a.Minute()
	hours := b.Hour() - a.Hour()
	days := b.Day() - a.Day()
	months := int(b.Month()) - int(a.Month())
	years := b.Year() - a.Year()

	if seconds < 0 {
		seconds += 60
		minutes--
	}
	if minutes < 0 {
		minutes += 60
		hours--
	}
	if hours < 0 {
		hours += 24
		days--
	}
	// Borrow month lengths walking back from End. One borrow can leave
	// days negative when Start sits past the borrowed month's length
	// (January 31 to March 1), so keep borrowing.
	borrow := time.Date(b.Year(), b.Month(), 1, 0, 0, 0, 0, time.UTC)
	for days < 0 {
		borrow = borrow.AddDate(0, -1, 0)
		days += time.Date(borrow.Year(), borrow.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
		months--
	}
	if months < 0 {
		months += 12
		years--
	}

	return Span{Years: years, Months: months, Days: days, Hours: hours, Minutes: minutes, Seconds: seconds}
}

func (s Span) String() string {
	return fmt.Sprintf("%dy%dm%dd %02d:%02d:%02d", s.Years, s.Months, s.Days, s.Hours, s.Minutes, s.Seconds)
}

const instantLayout = "2006-01-02 15:04:05"

func (iv Interval) String() string {
	return fmt.Sprintf("[%s, %s)", iv.Start.Format(instantLayout), iv.End.Format(instantLayout))
}
