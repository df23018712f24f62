// Package ast defines the typed intermediate form between the parse
// tree and the resolver: a closed set of tagged variants carrying only
// the semantically relevant captures. Every node owns its children
// exclusively; there is no sharing and no cycle.
package ast

import "time"

// Node is the closed union of expression shapes. The resolver switches
// exhaustively over the concrete types.
type Node interface{ astNode() }

func (*Universal) astNode() {}
func (*Moment) astNode()    {}
func (*Period) astNode()    {}
func (*Offset) astNode()    {}
func (*Range) astNode()     {}
func (*Since) astNode()     {}

// Universal is "forever": the whole representable range.
type Universal struct{}

// Adverb is a deictic day word.
type Adverb int

const (
	AdverbNone Adverb = iota
	AdverbNow
	AdverbToday
	AdverbTomorrow
	AdverbYesterday
)

// Terminus marks the absolute ends of time.
type Terminus int

const (
	TerminusNone Terminus = iota
	TerminusFirst // "the beginning of time", "the big bang"
	TerminusLast  // "the end of time", "eternity"
)

// Roman is a Roman-calendar day name. The concrete day-of-month depends
// on the month (nones and ides shift in March, May, July, October), so
// the resolver computes it per candidate month.
type Roman int

const (
	RomanNone Roman = iota
	RomanKalends
	RomanNones
	RomanIdes
)

// DateSpec is a possibly partial calendar date. Zero fields are
// unspecified; the resolver searches outward from the reference instant
// for the nearest date satisfying every constraint that is set.
type DateSpec struct {
	HasYear      bool
	Year         int // raw value; see YearTwoDigit
	YearTwoDigit bool
	Month        int // 1..12, 0 unset
	Day          int // 1..31, 0 unset
	HasWeekday   bool
	Weekday      time.Weekday
	Roman        Roman
}

// TimeSpec is a clock time, already normalized to 24-hour form.
type TimeSpec struct {
	Hour, Minute, Second int
}

// Moment is a day expression with an optional clock time, or a bare
// clock time, or an absolute terminus.
type Moment struct {
	Adverb   Adverb
	Terminus Terminus
	Date     *DateSpec
	Time     *TimeSpec
}

// PeriodKind classifies a period expression.
type PeriodKind int

const (
	PeriodWeek PeriodKind = iota
	PeriodMonth
	PeriodYear
	PeriodWeekend
	PeriodPayPeriod
	PeriodNamedMonth   // "May", "next May"
	PeriodNamedWeekday // "next Friday"
	PeriodMonthYear    // "May 1969"
	PeriodCalendarYear // "2024", "100AD"
)

// Modifier is the this/last/next selector.
type Modifier int

const (
	ModNone Modifier = iota
	ModThis
	ModLast
	ModNext
)

// Period is a calendar period, possibly modified.
type Period struct {
	Kind         PeriodKind
	Modifier     Modifier
	Month        int // for NamedMonth, MonthYear
	Weekday      time.Weekday
	Year         int // for MonthYear, CalendarYear; astronomical for BCE
	YearTwoDigit bool
}

// Unit is a relative-offset unit.
type Unit int

const (
	UnitSecond Unit = iota
	UnitMinute
	UnitHour
	UnitDay
	UnitWeek
	UnitMonth
	UnitYear
)

// Direction orients a relative offset.
type Direction int

const (
	Before Direction = iota
	After
)

// Offset is "count units before/after anchor". A nil Anchor means the
// reference instant ("2 weeks ago", "3 days from now").
type Offset struct {
	Count     int
	Unit      Unit
	Direction Direction
	Anchor    Node
}

// Range is a two-point range. InclusiveEnd distinguishes "through"
// (keep the right side's full span) from "to"/"up to" (stop where the
// right side begins).
type Range struct {
	Left         Node
	Right        Node
	InclusiveEnd bool
}

// Since is an open-ended range from the anchor's start to the
// reference instant.
type Since struct {
	Anchor Node
}
