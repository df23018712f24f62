package ast

import (
	"errors"
	"testing"
	"time"

	"github.com/steveyegge/timespan/internal/grammar"
	"github.com/steveyegge/timespan/internal/types"
)

func extract(t *testing.T, input string) Node {
	t.Helper()
	tree, err := grammar.Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	node, err := Extract(tree)
	if err != nil {
		t.Fatalf("Extract(%q): %v", input, err)
	}
	return node
}

func TestExtractOffset(t *testing.T) {
	off, ok := extract(t, "2 weeks ago").(*Offset)
	if !ok {
		t.Fatal("not an Offset")
	}
	if off.Count != 2 || off.Unit != UnitWeek || off.Direction != Before || off.Anchor != nil {
		t.Errorf("got %+v", off)
	}

	off = extract(t, "an hour after noon").(*Offset)
	if off.Count != 1 || off.Unit != UnitHour || off.Direction != After {
		t.Errorf("got %+v", off)
	}
	anchor, ok := off.Anchor.(*Moment)
	if !ok || anchor.Time == nil || anchor.Time.Hour != 12 {
		t.Errorf("anchor = %+v", off.Anchor)
	}
}

func TestExtractWeekdayOrdinal(t *testing.T) {
	m := extract(t, "Friday the 13th").(*Moment)
	d := m.Date
	if d == nil || !d.HasWeekday || d.Weekday != time.Friday || d.Day != 13 || d.HasYear {
		t.Errorf("got %+v", d)
	}
}

func TestExtractFullDates(t *testing.T) {
	cases := []struct {
		input            string
		year, month, day int
		twoDigit         bool
	}{
		{"May 6, 1969", 1969, 5, 6, false},
		{"6 May 1969", 1969, 5, 6, false},
		{"5/6/69", 69, 5, 6, true},
		{"69-5-6", 69, 5, 6, true},
		{"12.25.2024", 2024, 12, 25, false},
	}
	for _, c := range cases {
		m := extract(t, c.input).(*Moment)
		d := m.Date
		if d == nil || !d.HasYear {
			t.Errorf("%q: no dated moment: %+v", c.input, m)
			continue
		}
		if d.Year != c.year || d.Month != c.month || d.Day != c.day || d.YearTwoDigit != c.twoDigit {
			t.Errorf("%q: got y=%d m=%d d=%d two=%v", c.input, d.Year, d.Month, d.Day, d.YearTwoDigit)
		}
	}
}

func TestExtractClockNormalization(t *testing.T) {
	cases := []struct {
		input   string
		h, m, s int
	}{
		{"3:30 pm", 15, 30, 0},
		{"12 am", 0, 0, 0},
		{"12 pm", 12, 0, 0},
		{"noon", 12, 0, 0},
		{"midnight", 0, 0, 0},
		{"15:45:30", 15, 45, 30},
		{"at 10", 10, 0, 0},
	}
	for _, c := range cases {
		m := extract(t, c.input).(*Moment)
		ts := m.Time
		if ts == nil || ts.Hour != c.h || ts.Minute != c.m || ts.Second != c.s {
			t.Errorf("%q: got %+v, want %d:%d:%d", c.input, ts, c.h, c.m, c.s)
		}
	}
}

func TestExtractEraYears(t *testing.T) {
	cases := map[string]int{
		"100AD":  100,
		"44 BC":  -43, // astronomical numbering: 1 BCE is year 0
		"1 BC":   0,
		"12 AD":  12, // small years must not be read as clock hours
		"23 BC":  -22,
		"2024":   2024,
		"476 CE": 476,
	}
	for input, want := range cases {
		p := extract(t, input).(*Period)
		if p.Kind != PeriodCalendarYear || p.Year != want {
			t.Errorf("%q: got kind=%d year=%d, want year %d", input, p.Kind, p.Year, want)
		}
	}
}

func TestExtractRangeEndpoints(t *testing.T) {
	r := extract(t, "from 2 days before yesterday to now").(*Range)
	if r.InclusiveEnd {
		t.Error("\"to\" marked inclusive")
	}
	if _, ok := r.Left.(*Offset); !ok {
		t.Errorf("left = %T, want *Offset", r.Left)
	}
	right, ok := r.Right.(*Moment)
	if !ok || right.Adverb != AdverbNow {
		t.Errorf("right = %+v", r.Right)
	}

	r = extract(t, "Monday through Thursday").(*Range)
	if !r.InclusiveEnd {
		t.Error("\"through\" not marked inclusive")
	}
}

func TestExtractContradictoryMoments(t *testing.T) {
	cases := []string{
		"at 10 on Friday at 9", // two clock times
		"now at 3 pm",          // "now" is already a moment
	}
	for _, input := range cases {
		tree, err := grammar.Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", input, err)
		}
		_, err = Extract(tree)
		var terr *types.Error
		if !errors.As(err, &terr) || terr.Kind != types.KindResolve {
			t.Errorf("Extract(%q) = %v, want a resolve error", input, err)
		}
	}
}
