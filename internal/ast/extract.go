package ast

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/steveyegge/timespan/internal/grammar"
	"github.com/steveyegge/timespan/internal/types"
)

// Extract walks a parse tree returned by grammar.Parse and builds the
// typed expression it denotes. The grammar has already validated every
// token, so malformed numerals in matched text are programming errors
// and panic; Extract only returns an error for shapes the grammar
// cannot rule out, like two clock times attached to one day.
func Extract(tree *grammar.Node) (Node, error) {
	top := tree.Children[0]
	switch top.Rule {
	case "universal":
		return &Universal{}, nil
	case "since_expr":
		return extractSince(top)
	case "two_times":
		return extractRange(top)
	case "one_time":
		return extractMomentOrPeriod(top.Children[0])
	}
	panic("ast: unknown top-level rule " + top.Rule)
}

func extractSince(n *grammar.Node) (Node, error) {
	what := n.Child("since_what")
	if b := what.Child("beginning_of"); b != nil {
		kind := periodKind(b.Child("period_word").Text)
		return &Since{Anchor: &Period{Kind: kind, Modifier: ModThis}}, nil
	}
	anchor, err := extractMomentOrPeriod(what.Children[0])
	if err != nil {
		return nil, err
	}
	return &Since{Anchor: anchor}, nil
}

func extractRange(n *grammar.Node) (Node, error) {
	// Direct children only: a relative anchor on either side may nest
	// another moment_or_period that must not be mistaken for an endpoint.
	var sides []*grammar.Node
	inclusive := false
	for _, c := range n.Children {
		switch c.Rule {
		case "moment_or_period":
			sides = append(sides, c)
		case "to_sep":
			sep := strings.ToLower(c.Text)
			inclusive = strings.HasPrefix(sep, "through") || strings.HasPrefix(sep, "thru")
		}
	}
	left, err := extractMomentOrPeriod(sides[0])
	if err != nil {
		return nil, err
	}
	right, err := extractMomentOrPeriod(sides[1])
	if err != nil {
		return nil, err
	}
	return &Range{Left: left, Right: right, InclusiveEnd: inclusive}, nil
}

func extractMomentOrPeriod(n *grammar.Node) (Node, error) {
	if ey := n.Child("era_year"); ey != nil {
		return extractEraYear(ey), nil
	}
	if m := n.Child("moment"); m != nil {
		return extractMoment(m)
	}
	return extractPeriod(n.Child("period"))
}

func extractMoment(n *grammar.Node) (Node, error) {
	if rel := n.Child("relative"); rel != nil {
		return extractRelative(rel)
	}
	if st := n.Child("specific_time"); st != nil {
		if at := st.Child("absolute_terminus"); at != nil {
			term := TerminusFirst
			if at.Child("last_time") != nil {
				term = TerminusLast
			}
			return &Moment{Terminus: term}, nil
		}
		ts := extractTime(st.Child("time"))
		return &Moment{Time: ts}, nil
	}

	m := &Moment{}
	times := n.FindAll("time")
	if len(times) > 1 {
		return nil, types.Resolvef("more than one time of day in %q", n.Text)
	}
	if len(times) == 1 {
		m.Time = extractTime(times[0])
	}

	day := n.Child("some_day")
	if sd := day.Child("specific_day"); sd != nil {
		if adv := sd.Child("adverb"); adv != nil {
			m.Adverb = adverbValue(adv.Text)
			// "now" is already a moment; a clock time contradicts it.
			if m.Adverb == AdverbNow && m.Time != nil {
				return nil, types.Resolvef("%q names both a moment and a time of day", n.Text)
			}
			return m, nil
		}
		m.Date = extractDateWithYear(sd.Child("date_with_year"))
		return m, nil
	}
	m.Date = extractNamedDay(day.Child("named_day"))
	return m, nil
}

func extractDateWithYear(n *grammar.Node) *DateSpec {
	ds := &DateSpec{HasYear: true}
	ds.Year, ds.YearTwoDigit = yearValue(n.Find("year").Text)
	if nd := n.Child("n_date"); nd != nil {
		ds.Month = mustAtoi(nd.Child("n_month").Text)
		ds.Day = mustAtoi(nd.Child("n_day").Text)
		return ds
	}
	ad := n.Child("a_date")
	ds.Month = grammar.MonthNumber(ad.Child("a_month").Text)
	ds.Day = mustAtoi(ad.Child("n_day").Text)
	if wd := ad.Child("a_day"); wd != nil {
		ds.HasWeekday = true
		ds.Weekday, _ = grammar.WeekdayNumber(wd.Text)
	}
	return ds
}

func extractNamedDay(n *grammar.Node) *DateSpec {
	ds := &DateSpec{}
	switch c := n.Children[0]; c.Rule {
	case "weekday_ordinal":
		ds.HasWeekday = true
		ds.Weekday, _ = grammar.WeekdayNumber(c.Child("a_day").Text)
		ds.Day = ordinalValue(c.Child("ordinal").Text)
	case "roman_date":
		ds.Roman = romanValue(c.Child("roman").Text)
		if of := c.Child("of_month"); of != nil {
			ds.Month = grammar.MonthNumber(of.Child("a_month").Text)
		}
	case "month_day":
		ds.Month = grammar.MonthNumber(c.Child("a_month").Text)
		if o := c.Child("ordinal"); o != nil {
			ds.Day = ordinalValue(o.Text)
		} else {
			ds.Day = mustAtoi(c.Child("n_day").Text)
		}
	case "ordinal_day":
		ds.Day = ordinalValue(c.Child("ordinal").Text)
	case "a_day":
		ds.HasWeekday = true
		ds.Weekday, _ = grammar.WeekdayNumber(c.Text)
	default:
		panic("ast: unknown named_day form " + c.Rule)
	}
	return ds
}

func extractPeriod(n *grammar.Node) (Node, error) {
	if named := n.Child("named_period"); named != nil {
		month := grammar.MonthNumber(named.Child("a_month").Text)
		return &Period{Kind: PeriodNamedMonth, Month: month}, nil
	}
	sp := n.Child("specific_period")
	if mp := sp.Child("modified_period"); mp != nil {
		return extractModifiedPeriod(mp)
	}
	if my := sp.Child("month_and_year"); my != nil {
		p := &Period{Kind: PeriodMonthYear}
		p.Month = grammar.MonthNumber(my.Child("a_month").Text)
		p.Year, p.YearTwoDigit = yearValue(my.Child("year").Text)
		return p, nil
	}
	return &Period{Kind: PeriodCalendarYear, Year: mustAtoi(sp.Child("year_period").Text)}, nil
}

func extractModifiedPeriod(n *grammar.Node) (Node, error) {
	mod := modifierValue(n.Child("modifier").Text)
	mp := n.Child("modifiable_period")
	if pw := mp.Child("period_word"); pw != nil {
		return &Period{Kind: periodKind(pw.Text), Modifier: mod}, nil
	}
	if am := mp.Child("a_month"); am != nil {
		return &Period{Kind: PeriodNamedMonth, Modifier: mod, Month: grammar.MonthNumber(am.Text)}, nil
	}
	wd, _ := grammar.WeekdayNumber(mp.Child("a_day").Text)
	return &Period{Kind: PeriodNamedWeekday, Modifier: mod, Weekday: wd}, nil
}

// extractEraYear handles era-suffixed years. BCE years use
// astronomical numbering: 1 BCE is year 0, 44 BCE is -43.
func extractEraYear(n *grammar.Node) *Period {
	y := mustAtoi(n.Child("year_digits").Text)
	if strings.HasPrefix(strings.ToLower(n.Child("era").Text), "b") {
		y = 1 - y
	}
	return &Period{Kind: PeriodCalendarYear, Year: y}
}

func extractRelative(n *grammar.Node) (Node, error) {
	off := &Offset{
		Count: countValue(n.Child("count").Text),
		Unit:  unitValue(n.Child("unit").Text),
	}
	if adv := n.Child("rel_adverb"); adv != nil {
		if strings.HasPrefix(strings.ToLower(adv.Text), "ago") {
			off.Direction = Before
		} else {
			off.Direction = After
		}
		return off, nil
	}
	prep := strings.ToLower(n.Child("rel_prep").Text)
	if strings.HasPrefix(prep, "before") || strings.HasPrefix(prep, "prior") {
		off.Direction = Before
	} else {
		off.Direction = After
	}
	anchor, err := extractMomentOrPeriod(n.Child("moment_or_period"))
	if err != nil {
		return nil, err
	}
	off.Anchor = anchor
	return off, nil
}

var clockRe = regexp.MustCompile(`(\d{1,2})(?:\s*:\s*(\d{2})(?:\s*:\s*(\d{2}))?)?`)

// extractTime normalizes a matched clock expression to 24-hour form.
// A 12-hour time without a meridiem keeps its face value.
func extractTime(n *grammar.Node) *TimeSpec {
	hour := n.Child("hour_12")
	if hour == nil {
		hour = n.Child("hour_24")
	}
	if hour == nil {
		if strings.HasPrefix(strings.ToLower(n.Text), "noon") {
			return &TimeSpec{Hour: 12}
		}
		return &TimeSpec{} // midnight
	}
	parts := clockRe.FindStringSubmatch(hour.Text)
	ts := &TimeSpec{Hour: mustAtoi(parts[1])}
	if parts[2] != "" {
		ts.Minute = mustAtoi(parts[2])
	}
	if parts[3] != "" {
		ts.Second = mustAtoi(parts[3])
	}
	if ap := n.Child("am_pm"); ap != nil {
		pm := strings.HasPrefix(strings.ToLower(ap.Text), "p")
		switch {
		case pm && ts.Hour < 12:
			ts.Hour += 12
		case !pm && ts.Hour == 12:
			ts.Hour = 0
		}
	}
	return ts
}

func adverbValue(s string) Adverb {
	switch strings.ToLower(s) {
	case "now":
		return AdverbNow
	case "today":
		return AdverbToday
	case "tomorrow":
		return AdverbTomorrow
	case "yesterday":
		return AdverbYesterday
	}
	panic("ast: unknown adverb " + s)
}

func modifierValue(s string) Modifier {
	switch strings.ToLower(s) {
	case "this":
		return ModThis
	case "last":
		return ModLast
	case "next":
		return ModNext
	}
	panic("ast: unknown modifier " + s)
}

func periodKind(s string) PeriodKind {
	switch w := strings.ToLower(s); {
	case strings.HasPrefix(w, "weekend"):
		return PeriodWeekend
	case strings.HasPrefix(w, "week"):
		return PeriodWeek
	case strings.HasPrefix(w, "month"):
		return PeriodMonth
	case strings.HasPrefix(w, "year"):
		return PeriodYear
	case strings.HasPrefix(w, "pay"), strings.HasPrefix(w, "pp"):
		return PeriodPayPeriod
	}
	panic("ast: unknown period word " + s)
}

func unitValue(s string) Unit {
	switch strings.ToLower(s[:3]) {
	case "sec":
		return UnitSecond
	case "min":
		return UnitMinute
	case "hou":
		return UnitHour
	case "day":
		return UnitDay
	case "wee":
		return UnitWeek
	case "mon":
		return UnitMonth
	case "yea":
		return UnitYear
	}
	panic("ast: unknown unit " + s)
}

func countValue(s string) int {
	if w := strings.ToLower(s); w == "a" || w == "an" {
		return 1
	}
	return mustAtoi(s)
}

func romanValue(s string) Roman {
	switch strings.ToLower(s[:1]) {
	case "k", "c":
		return RomanKalends
	case "n":
		return RomanNones
	case "i":
		return RomanIdes
	}
	panic("ast: unknown roman day " + s)
}

// yearValue parses a matched year token, which may carry a leading
// apostrophe ('69). Two-digit years are expanded later, against the
// reference instant, so the raw value and a width flag are kept.
func yearValue(s string) (year int, twoDigit bool) {
	digits := strings.TrimPrefix(s, "'")
	return mustAtoi(digits), len(digits) <= 2
}

// ordinalValue strips the st/nd/rd/th suffix.
func ordinalValue(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return mustAtoi(s[:i])
}

func mustAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic("ast: numeral " + strconv.Quote(s) + " escaped the grammar: " + err.Error())
	}
	return n
}
