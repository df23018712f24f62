// Package resolve evaluates typed time expressions against a reference
// instant and configuration, producing concrete half-open intervals.
// Resolution is pure: the same expression, instant, and configuration
// always yield the same interval.
package resolve

import (
	"time"

	"github.com/steveyegge/timespan/internal/ast"
	"github.com/steveyegge/timespan/internal/types"
)

// searchBound caps the outward scan for under-specified dates. Real
// constraints converge within a few steps (a leap day within eight
// years, a day-of-month within two months); only impossible dates like
// February 30 run the scan out.
const searchBound = 600

// Resolve evaluates node relative to cfg.Now and returns the interval
// it denotes.
func Resolve(node ast.Node, cfg types.Config) (types.Interval, error) {
	switch n := node.(type) {
	case *ast.Universal:
		return types.Interval{Start: types.MinInstant, End: types.MaxInstant}, nil
	case *ast.Moment:
		return resolveMoment(n, cfg)
	case *ast.Period:
		return resolvePeriod(n, cfg)
	case *ast.Offset:
		return resolveOffset(n, cfg)
	case *ast.Range:
		return resolveRange(n, cfg)
	case *ast.Since:
		return resolveSince(n, cfg)
	}
	panic("resolve: unknown expression type")
}

func resolveMoment(m *ast.Moment, cfg types.Config) (types.Interval, error) {
	switch m.Terminus {
	case ast.TerminusFirst:
		return types.Interval{Start: types.MinInstant, End: types.MinInstant.Add(time.Second)}, nil
	case ast.TerminusLast:
		// The one zero-width interval: nothing lies beyond it.
		return types.Interval{Start: types.MaxInstant, End: types.MaxInstant}, nil
	}

	if m.Adverb != ast.AdverbNone {
		if m.Adverb == ast.AdverbNow {
			return instant(cfg.Now), nil
		}
		base := dayStart(cfg.Now)
		switch m.Adverb {
		case ast.AdverbTomorrow:
			base = base.AddDate(0, 0, 1)
		case ast.AdverbYesterday:
			base = base.AddDate(0, 0, -1)
		}
		if m.Time != nil {
			return atTime(base, m.Time), nil
		}
		return dayInterval(base), nil
	}

	if m.Date != nil {
		iv, err := resolveDate(m.Date, cfg)
		if err != nil {
			return types.Interval{}, err
		}
		if m.Time != nil {
			return atTime(iv.Start, m.Time), nil
		}
		return iv, nil
	}

	// A bare clock time is today's, nudged a day when it lands on the
	// wrong side of the reference instant for the configured direction.
	at := dayStart(cfg.Now).Add(clockOffset(m.Time))
	if cfg.DefaultToPast && at.After(cfg.Now) {
		at = at.AddDate(0, 0, -1)
	} else if !cfg.DefaultToPast && at.Before(cfg.Now) {
		at = at.AddDate(0, 0, 1)
	}
	return instant(at), nil
}

// instant wraps a moment as the one-second interval beginning at it.
func instant(t time.Time) types.Interval {
	return types.Interval{Start: t, End: t.Add(time.Second)}
}

func clockOffset(ts *ast.TimeSpec) time.Duration {
	return time.Duration(ts.Hour)*time.Hour +
		time.Duration(ts.Minute)*time.Minute +
		time.Duration(ts.Second)*time.Second
}

func atTime(day time.Time, ts *ast.TimeSpec) types.Interval {
	return instant(day.Add(clockOffset(ts)))
}

// resolveDate turns a possibly partial date into a whole day. Fully
// specified dates are validated; partial ones are found by scanning
// outward from the reference day in the configured direction, the
// reference day itself included.
func resolveDate(d *ast.DateSpec, cfg types.Config) (types.Interval, error) {
	today := dayStart(cfg.Now)
	dir := 1
	if cfg.DefaultToPast {
		dir = -1
	}

	if d.HasYear {
		year := d.Year
		if d.YearTwoDigit {
			year = expandYear(year, cfg.Now)
		}
		if d.Day > daysIn(year, d.Month) {
			return types.Interval{}, types.Resolvef("there is no %s %s in %d",
				time.Month(d.Month), ordinal(d.Day), year)
		}
		day := time.Date(year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
		if d.HasWeekday && day.Weekday() != d.Weekday {
			return types.Interval{}, types.Resolvef("%s was a %s, not a %s",
				day.Format("January 2, 2006"), day.Weekday(), d.Weekday)
		}
		return dayInterval(day), nil
	}

	if d.Roman != ast.RomanNone {
		if d.Month != 0 {
			day, ok := nearestDay(today, dir, func(i int) (time.Time, bool) {
				y := cfg.Now.Year() + dir*i
				return time.Date(y, time.Month(d.Month), romanDay(d.Roman, d.Month), 0, 0, 0, 0, time.UTC), true
			})
			if !ok {
				return types.Interval{}, types.Resolvef("no nearby %s of %s", romanName(d.Roman), time.Month(d.Month))
			}
			return dayInterval(day), nil
		}
		day, _ := nearestDay(today, dir, func(i int) (time.Time, bool) {
			m := addMonths(monthStart(cfg.Now), dir*i)
			return m.AddDate(0, 0, romanDay(d.Roman, int(m.Month()))-1), true
		})
		return dayInterval(day), nil
	}

	switch {
	case d.HasWeekday && d.Day != 0:
		// "Friday the 13th": the nearest month whose Day falls on Weekday.
		day, ok := nearestDay(today, dir, func(i int) (time.Time, bool) {
			m := addMonths(monthStart(cfg.Now), dir*i)
			if d.Day > daysIn(m.Year(), int(m.Month())) {
				return time.Time{}, false
			}
			c := m.AddDate(0, 0, d.Day-1)
			return c, c.Weekday() == d.Weekday
		})
		if !ok {
			return types.Interval{}, types.Resolvef("no nearby %s the %s", d.Weekday, ordinal(d.Day))
		}
		return dayInterval(day), nil

	case d.HasWeekday:
		var delta int
		if cfg.DefaultToPast {
			delta = -mod(int(today.Weekday())-int(d.Weekday), 7)
		} else {
			delta = mod(int(d.Weekday)-int(today.Weekday()), 7)
		}
		return dayInterval(today.AddDate(0, 0, delta)), nil

	case d.Month != 0 && d.Day != 0:
		// "May 1st", "February 29": scan years for one holding the date.
		day, ok := nearestDay(today, dir, func(i int) (time.Time, bool) {
			y := cfg.Now.Year() + dir*i
			if d.Day > daysIn(y, d.Month) {
				return time.Time{}, false
			}
			return time.Date(y, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC), true
		})
		if !ok {
			return types.Interval{}, types.Resolvef("there is no %s %s in any nearby year",
				time.Month(d.Month), ordinal(d.Day))
		}
		return dayInterval(day), nil

	case d.Day != 0:
		// "the 31st": the nearest month long enough.
		day, ok := nearestDay(today, dir, func(i int) (time.Time, bool) {
			m := addMonths(monthStart(cfg.Now), dir*i)
			if d.Day > daysIn(m.Year(), int(m.Month())) {
				return time.Time{}, false
			}
			return m.AddDate(0, 0, d.Day-1), true
		})
		if !ok {
			return types.Interval{}, types.Resolvef("no nearby month has a %s", ordinal(d.Day))
		}
		return dayInterval(day), nil
	}
	panic("resolve: underspecified date escaped extraction")
}

// nearestDay scans candidates outward from today and returns the first
// acceptable one on the correct side of today (today itself counts for
// either direction).
func nearestDay(today time.Time, dir int, gen func(i int) (time.Time, bool)) (time.Time, bool) {
	for i := 0; i <= searchBound; i++ {
		c, ok := gen(i)
		if !ok {
			continue
		}
		if dir < 0 && c.After(today) {
			continue
		}
		if dir > 0 && c.Before(today) {
			continue
		}
		return c, true
	}
	return time.Time{}, false
}

func romanName(r ast.Roman) string {
	switch r {
	case ast.RomanKalends:
		return "kalends"
	case ast.RomanNones:
		return "nones"
	}
	return "ides"
}

func resolvePeriod(p *ast.Period, cfg types.Config) (types.Interval, error) {
	shift := 0
	switch p.Modifier {
	case ast.ModLast:
		shift = -1
	case ast.ModNext:
		shift = 1
	}

	switch p.Kind {
	case ast.PeriodWeek:
		s := weekStart(cfg.Now, cfg.MondayStartsWeek).AddDate(0, 0, 7*shift)
		return types.Interval{Start: s, End: s.AddDate(0, 0, 7)}, nil

	case ast.PeriodWeekend:
		// Saturday 00:00 to Monday 00:00 of the Monday-based week
		// containing the reference instant, whichever day the
		// configured week starts on.
		sat := weekStart(cfg.Now, true).AddDate(0, 0, 5+7*shift)
		return types.Interval{Start: sat, End: sat.AddDate(0, 0, 2)}, nil

	case ast.PeriodMonth:
		s := addMonths(monthStart(cfg.Now), shift)
		return types.Interval{Start: s, End: s.AddDate(0, 1, 0)}, nil

	case ast.PeriodYear:
		return yearInterval(cfg.Now.Year() + shift), nil

	case ast.PeriodPayPeriod:
		return resolvePayPeriod(shift, cfg)

	case ast.PeriodNamedMonth:
		y := cfg.Now.Year()
		switch p.Modifier {
		case ast.ModNone:
			// The nearest such month in the configured direction, the
			// current month included.
			if cfg.DefaultToPast {
				if p.Month > int(cfg.Now.Month()) {
					y--
				}
			} else if p.Month < int(cfg.Now.Month()) {
				y++
			}
		case ast.ModLast:
			y--
		case ast.ModNext:
			y++
		}
		return monthInterval(y, p.Month), nil

	case ast.PeriodNamedWeekday:
		ws := weekStart(cfg.Now, cfg.MondayStartsWeek).AddDate(0, 0, 7*shift)
		day := ws.AddDate(0, 0, mod(int(p.Weekday)-int(ws.Weekday()), 7))
		return dayInterval(day), nil

	case ast.PeriodMonthYear:
		y := p.Year
		if p.YearTwoDigit {
			y = expandYear(y, cfg.Now)
		}
		return monthInterval(y, p.Month), nil

	case ast.PeriodCalendarYear:
		return yearInterval(p.Year), nil
	}
	panic("resolve: unknown period kind")
}

// resolvePayPeriod finds the pay period containing the reference day,
// shifted by whole periods for last/next. The cycle has no canonical
// epoch, so an unset anchor is an error rather than a guess.
func resolvePayPeriod(shift int, cfg types.Config) (types.Interval, error) {
	if cfg.PayPeriodStart.IsZero() {
		return types.Interval{}, types.Resolvef("no pay period start date configured")
	}
	if cfg.PayPeriodLength <= 0 {
		return types.Interval{}, types.Resolvef("pay period length must be positive, not %d", cfg.PayPeriodLength)
	}
	anchor := dayStart(cfg.PayPeriodStart)
	days := int(dayStart(cfg.Now).Sub(anchor) / (24 * time.Hour))
	idx := floorDiv(days, cfg.PayPeriodLength) + shift
	s := anchor.AddDate(0, 0, idx*cfg.PayPeriodLength)
	return types.Interval{Start: s, End: s.AddDate(0, 0, cfg.PayPeriodLength)}, nil
}

// resolveOffset shifts the anchor's whole interval by the offset. With
// no explicit anchor the base is the reference day for day-or-larger
// units and the reference second for smaller ones, so "2 weeks ago" is
// a full day and "2 hours ago" a moment.
func resolveOffset(o *ast.Offset, cfg types.Config) (types.Interval, error) {
	var base types.Interval
	if o.Anchor != nil {
		var err error
		base, err = Resolve(o.Anchor, cfg)
		if err != nil {
			return types.Interval{}, err
		}
	} else {
		switch o.Unit {
		case ast.UnitSecond, ast.UnitMinute, ast.UnitHour:
			base = instant(cfg.Now)
		default:
			base = dayInterval(dayStart(cfg.Now))
		}
	}

	n := o.Count
	if o.Direction == ast.Before {
		n = -n
	}
	switch o.Unit {
	case ast.UnitSecond, ast.UnitMinute, ast.UnitHour, ast.UnitDay, ast.UnitWeek:
		unit := map[ast.Unit]time.Duration{
			ast.UnitSecond: time.Second,
			ast.UnitMinute: time.Minute,
			ast.UnitHour:   time.Hour,
			ast.UnitDay:    24 * time.Hour,
			ast.UnitWeek:   7 * 24 * time.Hour,
		}[o.Unit]
		d := time.Duration(n) * unit
		return types.Interval{Start: base.Start.Add(d), End: base.End.Add(d)}, nil
	case ast.UnitMonth:
		return types.Interval{Start: addMonths(base.Start, n), End: addMonths(base.End, n)}, nil
	case ast.UnitYear:
		return types.Interval{Start: addMonths(base.Start, 12*n), End: addMonths(base.End, 12*n)}, nil
	}
	panic("resolve: unknown offset unit")
}

// specific reports whether an expression pins itself to the reference
// instant on its own: explicit dates, deictic adverbs, termini,
// modified periods, offsets from any of those. Under-specified
// expressions (a bare weekday, clock time, or month name) need the
// other end of a range to supply their direction.
func specific(n ast.Node) bool {
	switch v := n.(type) {
	case *ast.Moment:
		if v.Terminus != ast.TerminusNone || v.Adverb != ast.AdverbNone {
			return true
		}
		if v.Date != nil {
			return v.Date.HasYear
		}
		return false // bare clock time
	case *ast.Period:
		if v.Kind == ast.PeriodNamedMonth {
			return v.Modifier != ast.ModNone
		}
		return true
	case *ast.Offset:
		return v.Anchor == nil || specific(v.Anchor)
	}
	return true
}

// resolveRange joins two endpoints. Specific endpoints resolve against
// the caller's reference instant; an under-specified endpoint resolves
// toward the other side, so "Monday to Thursday" is that Monday's
// Thursday and "Monday to yesterday" the Monday before yesterday.
func resolveRange(r *ast.Range, cfg types.Config) (types.Interval, error) {
	var left, right types.Interval
	var err error
	if !specific(r.Left) && specific(r.Right) {
		right, err = Resolve(r.Right, cfg)
		if err != nil {
			return types.Interval{}, err
		}
		lcfg := cfg
		lcfg.Now = right.Start
		lcfg.DefaultToPast = true
		left, err = Resolve(r.Left, lcfg)
		if err != nil {
			return types.Interval{}, err
		}
	} else {
		left, err = Resolve(r.Left, cfg)
		if err != nil {
			return types.Interval{}, err
		}
		rcfg := cfg
		if !specific(r.Right) {
			rcfg.Now = left.Start
			rcfg.DefaultToPast = false
		}
		right, err = Resolve(r.Right, rcfg)
		if err != nil {
			return types.Interval{}, err
		}
	}
	end := right.Start
	if r.InclusiveEnd {
		end = right.End
	}
	if !end.After(left.Start) {
		return types.Interval{}, types.Resolvef("range ends at %s, before it starts at %s",
			end.Format("2006-01-02 15:04:05"), left.Start.Format("2006-01-02 15:04:05"))
	}
	return types.Interval{Start: left.Start, End: end}, nil
}

func resolveSince(s *ast.Since, cfg types.Config) (types.Interval, error) {
	anchor, err := Resolve(s.Anchor, cfg)
	if err != nil {
		return types.Interval{}, err
	}
	if !cfg.Now.After(anchor.Start) {
		return types.Interval{}, types.Resolvef("%s has not happened yet", anchor.Start.Format("2006-01-02 15:04:05"))
	}
	return types.Interval{Start: anchor.Start, End: cfg.Now}, nil
}
