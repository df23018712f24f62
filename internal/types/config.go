package types

import "time"

// Config controls resolution of a parsed expression. The zero value is
// not useful; start from DefaultConfig.
type Config struct {
	// Now is the reference instant every relative expression resolves
	// against. Callers supply it explicitly so resolution stays
	// deterministic and testable.
	Now time.Time

	// DefaultToPast picks the search direction for under-specified
	// periodic expressions (bare "Tuesday", "the 31st", "Friday the
	// 13th"): true selects the nearest occurrence at or before Now,
	// false the nearest at or after.
	DefaultToPast bool

	// MondayStartsWeek selects Monday (true) or Sunday (false) as the
	// first day of week periods.
	MondayStartsWeek bool

	// PayPeriodLength is the pay period cadence in days.
	PayPeriodLength int

	// PayPeriodStart anchors the pay period cycle. Pay period
	// expressions fail to resolve while it is zero; there is no
	// canonical epoch to guess.
	PayPeriodStart time.Time
}

// DefaultConfig returns the standard configuration: past-leaning
// disambiguation, Monday-based weeks, and a biweekly pay period with no
// anchor. When now is the zero value the current wall-clock time is
// substituted, so library callers who want determinism must pass an
// explicit reference instant.
func DefaultConfig(now time.Time) Config {
	if now.IsZero() {
		now = time.Now().UTC()
	}
	return Config{
		Now:              now,
		DefaultToPast:    true,
		MondayStartsWeek: true,
		PayPeriodLength:  14,
	}
}
