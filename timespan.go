// Package timespan parses English time expressions into concrete time
// ranges. Phrases like "last month", "Friday the 13th", "2 weeks ago",
// and "since yesterday" resolve to half-open intervals [start, end)
// relative to a caller-supplied reference instant.
//
// The pipeline has two stages: a grammar match that either recognizes
// the whole input or rejects it, and a pure resolution step that turns
// the recognized structure plus a Config into an Interval. Resolution
// is deterministic; nothing consults the system clock unless the
// caller leaves Config.Now zero.
package timespan

import (
	"time"

	"github.com/steveyegge/timespan/internal/ast"
	"github.com/steveyegge/timespan/internal/grammar"
	"github.com/steveyegge/timespan/internal/resolve"
	"github.com/steveyegge/timespan/internal/types"
)

// Core types, re-exported from the internal engine.
type (
	// Interval is a half-open time range [Start, End).
	Interval = types.Interval
	// Span is the field-wise calendar difference across an Interval.
	Span = types.Span
	// Config controls resolution; see DefaultConfig.
	Config = types.Config
	// Error is the error type every failure surfaces as.
	Error = types.Error
	// ErrorKind distinguishes parse failures from resolution failures.
	ErrorKind = types.ErrorKind
)

const (
	// KindParse marks input the grammar rejected.
	KindParse = types.KindParse
	// KindResolve marks input that parsed but names an impossible or
	// contradictory time, like "February 30" or a backward range.
	KindResolve = types.KindResolve
)

// MinInstant and MaxInstant bound the representable range; "forever"
// spans the two.
var (
	MinInstant = types.MinInstant
	MaxInstant = types.MaxInstant
)

// DefaultConfig returns the standard configuration resolved against
// now: past-leaning disambiguation, Monday-based weeks, a biweekly pay
// period with no anchor date. A zero now means the current wall-clock
// time at resolution.
func DefaultConfig(now time.Time) Config { return types.DefaultConfig(now) }

// ParseTimeRange parses an English time expression and resolves it
// against cfg. A zero cfg.Now is replaced by the current UTC time.
// Errors are always *Error: KindParse when the input is not a time
// expression at all, KindResolve when it is one that cannot denote a
// real range.
func ParseTimeRange(input string, cfg Config) (Interval, error) {
	if cfg.Now.IsZero() {
		cfg.Now = time.Now().UTC()
	}
	tree, err := grammar.Parse(input)
	if err != nil {
		return Interval{}, err
	}
	node, err := ast.Extract(tree)
	if err != nil {
		return Interval{}, err
	}
	return resolve.Resolve(node, cfg)
}

// Parse is ParseTimeRange with DefaultConfig against the current time.
func Parse(input string) (Interval, error) {
	return ParseTimeRange(input, DefaultConfig(time.Time{}))
}

// IsParsable reports whether input matches the time-expression grammar.
// It says nothing about resolvability: "February 30" is parsable.
func IsParsable(input string) bool {
	_, err := grammar.Parse(input)
	return err == nil
}
