package types

import "fmt"

// ErrorKind classifies a failure. The taxonomy is closed: every invalid
// input maps to exactly one of these two kinds. Internal invariant
// violations (a captured literal the grammar guarantees is numeric
// failing to parse, say) are bugs, not Errors, and panic instead.
type ErrorKind int

const (
	// KindParse means the input did not match the grammar at all.
	KindParse ErrorKind = iota
	// KindResolve means the input parsed but describes an invalid or
	// self-contradictory calendar construct.
	KindResolve
)

func (k ErrorKind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindResolve:
		return "resolve"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the single error type the engine returns. It carries the
// taxonomy kind, a display message, and an optional wrapped cause.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Parsef builds a KindParse error.
func Parsef(format string, args ...any) *Error {
	return &Error{Kind: KindParse, Msg: fmt.Sprintf(format, args...)}
}

// Resolvef builds a KindResolve error.
func Resolvef(format string, args ...any) *Error {
	return &Error{Kind: KindResolve, Msg: fmt.Sprintf(format, args...)}
}
