package grammar

import (
	"strings"
	"time"
)

// Lexical atoms: the regex fragments the rule table is built from. Every
// pattern is matched case-insensitively (single-letter weekday names
// excepted) and anchored at the current scan position by the matcher.
//
// Numeric atoms end in \b so a committed number cannot silently split a
// longer digit run ("1969" must not match as day 19 + trailing "69").
// The bare-year atom is the one exception: an era suffix may abut the
// digits directly ("100AD").
const (
	// Years: four or three digits, or a two-digit year with optional
	// leading apostrophe ('69). Longest form first.
	atomYear = `(?:\d{3,4}|'\d{2}|\d{2})\b`

	// Year digits for era-suffixed years; no trailing \b so "100AD" works.
	atomYearDigits = `\d{1,4}`

	// Bare four-digit calendar year ("2024").
	atomYear4 = `\d{4}\b`

	// Numeric months and days, leading zero optional.
	atomNMonth = `(?:0[1-9]|1[0-2]|[1-9])\b`
	atomNDay   = `(?:0[1-9]|[12]\d|3[01]|[1-9])\b`

	// Clock fields. Two-digit forms first so "12" never matches as "1".
	atomH12    = `(?:1[0-2]|0?[1-9])\b`
	atomH24    = `(?:1\d|2[0-3]|0?\d)\b`
	atomMinSec = `[0-5]\d\b`

	// Ordinal day-of-month: 1st..31st, suffix spelling unchecked.
	atomOrdinal = `(?:3[01]|[12]\d|[1-9])(?:st|nd|rd|th)\b`

	// Relative-offset counts; "a week ago" counts as one.
	atomCount = `(?:\d+|an?)\b`

	// Month names: full words, then dotted or bare abbreviations.
	atomMonth = `(?:january|february|march|april|may|june|july|august|september|october|november|december)\b` +
		`|(?:sept|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec)\b\.?`

	// Weekday names: full words, multi-letter abbreviations with an
	// optional trailing dot, and the case-sensitive single letters
	// M T W R F S U (R=Thursday, S=Saturday, U=Sunday).
	atomWeekday = `(?:sunday|monday|tuesday|wednesday|thursday|friday|saturday)\b` +
		`|(?:tues|thurs|weds|thur)\b\.?` +
		`|(?:sun|mon|tue|wed|thu|fri|sat)\b\.?` +
		`|(?:su|mo|tu|we|th|fr|sa)\b\.?` +
		`|(?-i:[MTWRFSU])\b`

	// Roman calendar day names.
	atomRoman = `(?:kalends|calends|nones|ides)\b`

	// AM/PM markers, dotted forms included.
	atomAmPm = `[ap]\.?m\b\.?`

	// Era suffixes. BCE forms precede BC so "b.c.e." is not cut short.
	atomEra = `(?:b\.?c\.?e\b\.?|b\.?c\b\.?|a\.?d\b\.?|c\.?e\b\.?)`

	// Units for relative offsets.
	atomUnit = `(?:second|minute|hour|day|week|month|year)s?\b`

	// Periods that this/last/next can modify. weekend before week, pay
	// period before pp, so the longer word wins.
	atomPeriodWord = `(?:weekend|week|month|year|pay\s+period|pp)\b`

	// Modifiers, adverbs, range separators, offset connectives.
	atomModifier  = `(?:this|last|next)\b`
	atomAdverb    = `(?:now|today|tomorrow|yesterday)\b`
	atomToSep     = `(?:through|thru|until|till|til|up\s+to|to)\b|-+`
	atomRelAdverb = `(?:ago|from\s+now|hence)\b`
	atomRelPrep   = `(?:before|prior\s+to|after|following)\b`

	// Universal expressions and absolute termini.
	atomUniversal = `(?:always|ever|forever|all\s+time|from\s+the\s+beginning\s+to\s+the\s+end|` +
		`from\s+beginning\s+to\s+end|from\s+now\s+to\s+eternity)\b`
	atomFirstTime = `(?:the\s+beginning\s+of\s+time|the\s+beginning|the\s+first\s+moment|` +
		`the\s+very\s+start|the\s+start|the\s+first\s+instant|the\s+dawn\s+of\s+time|` +
		`the\s+big\s+bang|the\s+birth\s+of\s+the\s+universe)\b`
	atomLastTime = `(?:the\s+end\s+of\s+time|the\s+very\s+end|the\s+end|the\s+last\s+moment|` +
		`eternity|infinity|doomsday|the\s+crack\s+of\s+doom|armageddon|ragnarok|` +
		`the\s+big\s+crunch|the\s+heat\s+death\s+of\s+the\s+universe|doom|death|perdition|` +
		`ever\s+after|the\s+last\s+syllable\s+of\s+recorded\s+time)\b`
)

// MonthNumber maps a matched month name to 1..12. The grammar
// guarantees the first three letters identify the month.
func MonthNumber(s string) int {
	if len(s) < 3 {
		return 0
	}
	switch strings.ToLower(s[:3]) {
	case "jan":
		return 1
	case "feb":
		return 2
	case "mar":
		return 3
	case "apr":
		return 4
	case "may":
		return 5
	case "jun":
		return 6
	case "jul":
		return 7
	case "aug":
		return 8
	case "sep":
		return 9
	case "oct":
		return 10
	case "nov":
		return 11
	case "dec":
		return 12
	}
	return 0
}

// WeekdayNumber maps a matched weekday name to a time.Weekday. Handles
// full names, abbreviations, and the single letters M T W R F S U.
func WeekdayNumber(s string) (time.Weekday, bool) {
	if s == "" {
		return 0, false
	}
	if len(s) == 1 {
		switch s {
		case "M":
			return time.Monday, true
		case "T":
			return time.Tuesday, true
		case "W":
			return time.Wednesday, true
		case "R":
			return time.Thursday, true
		case "F":
			return time.Friday, true
		case "S":
			return time.Saturday, true
		case "U":
			return time.Sunday, true
		}
		return 0, false
	}
	switch strings.ToLower(s[:2]) {
	case "su":
		return time.Sunday, true
	case "mo":
		return time.Monday, true
	case "tu":
		return time.Tuesday, true
	case "we":
		return time.Wednesday, true
	case "th":
		return time.Thursday, true
	case "fr":
		return time.Friday, true
	case "sa":
		return time.Saturday, true
	}
	return 0, false
}
