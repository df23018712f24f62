package grammar

// timeRules is the full rule table for English time expressions, rooted
// at TOP. Ordering is semantic, not cosmetic: within every rule the
// first alternative that matches wins, so specific forms (dates with
// years, weekday+ordinal) are listed ahead of the general forms that
// would otherwise swallow their prefixes.
func timeRules() []rule {
	sep := func(p string) element { return pat(p) }
	colon := pat(`:`)

	return []rule{
		rl("TOP",
			alt(ref("universal")),
			alt(ref("since_expr")),
			alt(ref("two_times")),
			alt(ref("one_time")),
		),

		// "forever", "all time", "from now to eternity", ...
		rl("universal", alt(pat(atomUniversal))),

		// "since yesterday", "since the beginning of the month"
		rl("since_expr", alt(lit("ever since", "since"), ref("since_what"))),
		rl("since_what",
			alt(ref("beginning_of")),
			alt(ref("moment_or_period")),
		),
		rl("beginning_of",
			alt(opt(lit("the")), lit("beginning", "start", "dawn"), lit("of"), opt(lit("the", "this")), ref("period_word")),
		),

		// "X through Y", "from X to Y", "X - Y"
		rl("two_times",
			alt(opt(lit("from")), ref("moment_or_period"), ref("to_sep"), ref("moment_or_period")),
		),
		rl("to_sep", alt(pat(atomToSep))),

		rl("one_time", alt(ref("moment_or_period"))),
		// Era years come first: a moment would otherwise commit the
		// digits of "1 BC" as the bare clock time "1" and strand the
		// era suffix.
		rl("moment_or_period",
			alt(ref("era_year")),
			alt(ref("moment")),
			alt(ref("period")),
		),

		// Periods: modified ("last month"), month+year ("May 1969"),
		// era or bare years ("100AD", "2024"), bare month names.
		rl("period",
			alt(ref("specific_period")),
			alt(ref("named_period")),
		),
		rl("specific_period",
			alt(ref("modified_period")),
			alt(ref("month_and_year")),
			alt(ref("year_period")),
		),
		rl("modified_period", alt(ref("modifier"), ref("modifiable_period"))),
		rl("modifier", alt(pat(atomModifier))),
		rl("modifiable_period",
			alt(ref("period_word")),
			alt(ref("a_month")),
			alt(ref("a_day")),
		),
		rl("period_word", alt(pat(atomPeriodWord))),
		rl("month_and_year", alt(ref("a_month"), ref("year"))),
		rl("year_period", alt(pat(atomYear4))),
		rl("era_year", alt(ref("year_digits"), ref("era"))),
		rl("year_digits", alt(pat(atomYearDigits))),
		rl("era", alt(pat(atomEra))),
		rl("named_period", alt(ref("a_month"))),

		// Moments: relative offsets first (so "2 weeks ago" never
		// commits as the bare time "2"), then day expressions with
		// optional times, then bare times and absolute termini.
		rl("moment",
			alt(ref("relative")),
			alt(opt(ref("at_time_on")), ref("some_day"), opt(ref("at_time"))),
			alt(ref("specific_time")),
		),
		rl("relative",
			alt(ref("count"), ref("unit"), ref("rel_adverb")),
			alt(ref("count"), ref("unit"), ref("rel_prep"), ref("moment_or_period")),
		),
		rl("count", alt(pat(atomCount))),
		rl("unit", alt(pat(atomUnit))),
		rl("rel_adverb", alt(pat(atomRelAdverb))),
		rl("rel_prep", alt(pat(atomRelPrep))),

		rl("at_time_on", alt(opt(lit("at")), ref("time"), lit("on"))),
		rl("at_time", alt(opt(lit("at")), ref("time"))),

		rl("some_day",
			alt(ref("specific_day")),
			alt(ref("named_day")),
		),
		rl("specific_day",
			alt(ref("adverb")),
			alt(ref("date_with_year")),
		),
		rl("adverb", alt(pat(atomAdverb))),

		rl("date_with_year",
			alt(ref("n_date")),
			alt(ref("a_date")),
		),
		// Numeric dates in every order/separator combination the
		// original recognizes; ordering resolves ambiguous inputs
		// (first match wins, so y/m/d beats y/d/m for "69-5-3").
		rl("n_date",
			alt(ref("year"), sep(`/`), ref("n_month"), sep(`/`), ref("n_day")),
			alt(ref("year"), sep(`-`), ref("n_month"), sep(`-`), ref("n_day")),
			alt(ref("year"), sep(`\.`), ref("n_month"), sep(`\.`), ref("n_day")),
			alt(ref("year"), sep(`/`), ref("n_day"), sep(`/`), ref("n_month")),
			alt(ref("year"), sep(`-`), ref("n_day"), sep(`-`), ref("n_month")),
			alt(ref("year"), sep(`\.`), ref("n_day"), sep(`\.`), ref("n_month")),
			alt(ref("n_month"), sep(`/`), ref("n_day"), sep(`/`), ref("year")),
			alt(ref("n_month"), sep(`-`), ref("n_day"), sep(`-`), ref("year")),
			alt(ref("n_month"), sep(`\.`), ref("n_day"), sep(`\.`), ref("year")),
			alt(ref("n_day"), sep(`/`), ref("n_month"), sep(`/`), ref("year")),
			alt(ref("n_day"), sep(`-`), ref("n_month"), sep(`-`), ref("year")),
			alt(ref("n_day"), sep(`\.`), ref("n_month"), sep(`\.`), ref("year")),
		),
		rl("a_date",
			alt(ref("a_month"), ref("n_day"), opt(lit(",")), ref("year")),
			alt(ref("n_day"), ref("a_month"), ref("year")),
			alt(ref("a_day"), opt(lit(",")), ref("a_month"), ref("n_day"), opt(lit(",")), ref("year")),
		),

		// Named days without a year: "Friday the 13th", "the ides of
		// March", "May 1st", "the 31st", bare "Friday". The weekday+
		// ordinal form must precede the bare weekday or it would never
		// be reached.
		rl("named_day",
			alt(ref("weekday_ordinal")),
			alt(ref("roman_date")),
			alt(ref("month_day")),
			alt(ref("ordinal_day")),
			alt(ref("a_day")),
		),
		rl("weekday_ordinal", alt(ref("a_day"), opt(lit("the")), ref("ordinal"))),
		rl("roman_date", alt(opt(lit("the")), ref("roman"), opt(ref("of_month")))),
		rl("of_month", alt(lit("of"), ref("a_month"))),
		rl("month_day",
			alt(ref("a_month"), ref("ordinal")),
			alt(ref("a_month"), ref("n_day")),
		),
		rl("ordinal_day", alt(lit("the"), ref("ordinal"))),

		rl("ordinal", alt(pat(atomOrdinal))),
		rl("roman", alt(pat(atomRoman))),
		rl("a_day", alt(pat(atomWeekday))),
		rl("a_month", alt(pat(atomMonth))),
		rl("year", alt(pat(atomYear))),
		rl("n_month", alt(pat(atomNMonth))),
		rl("n_day", alt(pat(atomNDay))),

		// Clock times and absolute termini.
		rl("specific_time",
			alt(opt(lit("at")), ref("time")),
			alt(ref("absolute_terminus")),
		),
		rl("absolute_terminus",
			alt(ref("first_time")),
			alt(ref("last_time")),
		),
		rl("first_time", alt(pat(atomFirstTime))),
		rl("last_time", alt(pat(atomLastTime))),

		rl("time",
			alt(ref("hour_12"), opt(ref("am_pm"))),
			alt(ref("hour_24")),
			alt(lit("noon", "midnight")),
		),
		rl("hour_12",
			alt(pat(atomH12), colon, pat(atomMinSec), colon, pat(atomMinSec)),
			alt(pat(atomH12), colon, pat(atomMinSec)),
			alt(pat(atomH12)),
		),
		rl("hour_24",
			alt(pat(atomH24), colon, pat(atomMinSec), colon, pat(atomMinSec)),
			alt(pat(atomH24), colon, pat(atomMinSec)),
			alt(pat(atomH24)),
		),
		rl("am_pm", alt(pat(atomAmPm))),
	}
}
