package resolve

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steveyegge/timespan/internal/ast"
	"github.com/steveyegge/timespan/internal/grammar"
	"github.com/steveyegge/timespan/internal/types"
)

// Saturday morning, so past and future readings of weekday expressions
// differ and a bare "noon" has not happened yet.
var testNow = time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)

func testConfig() types.Config {
	cfg := types.DefaultConfig(testNow)
	return cfg
}

func parse(t *testing.T, input string) ast.Node {
	t.Helper()
	tree, err := grammar.Parse(input)
	require.NoError(t, err, input)
	node, err := ast.Extract(tree)
	require.NoError(t, err, input)
	return node
}

func resolve(t *testing.T, input string, cfg types.Config) types.Interval {
	t.Helper()
	iv, err := Resolve(parse(t, input), cfg)
	require.NoError(t, err, input)
	return iv
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

func TestResolveTable(t *testing.T) {
	cfg := testConfig()
	future := cfg
	future.DefaultToPast = false
	sunday := cfg
	sunday.MondayStartsWeek = false

	cases := []struct {
		input      string
		cfg        types.Config
		start, end time.Time
	}{
		// deictic days
		{"today", cfg, date(2024, 6, 15), date(2024, 6, 16)},
		{"yesterday", cfg, date(2024, 6, 14), date(2024, 6, 15)},
		{"tomorrow", cfg, date(2024, 6, 16), date(2024, 6, 17)},
		{"now", cfg, testNow, testNow.Add(time.Second)},

		// modified periods
		{"this week", cfg, date(2024, 6, 10), date(2024, 6, 17)},
		{"last week", cfg, date(2024, 6, 3), date(2024, 6, 10)},
		{"next week", cfg, date(2024, 6, 17), date(2024, 6, 24)},
		{"this week", sunday, date(2024, 6, 9), date(2024, 6, 16)},
		{"last month", cfg, date(2024, 5, 1), date(2024, 6, 1)},
		{"this month", cfg, date(2024, 6, 1), date(2024, 7, 1)},
		{"last year", cfg, date(2023, 1, 1), date(2024, 1, 1)},
		{"next year", cfg, date(2025, 1, 1), date(2026, 1, 1)},
		{"this weekend", cfg, date(2024, 6, 15), date(2024, 6, 17)},
		{"last weekend", cfg, date(2024, 6, 8), date(2024, 6, 10)},

		// named weekdays; the week, not the nearest occurrence
		{"this Friday", cfg, date(2024, 6, 14), date(2024, 6, 15)},
		{"last Friday", cfg, date(2024, 6, 7), date(2024, 6, 8)},
		{"next Friday", cfg, date(2024, 6, 21), date(2024, 6, 22)},

		// bare weekdays follow the configured direction, today included
		{"Tuesday", cfg, date(2024, 6, 11), date(2024, 6, 12)},
		{"Tuesday", future, date(2024, 6, 18), date(2024, 6, 19)},
		{"Saturday", cfg, date(2024, 6, 15), date(2024, 6, 16)},
		{"Saturday", future, date(2024, 6, 15), date(2024, 6, 16)},

		// named and specific periods
		{"May", cfg, date(2024, 5, 1), date(2024, 6, 1)},
		{"July", cfg, date(2023, 7, 1), date(2023, 8, 1)},
		{"July", future, date(2024, 7, 1), date(2024, 8, 1)},
		{"next May", cfg, date(2025, 5, 1), date(2025, 6, 1)},
		{"last May", cfg, date(2023, 5, 1), date(2023, 6, 1)},
		{"May 1969", cfg, date(1969, 5, 1), date(1969, 6, 1)},
		{"May '69", cfg, date(1969, 5, 1), date(1969, 6, 1)},
		{"May '21", cfg, date(2021, 5, 1), date(2021, 6, 1)},
		{"2024", cfg, date(2024, 1, 1), date(2025, 1, 1)},
		{"100AD", cfg, date(100, 1, 1), date(101, 1, 1)},
		{"44 BC", cfg, date(-43, 1, 1), date(-42, 1, 1)},
		{"12 AD", cfg, date(12, 1, 1), date(13, 1, 1)},
		{"1 BC", cfg, date(0, 1, 1), date(1, 1, 1)},

		// dates
		{"May 6, 1969", cfg, date(1969, 5, 6), date(1969, 5, 7)},
		{"Tuesday, May 6, 1969", cfg, date(1969, 5, 6), date(1969, 5, 7)},
		{"5/6/69", cfg, date(1969, 5, 6), date(1969, 5, 7)},
		{"69-5-6", cfg, date(1969, 5, 6), date(1969, 5, 7)},
		{"Friday the 13th", cfg, date(2023, 10, 13), date(2023, 10, 14)},
		{"Friday the 13th", future, date(2024, 9, 13), date(2024, 9, 14)},
		{"the ides of March", cfg, date(2024, 3, 15), date(2024, 3, 16)},
		{"the nones of May", cfg, date(2024, 5, 7), date(2024, 5, 8)},
		{"the kalends of June", cfg, date(2024, 6, 1), date(2024, 6, 2)},
		{"May 1st", cfg, date(2024, 5, 1), date(2024, 5, 2)},
		{"February 29", cfg, date(2024, 2, 29), date(2024, 3, 1)},
		{"February 29", future, date(2028, 2, 29), date(2028, 3, 1)},
		{"the 31st", cfg, date(2024, 5, 31), date(2024, 6, 1)},
		{"the 31st", future, date(2024, 7, 31), date(2024, 8, 1)},

		// clock times
		{"10 am", cfg, at(2024, 6, 15, 10, 0, 0), at(2024, 6, 15, 10, 0, 1)},
		{"noon", cfg, at(2024, 6, 14, 12, 0, 0), at(2024, 6, 14, 12, 0, 1)},
		{"noon", future, at(2024, 6, 15, 12, 0, 0), at(2024, 6, 15, 12, 0, 1)},
		{"yesterday at 3:30 pm", cfg, at(2024, 6, 14, 15, 30, 0), at(2024, 6, 14, 15, 30, 1)},
		{"noon on Monday", cfg, at(2024, 6, 10, 12, 0, 0), at(2024, 6, 10, 12, 0, 1)},
		{"3:30:15 pm on May 6, 1969", cfg, at(1969, 5, 6, 15, 30, 15), at(1969, 5, 6, 15, 30, 16)},

		// relative offsets
		{"2 weeks ago", cfg, date(2024, 6, 1), date(2024, 6, 2)},
		{"a week from now", cfg, date(2024, 6, 22), date(2024, 6, 23)},
		{"3 hours ago", cfg, at(2024, 6, 15, 7, 30, 0), at(2024, 6, 15, 7, 30, 1)},
		{"a month ago", cfg, date(2024, 5, 15), date(2024, 5, 16)},
		{"a year ago", cfg, date(2023, 6, 15), date(2023, 6, 16)},
		{"2 days before yesterday", cfg, date(2024, 6, 12), date(2024, 6, 13)},
		{"3 days after May 6, 1969", cfg, date(1969, 5, 9), date(1969, 5, 10)},

		// ranges
		{"Monday through Thursday", cfg, date(2024, 6, 10), date(2024, 6, 14)},
		{"Monday to Thursday", cfg, date(2024, 6, 10), date(2024, 6, 13)},
		{"from May to July", cfg, date(2024, 5, 1), date(2024, 7, 1)},
		{"from May through July", cfg, date(2024, 5, 1), date(2024, 8, 1)},
		{"2020 - 2022", cfg, date(2020, 1, 1), date(2022, 1, 1)},
		{"from 2 to 3", cfg, at(2024, 6, 15, 2, 0, 0), at(2024, 6, 15, 3, 0, 0)},

		// ranges with endpoints that pin themselves to the reference
		// instant; the other side must not be dragged onto them
		{"from Monday at 15:00:05 to now", cfg, at(2024, 6, 10, 15, 0, 5), testNow},
		{"yesterday to today", cfg, date(2024, 6, 14), date(2024, 6, 15)},
		{"yesterday through today", cfg, date(2024, 6, 14), date(2024, 6, 16)},
		{"2 weeks ago to now", cfg, date(2024, 6, 1), testNow},
		{"Monday to yesterday", cfg, date(2024, 6, 10), date(2024, 6, 14)},
		{"5/6/69 thru 5/6/70", cfg, date(1969, 5, 6), date(1970, 5, 7)},

		// since
		{"since yesterday", cfg, date(2024, 6, 14), testNow},
		{"since May 6, 1969", cfg, date(1969, 5, 6), testNow},
		{"since the beginning of the month", cfg, date(2024, 6, 1), testNow},
		{"since the start of this year", cfg, date(2024, 1, 1), testNow},

		// universals and termini
		{"always", cfg, types.MinInstant, types.MaxInstant},
		{"the big bang to eternity", cfg, types.MinInstant, types.MaxInstant},
	}

	for _, c := range cases {
		iv := resolve(t, c.input, c.cfg)
		assert.Equal(t, c.start, iv.Start, "%s: start", c.input)
		assert.Equal(t, c.end, iv.End, "%s: end", c.input)
	}
}

func TestResolveLeapSearch(t *testing.T) {
	// 1900 is not a leap year; the scan has to reach 1896.
	cfg := types.DefaultConfig(date(1900, 6, 15))
	iv := resolve(t, "February 29", cfg)
	assert.Equal(t, date(1896, 2, 29), iv.Start)

	// 2000 is, despite being a century year.
	cfg = types.DefaultConfig(date(2000, 6, 15))
	iv = resolve(t, "February 29", cfg)
	assert.Equal(t, date(2000, 2, 29), iv.Start)
}

func TestResolvePayPeriod(t *testing.T) {
	cfg := testConfig()
	cfg.PayPeriodStart = date(2024, 6, 3)

	iv := resolve(t, "this pay period", cfg)
	assert.Equal(t, date(2024, 6, 3), iv.Start)
	assert.Equal(t, date(2024, 6, 17), iv.End)

	iv = resolve(t, "last pay period", cfg)
	assert.Equal(t, date(2024, 5, 20), iv.Start)

	iv = resolve(t, "next pp", cfg)
	assert.Equal(t, date(2024, 6, 17), iv.Start)

	// The anchor may postdate the reference instant; the cycle extends
	// backward from it.
	cfg.PayPeriodStart = date(2024, 7, 1)
	iv = resolve(t, "this pay period", cfg)
	assert.Equal(t, date(2024, 6, 3), iv.Start)
	assert.Equal(t, date(2024, 6, 17), iv.End)

	cfg.PayPeriodLength = 7
	iv = resolve(t, "this pp", cfg)
	assert.Equal(t, 7*24*time.Hour, iv.Duration())
}

func TestResolveErrors(t *testing.T) {
	cfg := testConfig()
	cases := []string{
		"February 30",         // no such date in any year
		"Friday, May 6, 1969", // was a Tuesday
		"from 2024 to 2020",   // backward range
		"Monday to Monday",    // empty range
		"this pay period",     // no anchor configured
		"since tomorrow",      // has not happened yet
	}
	for _, input := range cases {
		_, err := Resolve(parse(t, input), cfg)
		require.Error(t, err, input)
		terr, ok := err.(*types.Error)
		require.True(t, ok, input)
		assert.Equal(t, types.KindResolve, terr.Kind, input)
	}
}

func TestResolveDaytimeWidth(t *testing.T) {
	cfg := testConfig()
	for _, input := range []string{"now", "noon", "3 hours ago", "yesterday at 10"} {
		iv := resolve(t, input, cfg)
		assert.Equal(t, time.Second, iv.Duration(), input)
	}
	for _, input := range []string{"today", "this week", "May", "2024"} {
		iv := resolve(t, input, cfg)
		assert.Greater(t, iv.Duration(), 23*time.Hour, input)
	}
}

func TestAddMonthsClamps(t *testing.T) {
	assert.Equal(t, date(2024, 2, 29), addMonths(date(2024, 1, 31), 1))
	assert.Equal(t, date(2023, 2, 28), addMonths(date(2023, 1, 31), 1))
	assert.Equal(t, date(2023, 12, 31), addMonths(date(2024, 1, 31), -1))
	assert.Equal(t, date(2025, 1, 15), addMonths(date(2024, 1, 15), 12))
}

func TestExpandYear(t *testing.T) {
	now := date(2024, 6, 15)
	assert.Equal(t, 1969, expandYear(69, now))
	assert.Equal(t, 2021, expandYear(21, now))
	assert.Equal(t, 2024, expandYear(24, now))
	assert.Equal(t, 2000, expandYear(0, now))
}
