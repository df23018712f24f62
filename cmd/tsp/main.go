package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/steveyegge/timespan"
	"github.com/steveyegge/timespan/internal/ui"
)

var (
	Version = "0.3.1"
	Build   = "dev"
)

var (
	nowFlag         string
	futureFlag      bool
	sundayWeeks     bool
	payPeriodLength int
	payPeriodStart  string
	jsonOutput      bool
)

var rootCmd = &cobra.Command{
	Use:   "tsp [expression]",
	Short: "tsp - English time expressions to concrete ranges",
	Long: `Resolve English time expressions into concrete half-open time ranges.

Expressions are resolved against a reference instant (--now, default the
current time), so "last month", "Friday the 13th", "2 weeks ago", and
"since yesterday" all have exact answers.

Examples:
  tsp last week
  tsp --now 2024-06-15 "Friday the 13th"
  tsp --future Tuesday
  tsp --json from Monday through Thursday`,
	Run: func(cmd *cobra.Command, args []string) {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("tsp version %s (%s)\n", Version, Build)
			return
		}
		if len(args) == 0 {
			_ = cmd.Help()
			return
		}
		runParse(strings.Join(args, " "))
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&nowFlag, "now", "", "reference instant (RFC 3339, '2006-01-02 15:04:05', or 2006-01-02)")
	pf.BoolVar(&futureFlag, "future", false, "prefer future readings of ambiguous expressions")
	pf.BoolVar(&sundayWeeks, "sunday-weeks", false, "weeks start on Sunday instead of Monday")
	pf.IntVar(&payPeriodLength, "pay-period-length", 14, "pay period length in days")
	pf.StringVar(&payPeriodStart, "pay-period-start", "", "start date of any pay period (2006-01-02)")
	pf.BoolVar(&jsonOutput, "json", false, "emit machine-readable JSON")
	rootCmd.Flags().Bool("version", false, "print version and exit")

	// Flags win over TSP_* env vars, which win over ~/.tsp.yaml.
	viper.SetEnvPrefix("TSP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.SetConfigName(".tsp")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	_ = viper.ReadInConfig()

	for _, name := range []string{"future", "sunday-weeks", "pay-period-length", "pay-period-start"} {
		_ = viper.BindPFlag(name, pf.Lookup(name))
	}
}

// buildConfig assembles the resolution configuration from flags, env,
// and the optional config file.
func buildConfig() (timespan.Config, error) {
	var now time.Time
	if nowFlag != "" {
		t, err := parseInstant(nowFlag)
		if err != nil {
			return timespan.Config{}, fmt.Errorf("invalid --now: %w", err)
		}
		now = t
	}
	cfg := timespan.DefaultConfig(now)
	if viper.GetBool("future") {
		cfg.DefaultToPast = false
	}
	if viper.GetBool("sunday-weeks") {
		cfg.MondayStartsWeek = false
	}
	if n := viper.GetInt("pay-period-length"); n > 0 {
		cfg.PayPeriodLength = n
	}
	if s := viper.GetString("pay-period-start"); s != "" {
		t, err := parseInstant(s)
		if err != nil {
			return timespan.Config{}, fmt.Errorf("invalid pay-period-start: %w", err)
		}
		cfg.PayPeriodStart = t
	}
	return cfg, nil
}

func parseInstant(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", s)
}

const instantLayout = "2006-01-02 15:04:05 Mon"

func runParse(expr string) {
	cfg, err := buildConfig()
	if err != nil {
		fail(err)
	}
	iv, err := timespan.ParseTimeRange(expr, cfg)
	if err != nil {
		fail(err)
	}

	if jsonOutput {
		outputJSON(map[string]any{
			"expression": expr,
			"start":      iv.Start.Format(time.RFC3339),
			"end":        iv.End.Format(time.RFC3339),
			"span":       iv.Span(),
		})
		return
	}

	fmt.Println(ui.RenderAccent(expr))
	fmt.Printf("  start  %s\n", iv.Start.Format(instantLayout))
	fmt.Printf("  end    %s\n", iv.End.Format(instantLayout))
	fmt.Printf("  span   %s\n", ui.RenderMuted(iv.Span().String()))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
