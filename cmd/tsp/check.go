package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/steveyegge/timespan"
	"github.com/steveyegge/timespan/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check <expression>",
	Short: "Check whether an expression matches the grammar",
	Long: `Check whether an expression matches the time-expression grammar,
without resolving it. Parsable expressions can still fail to resolve
("February 30" parses fine); use the root command to resolve.

Exits 0 when the expression parses, 1 when it does not.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		expr := strings.Join(args, " ")
		ok := timespan.IsParsable(expr)
		if jsonOutput {
			outputJSON(map[string]any{"expression": expr, "parsable": ok})
		} else if ok {
			fmt.Printf("%s %s\n", ui.RenderPass(ui.IconPass), expr)
		} else {
			fmt.Printf("%s %s\n", ui.RenderFail(ui.IconFail), expr)
		}
		if !ok {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
