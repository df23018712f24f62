package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/steveyegge/timespan/internal/grammar"
	"gopkg.in/yaml.v3"
)

var grammarCmd = &cobra.Command{
	Use:   "grammar",
	Short: "Dump the time-expression grammar",
	Long: `Dump the compiled grammar as YAML, one entry per rule in authored
order. Within a rule, alternatives are tried top to bottom and the
first match wins; the dump order is the disambiguation order.`,
	Run: func(_ *cobra.Command, _ []string) {
		data, err := yaml.Marshal(grammar.Compiled().Docs())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(string(data))
	},
}

func init() {
	rootCmd.AddCommand(grammarCmd)
}
