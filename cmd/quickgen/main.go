// Package main is the entry point for the quickgen CLI.
// quickgen samples values from generators described in YAML files, for
// eyeballing distributions and debugging generator trees before wiring them
// into property tests.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build information, set via ldflags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd := &cobra.Command{
		Use:   "quickgen",
		Short: "quickgen - sample random value generators",
		Long: `quickgen builds generators from YAML descriptions and samples them.

A description is a tree of combinator nodes (choose, elements, frequency,
oneof, list, list1, vector, resize, growing, const). Sampling is fully
reproducible: the same seed, size, and description always produce the same
values.

Example:
  quickgen sample -f gen.yaml --count 20 --seed 42 --size 30
  quickgen histogram -f gen.yaml --count 10000`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newSampleCmd(),
		newHistogramCmd(),
	)

	return rootCmd.Execute()
}
