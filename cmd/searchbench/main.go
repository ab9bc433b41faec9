// Package main implements the searchbench CLI: it loads a scenario file
// describing search problems, runs the standard algorithm suite over each
// of them and prints one comparison table per problem.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/statesearch/logging"
)

var (
	// scenarioPath points at the YAML scenario file; empty runs the
	// built-in default scenario.
	scenarioPath string
	verbose      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "searchbench",
	Short: "Compare search algorithms on a set of problems",
	Long: `searchbench runs breadth-first, iterative-deepening, uniform-cost and
A* search over each problem in a scenario and prints a table per problem
comparing outcome, solution cost, depth and per-method call counts.

Examples:
  # Run the built-in scenario (pouring, route finding, 8-puzzle)
  searchbench

  # Run a custom scenario
  searchbench --scenario scenarios.yaml --verbose`,
	RunE: runBench,
}

func init() {
	rootCmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file (default: built-in scenario)")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "log every algorithm run")
}

func runBench(cmd *cobra.Command, _ []string) error {
	scenario, err := loadScenario(scenarioPath)
	if err != nil {
		return err
	}

	var logger logging.Logger = logging.NoOpLogger{}
	if verbose {
		logger = logging.NewSlogLogger(logging.LogLevelInfo, "text", false)
	}

	for i, spec := range scenario.Problems {
		rendered, err := spec.run(logger)
		if err != nil {
			return fmt.Errorf("problem %q: %w", spec.Name, err)
		}
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
	}

	return nil
}
