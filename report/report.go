// Package report runs a set of named search algorithms over a problem
// behind counting wrappers and renders the comparison as a table. It is the
// reporting collaborator of the core engine: thin, non-algorithmic and
// entirely replaceable.
package report

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/uuid"

	"github.com/hupe1980/statesearch/core"
	"github.com/hupe1980/statesearch/instrument"
	"github.com/hupe1980/statesearch/logging"
	"github.com/hupe1980/statesearch/search"
)

// Algorithm pairs a display name with a runner so heterogeneous search
// procedures can be compared side by side.
type Algorithm[S comparable, A any] struct {
	Name string
	Run  func(p core.Problem[S, A]) *core.Node[S, A]
}

// Standard returns the default comparison suite: breadth-first, iterative
// deepening, uniform-cost and A*. Depth-limited search is omitted because
// its result depends on an arbitrary bound; add it explicitly when that is
// what you want to study.
func Standard[S comparable, A any]() []Algorithm[S, A] {
	return []Algorithm[S, A]{
		{Name: "breadth-first", Run: search.BreadthFirst[S, A]},
		{Name: "iterative-deepening", Run: func(p core.Problem[S, A]) *core.Node[S, A] {
			return search.IterativeDeepening(p)
		}},
		{Name: "uniform-cost", Run: search.UniformCost[S, A]},
		{Name: "a-star", Run: func(p core.Problem[S, A]) *core.Node[S, A] {
			return search.AStar(p)
		}},
	}
}

// Row holds the measurements of one algorithm on one problem.
type Row struct {
	Algorithm string
	Outcome   string
	PathCost  float64
	Depth     int
	Counts    map[string]int
	Duration  time.Duration
}

// Report aggregates the rows of one comparison run.
type Report struct {
	Problem string
	RunID   string
	Rows    []Row
}

// Options configures Run.
type Options struct {
	// Logger receives one entry per completed algorithm run. Defaults to
	// the NoOp logger.
	Logger logging.Logger
}

// Run executes every algorithm against the problem, each behind its own
// counting wrapper, and collects one row per algorithm. The problem itself
// is shared across runs, so its methods must be free of mutable state, as
// the Problem contract already requires for reuse.
func Run[S comparable, A any](problem string, p core.Problem[S, A], algorithms []Algorithm[S, A], optFns ...func(o *Options)) *Report {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	rep := &Report{Problem: problem, RunID: uuid.NewString()}

	for _, alg := range algorithms {
		counting := instrument.NewCounting(p)

		start := time.Now()
		node := alg.Run(counting)
		dur := time.Since(start)

		row := Row{
			Algorithm: alg.Name,
			Outcome:   outcome(node),
			PathCost:  node.PathCost,
			Depth:     node.Depth(),
			Counts:    counting.Counts(),
			Duration:  dur,
		}
		rep.Rows = append(rep.Rows, row)

		opts.Logger.Info("algorithm completed",
			"run_id", rep.RunID,
			"problem", problem,
			"algorithm", alg.Name,
			"outcome", row.Outcome,
			"expanded", counting.Expansions(),
			"duration", dur,
		)
	}

	return rep
}

func outcome[S comparable, A any](n *core.Node[S, A]) string {
	switch {
	case n.Failure():
		return "failure"
	case n.Cutoff():
		return "cutoff"
	default:
		return "solved"
	}
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Render formats the report as a bordered table.
func (r *Report) Render() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("ALGORITHM", "OUTCOME", "COST", "DEPTH", "EXPANDED", "RESULTS", "GOAL TESTS")

	for _, row := range r.Rows {
		cost, depth := "-", "-"
		if row.Outcome == "solved" {
			cost = fmt.Sprintf("%g", row.PathCost)
			depth = fmt.Sprintf("%d", row.Depth)
		}
		t.Row(
			row.Algorithm,
			row.Outcome,
			cost,
			depth,
			fmt.Sprintf("%d", row.Counts[instrument.CountActions]),
			fmt.Sprintf("%d", row.Counts[instrument.CountResult]),
			fmt.Sprintf("%d", row.Counts[instrument.CountIsGoal]),
		)
	}

	return fmt.Sprintf("%s (run %s)\n%s", r.Problem, r.RunID, t.Render())
}
