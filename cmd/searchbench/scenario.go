package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/statesearch/logging"
	"github.com/hupe1980/statesearch/problems"
	"github.com/hupe1980/statesearch/report"
)

// Scenario is the top-level shape of a scenario file.
type Scenario struct {
	Problems []ProblemSpec `yaml:"problems"`
}

// ProblemSpec describes one problem instance. Type selects the domain and
// decides which of the remaining fields apply.
type ProblemSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"` // pour, route or tile

	// pour: jug capacities, starting levels and the target level.
	Capacities []int `yaml:"capacities,omitempty"`
	Target     int   `yaml:"target,omitempty"`

	// pour and tile share the start field.
	Start []int `yaml:"start,omitempty"`

	// route: endpoints on the built-in distance map.
	From string `yaml:"from,omitempty"`
	To   string `yaml:"to,omitempty"`

	// tile: the goal board.
	Goal []int `yaml:"goal,omitempty"`
}

// defaultScenario mirrors the three reference domains so the CLI is useful
// without any configuration.
var defaultScenario = &Scenario{
	Problems: []ProblemSpec{
		{Name: "three-jugs", Type: "pour", Capacities: []int{2, 16, 32}, Start: []int{1, 1, 1}, Target: 13},
		{Name: "route A->B", Type: "route", From: "A", To: "B"},
		{Name: "eight-puzzle", Type: "tile", Start: []int{4, 0, 2, 5, 1, 3, 7, 8, 6}, Goal: []int{1, 2, 3, 4, 5, 6, 7, 8, 0}},
	},
}

func loadScenario(path string) (*Scenario, error) {
	if path == "" {
		return defaultScenario, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(scenario.Problems) == 0 {
		return nil, fmt.Errorf("scenario %q lists no problems", path)
	}

	return &scenario, nil
}

// run builds the problem the spec describes, executes the standard suite
// and returns the rendered table.
func (s ProblemSpec) run(logger logging.Logger) (string, error) {
	withLogger := func(o *report.Options) { o.Logger = logger }

	switch s.Type {
	case "pour":
		capacities, err := toJugs(s.Capacities)
		if err != nil {
			return "", fmt.Errorf("capacities: %w", err)
		}
		start, err := toJugs(s.Start)
		if err != nil {
			return "", fmt.Errorf("start: %w", err)
		}
		p := problems.NewPour(capacities, start, s.Target)
		return report.Run[problems.Jugs, problems.JugAction](s.Name, p, report.Standard[problems.Jugs, problems.JugAction](), withLogger).Render(), nil

	case "route":
		if s.From == "" || s.To == "" {
			return "", fmt.Errorf("route needs from and to")
		}
		links, locations := problems.Romania()
		p := problems.NewRoute(links, locations, s.From, s.To)
		return report.Run[string, string](s.Name, p, report.Standard[string, string](), withLogger).Render(), nil

	case "tile":
		start, err := toBoard(s.Start)
		if err != nil {
			return "", fmt.Errorf("start: %w", err)
		}
		goal, err := toBoard(s.Goal)
		if err != nil {
			return "", fmt.Errorf("goal: %w", err)
		}
		p := problems.NewTile(start, goal)
		return report.Run[problems.Board, problems.TileMove](s.Name, p, report.Standard[problems.Board, problems.TileMove](), withLogger).Render(), nil

	default:
		return "", fmt.Errorf("unknown problem type %q", s.Type)
	}
}

func toJugs(levels []int) (problems.Jugs, error) {
	var jugs problems.Jugs
	if len(levels) != len(jugs) {
		return jugs, fmt.Errorf("want %d jugs, got %d", len(jugs), len(levels))
	}
	copy(jugs[:], levels)
	return jugs, nil
}

func toBoard(cells []int) (problems.Board, error) {
	var board problems.Board
	if len(cells) != len(board) {
		return board, fmt.Errorf("want %d cells, got %d", len(board), len(cells))
	}
	copy(board[:], cells)
	return board, nil
}
