package problems

import (
	"math"
	"sort"

	"github.com/hupe1980/statesearch/core"
)

// Point is a map coordinate used for the straight-line distance heuristic.
type Point struct {
	X, Y float64
}

// Route is the route-finding domain: shortest travel on a weighted
// undirected graph of named locations. The action is simply the name of the
// next location, and the step cost is the link distance.
type Route struct {
	*core.Base[string, string]

	// Links holds the distance between directly connected locations, in
	// both directions.
	Links map[string]map[string]float64

	// Locations optionally maps each node to a coordinate. When present
	// it powers the straight-line distance heuristic; when absent the
	// heuristic is 0 and informed search degrades to uniform cost.
	Locations map[string]Point
}

// NewRoute constructs a route problem. Links may name each undirected edge
// once; the reverse direction is filled in automatically.
func NewRoute(links map[string]map[string]float64, locations map[string]Point, start, goal string) *Route {
	both := map[string]map[string]float64{}
	add := func(from, to string, dist float64) {
		if both[from] == nil {
			both[from] = map[string]float64{}
		}
		both[from][to] = dist
	}
	for from, neighbors := range links {
		for to, dist := range neighbors {
			add(from, to, dist)
			add(to, from, dist)
		}
	}
	return &Route{
		Base:      &core.Base[string, string]{InitialState: start, GoalState: goal},
		Links:     both,
		Locations: locations,
	}
}

// Actions returns the directly reachable locations in lexical order, so
// expansion order is deterministic regardless of map iteration.
func (r *Route) Actions(state string) []string {
	neighbors := make([]string, 0, len(r.Links[state]))
	for to := range r.Links[state] {
		neighbors = append(neighbors, to)
	}
	sort.Strings(neighbors)
	return neighbors
}

// Result moves to the chosen neighbor.
func (r *Route) Result(_ string, action string) string { return action }

// StepCost returns the link distance between the two locations.
func (r *Route) StepCost(state, action string, next string) float64 {
	return r.Links[state][next]
}

// Heuristic returns the straight-line distance from the node's location to
// the goal, or 0 when coordinates are unknown.
func (r *Route) Heuristic(n *core.Node[string, string]) float64 {
	from, okFrom := r.Locations[n.State]
	to, okTo := r.Locations[r.GoalState]
	if !okFrom || !okTo {
		return 0
	}
	return math.Hypot(from.X-to.X, from.Y-to.Y)
}

// Romania returns the classic 20-location distance map with single-letter
// node names, plus the coordinates its straight-line heuristic runs on.
func Romania() (map[string]map[string]float64, map[string]Point) {
	links := map[string]map[string]float64{
		"A": {"Z": 75, "S": 140, "T": 118},
		"B": {"U": 85, "P": 101, "G": 90, "F": 211},
		"C": {"D": 120, "R": 146, "P": 138},
		"D": {"M": 75},
		"E": {"H": 86},
		"F": {"S": 99},
		"H": {"U": 98},
		"I": {"V": 92, "N": 87},
		"L": {"T": 111, "M": 70},
		"O": {"Z": 71, "S": 151},
		"P": {"R": 97},
		"R": {"S": 80},
		"U": {"V": 142},
	}
	locations := map[string]Point{
		"A": {91, 492}, "B": {400, 327}, "C": {253, 288}, "D": {165, 299},
		"E": {562, 293}, "F": {305, 449}, "G": {375, 270}, "H": {534, 350},
		"I": {473, 506}, "L": {165, 379}, "M": {168, 339}, "N": {406, 537},
		"O": {131, 571}, "P": {320, 368}, "R": {233, 410}, "S": {207, 457},
		"T": {94, 410}, "U": {456, 350}, "V": {509, 444}, "Z": {108, 531},
	}
	return links, locations
}
