package problems

import (
	"fmt"

	"github.com/hupe1980/statesearch/core"
)

// Jugs holds the current water level of each of the three jugs.
type Jugs [3]int

// JugOp enumerates the three kinds of jug manipulation.
type JugOp int

const (
	// OpFill fills a jug to its capacity from the tap.
	OpFill JugOp = iota
	// OpDump empties a jug onto the ground.
	OpDump
	// OpPour pours one jug into another until the source empties or the
	// destination fills.
	OpPour
)

// JugAction is one manipulation of the jugs. To is meaningful only for
// OpPour.
type JugAction struct {
	Op  JugOp
	Jug int
	To  int
}

// String renders the action in Fill(i) / Dump(i) / Pour(i->j) form.
func (a JugAction) String() string {
	switch a.Op {
	case OpFill:
		return fmt.Sprintf("Fill(%d)", a.Jug)
	case OpDump:
		return fmt.Sprintf("Dump(%d)", a.Jug)
	default:
		return fmt.Sprintf("Pour(%d->%d)", a.Jug, a.To)
	}
}

// Pour is the water-pouring domain: three jugs of fixed capacities, and a
// goal of measuring out Target units in any one jug. Every action costs 1.
type Pour struct {
	*core.Base[Jugs, JugAction]

	Capacities Jugs
	Target     int
}

// NewPour constructs a pouring problem from jug capacities, starting
// levels and the target level.
func NewPour(capacities, start Jugs, target int) *Pour {
	return &Pour{
		Base:       &core.Base[Jugs, JugAction]{InitialState: start},
		Capacities: capacities,
		Target:     target,
	}
}

// Actions lists every fill and dump, plus a pour for each non-empty source
// jug into each other jug.
func (p *Pour) Actions(state Jugs) []JugAction {
	var actions []JugAction
	for i := range state {
		actions = append(actions, JugAction{Op: OpFill, Jug: i})
	}
	for i := range state {
		actions = append(actions, JugAction{Op: OpDump, Jug: i})
	}
	for i, level := range state {
		if level == 0 {
			continue
		}
		for j := range state {
			if i != j {
				actions = append(actions, JugAction{Op: OpPour, Jug: i, To: j})
			}
		}
	}
	return actions
}

// Result applies the action to the jug levels.
func (p *Pour) Result(state Jugs, action JugAction) Jugs {
	next := state
	switch action.Op {
	case OpFill:
		next[action.Jug] = p.Capacities[action.Jug]
	case OpDump:
		next[action.Jug] = 0
	case OpPour:
		amount := min(state[action.Jug], p.Capacities[action.To]-state[action.To])
		next[action.Jug] -= amount
		next[action.To] += amount
	}
	return next
}

// IsGoal reports whether any jug holds exactly the target level.
func (p *Pour) IsGoal(state Jugs) bool {
	for _, level := range state {
		if level == p.Target {
			return true
		}
	}
	return false
}
