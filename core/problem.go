package core

// Problem is the contract every search domain implements. S is the state
// type and A the action type; S must be comparable so states can key the
// reached map and the visited set.
//
// The search packages invoke domains only through this surface, so a
// delegating wrapper (see the instrument package) can transparently
// interpose on every call.
//
// Implementations are not required to be safe for concurrent use. Two
// independent searches may run over the same Problem concurrently only if
// its methods are free of shared mutable state; that guarantee is the
// domain implementer's responsibility.
type Problem[S comparable, A any] interface {
	// Initial returns the state the search starts from.
	Initial() S

	// Actions returns every action applicable in the given state. The
	// returned slice must be finite; duplicates are permitted.
	Actions(state S) []A

	// Result returns the state produced by applying action in state.
	// It must be deterministic.
	Result(state S, action A) S

	// IsGoal reports whether the given state satisfies the goal.
	IsGoal(state S) bool

	// StepCost returns the cost of reaching next from state via action.
	// Costs must be non-negative for UniformCost and AStar to be optimal.
	StepCost(state S, action A, next S) float64

	// Heuristic estimates the remaining cost from the node's state to a
	// goal. Returning 0 everywhere degrades informed search to uniform
	// cost. Admissible heuristics never overestimate.
	Heuristic(node *Node[S, A]) float64
}

// Base supplies the default behavior of the Problem contract and the stored
// initial and goal states. Domains embed it and override what they need:
// IsGoal defaults to equality against GoalState, StepCost to 1 and
// Heuristic to 0.
//
// Actions and Result have no sensible default. A domain that fails to
// override them is a programming defect, not a runtime condition, so the
// Base implementations panic.
type Base[S comparable, A any] struct {
	InitialState S
	GoalState    S
}

// Initial returns the stored initial state.
func (b *Base[S, A]) Initial() S { return b.InitialState }

// Goal returns the stored goal state.
func (b *Base[S, A]) Goal() S { return b.GoalState }

// IsGoal reports whether state equals the stored goal state.
func (b *Base[S, A]) IsGoal(state S) bool { return state == b.GoalState }

// StepCost returns the default unit step cost.
func (b *Base[S, A]) StepCost(S, A, S) float64 { return 1 }

// Heuristic returns the uninformed default of 0.
func (b *Base[S, A]) Heuristic(*Node[S, A]) float64 { return 0 }

// Actions panics: every domain must provide its own implementation.
func (b *Base[S, A]) Actions(S) []A {
	panic("statesearch: Problem.Actions not implemented")
}

// Result panics: every domain must provide its own implementation.
func (b *Base[S, A]) Result(S, A) S {
	panic("statesearch: Problem.Result not implemented")
}
