package core

import (
	"iter"
	"math"
	"slices"
)

type nodeKind int

const (
	kindState nodeKind = iota
	kindFailure
	kindCutoff
)

// Node is one record of the search tree: a state paired with the path that
// reached it. Parent pointers are shared, never exclusively owned, because
// several children can hang off one parent while sitting in a frontier or
// reached map; the garbage collector reclaims the whole tree at once when
// the last reference drops.
//
// A root node has a nil Parent, the zero Action and PathCost 0.
type Node[S comparable, A any] struct {
	State    S
	Parent   *Node[S, A]
	Action   A
	PathCost float64

	kind nodeKind
}

// Root constructs the root node for the given initial state.
func Root[S comparable, A any](state S) *Node[S, A] {
	return &Node[S, A]{State: state}
}

// FailureNode returns the outcome reported when a search exhausts its
// frontier without reaching a goal. Its PathCost is +Inf.
func FailureNode[S comparable, A any]() *Node[S, A] {
	return &Node[S, A]{PathCost: math.Inf(1), kind: kindFailure}
}

// CutoffNode returns the outcome reported when a depth bound truncated the
// search before it could prove failure. Its PathCost is +Inf.
//
// Cutoff and failure must never be conflated: iterative deepening relies on
// the distinction between "truncated, try a larger bound" and "definitively
// impossible".
func CutoffNode[S comparable, A any]() *Node[S, A] {
	return &Node[S, A]{PathCost: math.Inf(1), kind: kindCutoff}
}

// Solved reports whether the node is a real search-tree node rather than a
// failure or cutoff outcome.
func (n *Node[S, A]) Solved() bool { return n.kind == kindState }

// Failure reports whether the node marks "no solution exists".
func (n *Node[S, A]) Failure() bool { return n.kind == kindFailure }

// Cutoff reports whether the node marks "search truncated by a depth bound".
func (n *Node[S, A]) Cutoff() bool { return n.kind == kindCutoff }

// Depth returns the number of ancestors, i.e. the length of the action
// chain back to the root.
func (n *Node[S, A]) Depth() int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

// PathActions returns the actions applied from the root to this node, in
// order. It is empty for the root. The walk is iterative so long solution
// paths cannot exhaust the stack.
func (n *Node[S, A]) PathActions() []A {
	var actions []A
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		actions = append(actions, cur.Action)
	}
	slices.Reverse(actions)
	return actions
}

// PathStates returns the states visited from the root through this node,
// inclusive on both ends.
func (n *Node[S, A]) PathStates() []S {
	var states []S
	for cur := n; cur != nil; cur = cur.Parent {
		states = append(states, cur.State)
	}
	slices.Reverse(states)
	return states
}

// Path returns the interleaved sequence state0, action1, state1, ...,
// stateN from the root through this node. Its length is 2*Depth()+1.
func (n *Node[S, A]) Path() []any {
	var path []any
	for cur := n; cur != nil; cur = cur.Parent {
		path = append(path, cur.State)
		if cur.Parent != nil {
			path = append(path, cur.Action)
		}
	}
	slices.Reverse(path)
	return path
}

// Expand lazily produces one child node per action applicable in n's state.
// Children whose states coincide are all yielded; the algorithms decide
// which duplicates to admit.
func Expand[S comparable, A any](p Problem[S, A], n *Node[S, A]) iter.Seq[*Node[S, A]] {
	return func(yield func(*Node[S, A]) bool) {
		state := n.State
		for _, action := range p.Actions(state) {
			next := p.Result(state, action)
			cost := n.PathCost + p.StepCost(state, action, next)
			child := &Node[S, A]{State: next, Parent: n, Action: action, PathCost: cost}
			if !yield(child) {
				return
			}
		}
	}
}
