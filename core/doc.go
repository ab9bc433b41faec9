// Package core provides the foundational domain types for statesearch. It
// defines the core abstractions for:
//
//   - Problems (the contract every search domain implements)
//   - Nodes (immutable search-tree records with parent links)
//   - Expansion (lazy generation of child nodes from a problem and a node)
//   - Path reconstruction (action, state and interleaved sequences)
//   - Outcomes (tagged failure and cutoff results, never conflated)
//
// The package intentionally keeps implementation concerns (frontier
// disciplines, concrete algorithms, instrumentation) out of scope, exposing
// small interfaces and plain data so the search packages can be composed
// on top of it.
package core
