// Package problems ships three reference domains implementing the core
// Problem contract: water pouring between jugs, route finding on a weighted
// distance map and the sliding 8-puzzle. Each domain is a closed
// configuration struct with named fields; none of them knows anything about
// the search algorithms.
//
// They double as the fixtures for the cross-algorithm comparison scenarios
// in the report package and the searchbench CLI.
package problems
