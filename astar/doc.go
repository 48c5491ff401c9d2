// Package astar runs a best-first search over a prepared tangent.Graph,
// returning the minimum-cost sequence of nodes from a start handle to a
// goal handle.
//
// Edge cost is geometric: a surfing edge costs 1 plus the Euclidean
// distance between its endpoints; a hugging edge costs 1 plus its arc
// length. The constant term biases the search toward paths with fewer
// segments, matching ties in geometric length. The heuristic is the
// Euclidean distance from a node's position to the goal's position, which
// never overestimates the true remaining cost because every real edge
// costs at least its chord length.
//
// Complexity: O((V + E) log V) with the binary-heap priority queue this
// package uses.
//
// Errors:
//
//	ErrNoPath - the frontier emptied before reaching the goal. This is a
//	            recoverable condition, returned as a value, never panicked.
//
// Search panics if the graph has not been Prepared, or if start/goal do
// not belong to it — both are tangent.Graph contract violations that
// surface as tangent.ErrUnpreparedGraph / tangent.ErrInvalidHandle panics
// from Neighbours.
package astar
