// Package boardcoord maps chess squares to world-plane points and back.
//
// It is the documented seam between a chess-playing application and the
// tangent/astar planning core: a caller turns algebraic squares ("e4") into
// geom.Point values with Square, runs the planner, then turns the resulting
// path back into squares with FromPoint if it needs to report one. Board
// state, piece tracking, move legality, and rendering are out of scope —
// this package knows nothing about chess beyond the 8x8 grid of square
// centres.
package boardcoord
