// Package mags plans collision-free paths for a chess-playing robot arm
// moving over a board cluttered with standing pieces.
//
// 🚀 What is mags?
//
//	A tangent-visibility path planner that brings together:
//
//	  • Geometry primitives: points, bearings, polar offsets
//	  • A tangent graph over circular obstacles: surfing bitangents and
//	    hugging arcs, kept incrementally as start/goal points come and go
//	  • A* search over that graph with an admissible Euclidean heuristic
//	  • Chess board <-> world-plane coordinate conversion
//
// ✨ Why a tangent graph?
//
//   - Exact      — the shortest collision-free path between circles always
//     runs along a bitangent or hugs a circle's boundary, so the graph
//     needs no grid resolution to approximate it
//   - Small      — the graph has O(n²) edges for n obstacles, not a
//     resolution-dependent grid
//   - Incremental — start/goal points are added and cleared without
//     rebuilding the obstacle geometry
//
// Everything is organized under five subpackages:
//
//	geom/       — 2-D vector primitives: distance, bearing, polar offset
//	tangent/    — the tangent-visibility graph over circular obstacles
//	astar/      — A* search over a prepared tangent.Graph
//	boardcoord/ — chess square <-> world-plane coordinate conversion
//	plan/       — single-call convenience API composing the above
//
// A minimal end-to-end use:
//
//	g := tangent.NewGraph(obstacles)
//	start := g.AddPoint(startPos)
//	goal := g.AddPoint(goalPos)
//	g.Prepare()
//	path, err := astar.Search(g, start, goal)
package mags
