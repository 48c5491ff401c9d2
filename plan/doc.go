// Package plan offers a single-call convenience API over the lower-level
// graph/search primitives: build a graph from obstacles, drop in a start
// and goal, search, and hand back a path.
//
// Route is a thin, stateless composition of tangent.NewGraph, AddPoint,
// Prepare and astar.Search. Callers who need to search the same obstacle
// field against many start/goal pairs should build and Prepare a
// tangent.Graph themselves instead of calling Route repeatedly, since Route
// pays the bitangent-construction cost on every call.
package plan
