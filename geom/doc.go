// Package geom provides the small set of 2-D vector primitives the tangent
// graph and the A* search build on: distance, signed bearing, polar offset,
// and the cross/dot products used by the segment-circle intersection test.
//
// Point is an alias for gonum.org/v1/gonum/spatial/r2.Vec; geom adds the
// handful of operations (bearing, polar offset, angle normalisation) that
// r2 does not provide directly.
//
// Complexity: every function here is O(1).
package geom
