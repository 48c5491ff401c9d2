package plan

import (
	"github.com/cttdev/mags/astar"
	"github.com/cttdev/mags/geom"
	"github.com/cttdev/mags/tangent"
)

// Route finds the minimum-cost collision-free path from start to goal
// around obstacles in a single call, mirroring the original Astar
// wrapper's set_start/set_goal/calculate_path sequence: build the tangent
// graph, insert start and goal as transient points, Prepare, and search.
//
// The returned astar.Path holds tangent.NodeHandles into a graph that no
// longer exists once Route returns, so their positions cannot be looked up;
// callers that need node positions should use the lower-level tangent/astar
// packages directly to keep the graph alive.
func Route(obstacles []tangent.Circle, start, goal geom.Point, opts ...Option) (astar.Path, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	g := tangent.NewGraph(obstacles, o.graphOpts...)

	startHandle := g.AddPoint(start)

	goalHandle := startHandle
	if goal != start {
		goalHandle = g.AddPoint(goal)
	}

	g.Prepare()

	path, err := astar.Search(g, startHandle, goalHandle, o.astarOpts...)

	g.ClearPoints()

	return path, err
}
