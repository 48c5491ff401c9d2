package astar

import (
	"container/heap"
	"math"

	"github.com/cttdev/mags/geom"
	"github.com/cttdev/mags/tangent"
)

// Search runs A* over g from start to goal and returns the ordered node
// sequence. g must have been Prepared; start and goal must belong to g —
// both panic through tangent.Graph.Neighbours otherwise.
//
// Returns ErrNoPath if the frontier empties before reaching goal.
func Search(g *tangent.Graph, start, goal tangent.NodeHandle, opts ...Option) (Path, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Touch the graph up front so contract violations (unprepared graph,
	// foreign start or goal handle) panic even on the trivial start==goal
	// path and before the reachability precheck.
	g.Neighbours(start)
	g.Neighbours(goal)

	if start == goal {
		return Path{start}, nil
	}

	if !o.SkipReachabilityPrecheck && !g.Reachable(start, goal) {
		return nil, ErrNoPath
	}

	r := &runner{
		g:        g,
		goalPos:  mustPosition(g, goal),
		goal:     goal,
		bestCost: map[tangent.NodeHandle]float64{start: 0},
		cameFrom: map[tangent.NodeHandle]tangent.NodeHandle{},
		closed:   map[tangent.NodeHandle]bool{},
	}

	frontier := make(nodePQ, 0, 64)
	heap.Init(&frontier)
	heap.Push(&frontier, &item{handle: start, f: r.heuristic(start)})

	var expansions int64
	for frontier.Len() > 0 {
		expansions++
		if expansions > o.MaxExpansions {
			return nil, ErrNoPath
		}

		current := heap.Pop(&frontier).(*item).handle
		if r.closed[current] {
			continue
		}
		r.closed[current] = true

		if current == goal {
			g.MarkSearched()
			return r.reconstruct(start, goal), nil
		}

		for _, nb := range g.Neighbours(current) {
			if r.closed[nb.Other] {
				continue
			}
			candidate := r.bestCost[current] + edgeCost(g, current, nb)
			known, seen := r.bestCost[nb.Other]
			if !seen || candidate < known {
				r.bestCost[nb.Other] = candidate
				r.cameFrom[nb.Other] = current
				heap.Push(&frontier, &item{handle: nb.Other, f: candidate + r.heuristic(nb.Other)})
			}
		}
	}

	g.MarkSearched()

	return nil, ErrNoPath
}

// runner holds the mutable state for a single Search call.
type runner struct {
	g        *tangent.Graph
	goal     tangent.NodeHandle
	goalPos  geom.Point
	bestCost map[tangent.NodeHandle]float64
	cameFrom map[tangent.NodeHandle]tangent.NodeHandle
	closed   map[tangent.NodeHandle]bool
}

// heuristic is the Euclidean distance from n's position to the goal's
// position.
func (r *runner) heuristic(n tangent.NodeHandle) float64 {
	return geom.Dist(mustPosition(r.g, n), r.goalPos)
}

// reconstruct walks cameFrom from goal back to start and reverses it.
func (r *runner) reconstruct(start, goal tangent.NodeHandle) Path {
	path := Path{goal}
	current := goal
	for current != start {
		current = r.cameFrom[current]
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = j, i {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// edgeCost is the cost function for one edge: a surfing edge costs 1 plus
// the Euclidean distance between its endpoints; a hugging edge costs 1
// plus its arc length. current is the endpoint the search is expanding
// from; nb is its neighbour along one edge.
func edgeCost(g *tangent.Graph, current tangent.NodeHandle, nb tangent.Neighbour) float64 {
	currentPos := mustPosition(g, current)
	otherPos := mustPosition(g, nb.Other)

	if nb.Edge.Kind == tangent.Surfing {
		return 1 + geom.Dist(currentPos, otherPos)
	}

	currentNode, _ := g.NodeAt(current)
	circle, _ := g.Circle(currentNode.Circle)

	a1 := geom.AngleTo(circle.Center, currentPos)
	a2 := geom.AngleTo(circle.Center, otherPos)
	arc := math.Abs(circle.Radius * geom.ShortestAngleDelta(a1, a2))

	return 1 + arc
}

func mustPosition(g *tangent.Graph, n tangent.NodeHandle) geom.Point {
	node, ok := g.NodeAt(n)
	if !ok {
		panic(tangent.ErrInvalidHandle)
	}

	return node.Position
}

// item is one priority-queue entry: a node handle at priority f = g + h.
type item struct {
	handle tangent.NodeHandle
	f      float64
}

// nodePQ is a min-heap of *item ordered by f ascending, with ties broken by
// handle for a total, deterministic order.
type nodePQ []*item

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].handle < pq[j].handle
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*item)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return it
}
