package tangent

// NewGraph constructs a tangent graph from a set of obstacle circles,
// generating every internal and external bitangent between each unordered
// pair. Self-pairs are skipped. ClearanceMargin (see WithClearance) is
// added to every obstacle's radius before any bitangent is computed.
func NewGraph(obstacles []Circle, opts ...GraphOption) *Graph {
	o := DefaultGraphOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Graph{
		opts:      o,
		circles:   make(map[CircleHandle]*circleRecord, len(obstacles)),
		nodes:     make(map[NodeHandle]*nodeRecord, 4*len(obstacles)),
		adjacency: nil,
		state:     stateEmpty,
	}

	handles := make([]CircleHandle, 0, len(obstacles))
	g.muGeom.Lock()
	for _, c := range obstacles {
		c.Radius += o.ClearanceMargin
		handles = append(handles, g.addCircleLocked(c, false))
	}

	var raw []Edge
	for i := 0; i < len(handles); i++ {
		for j := i + 1; j < len(handles); j++ {
			g.buildBitangentsLocked(handles[i], handles[j], &raw)
		}
	}
	g.muGeom.Unlock()

	g.muEdges.Lock()
	g.rawSurfing = raw
	g.muEdges.Unlock()

	g.muGeom.Lock()
	g.state = stateBuilt
	g.muGeom.Unlock()

	return g
}

// BuildGraph is an alias for NewGraph, named for callers that prefer a verb
// describing what the constructor does.
func BuildGraph(obstacles []Circle, opts ...GraphOption) *Graph {
	return NewGraph(obstacles, opts...)
}

// Circle returns the circle registered under h, and whether h belongs to
// this graph.
func (g *Graph) Circle(h CircleHandle) (Circle, bool) {
	g.muGeom.RLock()
	defer g.muGeom.RUnlock()

	rec, ok := g.circles[h]
	if !ok {
		return Circle{}, false
	}

	return rec.circle, true
}

// NodeAt returns the node registered under h, and whether h belongs to this
// graph.
func (g *Graph) NodeAt(h NodeHandle) (Node, bool) {
	g.muGeom.RLock()
	defer g.muGeom.RUnlock()

	rec, ok := g.nodes[h]
	if !ok {
		return Node{}, false
	}

	return rec.node, true
}

// CircleHandles returns every circle handle currently registered in the
// graph, obstacles and any inserted points alike.
func (g *Graph) CircleHandles() []CircleHandle {
	g.muGeom.RLock()
	defer g.muGeom.RUnlock()

	out := make([]CircleHandle, 0, len(g.circles))
	for h := range g.circles {
		out = append(out, h)
	}

	return out
}

// NodeHandles returns every node handle currently registered in the graph
// (including, before Prepare, obstacle tangent points that pruning will
// later drop).
func (g *Graph) NodeHandles() []NodeHandle {
	g.muGeom.RLock()
	defer g.muGeom.RUnlock()

	out := make([]NodeHandle, 0, len(g.nodes))
	for h := range g.nodes {
		out = append(out, h)
	}

	return out
}

// State exposes the lifecycle stage for diagnostics and tests.
type State = graphState

// Prepare finalises the graph for search: it prunes surfing and transient
// tangent edges against every obstacle circle, drops obstacle-anchored
// tangent points left with no surviving edge, reinstalls hugging edges,
// and rebuilds the adjacency index Neighbours relies on. Prepare is
// idempotent on an unchanged graph.
func (g *Graph) Prepare() {
	g.muGeom.RLock()
	circles := make([]Circle, 0, len(g.circles))
	circleOf := make(map[CircleHandle]Circle, len(g.circles))
	for h, rec := range g.circles {
		circles = append(circles, rec.circle)
		circleOf[h] = rec.circle
	}
	g.muGeom.RUnlock()

	g.muEdges.RLock()
	rawSurfing := append([]Edge(nil), g.rawSurfing...)
	transient := append([]Edge(nil), g.transientTangent...)
	workers := g.opts.Workers
	eps := g.opts.ClearanceEpsilon
	g.muEdges.RUnlock()

	prunedSurfing := g.pruneEdges(rawSurfing, circleOf, eps, workers)
	prunedTangent := g.pruneEdges(transient, circleOf, eps, workers)

	live := make(map[NodeHandle]struct{}, 2*(len(prunedSurfing)+len(prunedTangent)))
	markLive := func(edges []Edge) {
		for _, e := range edges {
			live[e.A] = struct{}{}
			live[e.B] = struct{}{}
		}
	}
	markLive(prunedSurfing)
	markLive(prunedTangent)

	g.muGeom.Lock()
	// Degenerate (point) nodes always stay live even if isolated: they are
	// externally-returned handles (start/goal) and must remain valid for
	// Neighbours/astar even when unreachable — an isolated start or goal is
	// a NoPath condition for the search to report, not a reason to make its
	// own handle invalid.
	for h, rec := range g.nodes {
		if rec.node.Circle != 0 {
			if c, ok := g.circles[rec.node.Circle]; ok && c.circle.Degenerate() {
				live[h] = struct{}{}
			}
		}
		if _, ok := live[h]; !ok {
			delete(g.nodes, h)
		}
	}
	g.muGeom.Unlock()

	hugging := g.installHuggingEdges(live, circleOf)

	adjacency := make(map[NodeHandle][]Neighbour, len(live))
	addAdj := func(edges []Edge) {
		for _, e := range edges {
			adjacency[e.A] = append(adjacency[e.A], Neighbour{Other: e.B, Edge: e})
			adjacency[e.B] = append(adjacency[e.B], Neighbour{Other: e.A, Edge: e})
		}
	}
	addAdj(prunedSurfing)
	addAdj(prunedTangent)
	addAdj(hugging)

	g.muEdges.Lock()
	g.prunedSurfing = prunedSurfing
	g.prunedTangent = prunedTangent
	g.hugging = hugging
	g.adjacency = adjacency
	g.muEdges.Unlock()

	g.muGeom.Lock()
	g.state = statePrepared
	g.muGeom.Unlock()
}

// Neighbours returns every edge incident to n, paired with the opposite
// endpoint. Panics with ErrUnpreparedGraph if called before Prepare, and
// with ErrInvalidHandle if n does not belong to this graph.
func (g *Graph) Neighbours(n NodeHandle) []Neighbour {
	g.muGeom.RLock()
	state := g.state
	_, known := g.nodes[n]
	g.muGeom.RUnlock()

	if state != statePrepared && state != stateSearched {
		panic(ErrUnpreparedGraph)
	}
	if !known {
		panic(ErrInvalidHandle)
	}

	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	return append([]Neighbour(nil), g.adjacency[n]...)
}

// markSearched records that this graph has been used in at least one
// search, advancing it from Prepared to Searched. It is reached through the
// exported MarkSearched, which astar.Search calls.
func (g *Graph) markSearched() {
	g.muGeom.Lock()
	if g.state == statePrepared {
		g.state = stateSearched
	}
	g.muGeom.Unlock()
}

// MarkSearched is the exported hook the astar package uses to record the
// Prepared -> Searched transition without exposing graphState publicly.
func (g *Graph) MarkSearched() { g.markSearched() }
