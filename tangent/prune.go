package tangent

import "sync"

// pruneEdges filters edges down to those whose open interior does not
// intersect any circle other than the two its endpoints are anchored to.
// The scan is an embarrassingly parallel read-only map over an immutable
// edge slice, dispatched across up to workers goroutines; the result
// preserves the input order regardless of how work was split, so
// concurrent and sequential execution are observationally equivalent.
func (g *Graph) pruneEdges(edges []Edge, circles map[CircleHandle]Circle, eps float64, workers int) []Edge {
	if len(edges) == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(edges) {
		workers = len(edges)
	}

	g.muGeom.RLock()
	circleOfNode := make(map[NodeHandle]CircleHandle, len(g.nodes))
	for h, rec := range g.nodes {
		circleOfNode[h] = rec.node.Circle
	}
	g.muGeom.RUnlock()

	keep := make([]bool, len(edges))

	chunk := (len(edges) + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < len(edges); start += chunk {
		end := start + chunk
		if end > len(edges) {
			end = len(edges)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				keep[i] = g.edgeSurvives(edges[i], circleOfNode, circles, eps)
			}
		}(start, end)
	}
	wg.Wait()

	out := make([]Edge, 0, len(edges))
	for i, e := range edges {
		if keep[i] {
			out = append(out, e)
		}
	}

	if g.opts.Verbose {
		logPruneSummary(len(edges), len(out))
	}

	return out
}

// edgeSurvives reports whether e clears every obstacle circle except the
// ones its own endpoints are anchored to.
func (g *Graph) edgeSurvives(e Edge, circleOfNode map[NodeHandle]CircleHandle, circles map[CircleHandle]Circle, eps float64) bool {
	g.muGeom.RLock()
	aRec, aOK := g.nodes[e.A]
	bRec, bOK := g.nodes[e.B]
	g.muGeom.RUnlock()
	if !aOK || !bOK {
		return false
	}

	p1 := aRec.node.Position
	p2 := bRec.node.Position
	endpointCircleA := circleOfNode[e.A]
	endpointCircleB := circleOfNode[e.B]

	for h, c := range circles {
		if h == endpointCircleA || h == endpointCircleB {
			continue
		}
		if segmentIntersectsCircle(p1, p2, c, eps) {
			return false
		}
	}

	return true
}
