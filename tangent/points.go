package tangent

import (
	"math"

	"github.com/cttdev/mags/geom"
)

// AddPoint inserts a degenerate (radius-0) circle at p and its tangents to
// every circle already in the graph. The returned handle, and every
// node/edge it introduces, is transient: ClearPoints removes all of it
// without touching obstacle geometry.
func (g *Graph) AddPoint(p geom.Point) NodeHandle {
	g.muGeom.Lock()

	pointCircle := g.addCircleLocked(Circle{Center: p, Radius: 0}, true)
	pointNode := g.addNodeLocked(pointCircle, p, true)

	// Snapshot existing circles before mutating further, so that tangents
	// computed for one other circle are not accidentally run against nodes
	// this very call is about to create on that circle.
	others := make([]CircleHandle, 0, len(g.circles))
	for h := range g.circles {
		if h == pointCircle {
			continue
		}
		others = append(others, h)
	}

	var newTangents []Edge
	for _, other := range others {
		g.addTangentsLocked(pointNode, other, &newTangents)
	}
	g.muGeom.Unlock()

	g.muEdges.Lock()
	for _, e := range newTangents {
		if !g.hasEquivalentTangentLocked(e) {
			g.transientTangent = append(g.transientTangent, e)
		}
	}
	g.muEdges.Unlock()

	g.muGeom.Lock()
	if g.state == stateBuilt || g.state == statePrepared || g.state == stateSearched {
		g.state = statePointsAdded
	}
	g.muGeom.Unlock()

	return pointNode
}

// hasEquivalentTangentLocked reports whether an equivalent transient
// tangent edge already exists, using Edge.equivalent to dedupe. Caller
// must hold muEdges.
func (g *Graph) hasEquivalentTangentLocked(e Edge) bool {
	for _, existing := range g.transientTangent {
		if existing.equivalent(e) {
			return true
		}
	}

	return false
}

// addTangentsLocked constructs the tangent edges from a newly inserted
// point to one existing circle. Caller must hold muGeom for writing.
func (g *Graph) addTangentsLocked(pointNode NodeHandle, circleH CircleHandle, dst *[]Edge) {
	p := g.nodes[pointNode].node.Position
	c := g.circles[circleH].circle

	if c.Degenerate() {
		// Point-to-point: connect directly to the other point's single
		// node.
		other := g.findNodeOnCircleLocked(circleH)
		if other == 0 {
			return
		}
		if p == g.nodes[other].node.Position {
			g.logSkip("coincident degenerate points", 0, circleH)
			return
		}
		*dst = append(*dst, Edge{A: pointNode, B: other, Kind: Surfing})
		return
	}

	d := geom.Dist(p, c.Center)
	ratio := c.Radius / d
	if d == 0 || ratio > 1 {
		g.logSkip("point inside or on circle (no tangent)", 0, circleH)
		return
	}

	theta := math.Acos(ratio)
	baAngle := geom.AngleTo(c.Center, p)

	e := geom.PolarOffset(c.Center, c.Radius, baAngle-theta)
	f := geom.PolarOffset(c.Center, c.Radius, baAngle+theta)

	eNode := g.addNodeLocked(circleH, e, true)
	fNode := g.addNodeLocked(circleH, f, true)

	*dst = append(*dst, Edge{A: pointNode, B: eNode, Kind: Surfing})
	*dst = append(*dst, Edge{A: pointNode, B: fNode, Kind: Surfing})
}

// ClearPoints removes every node, circle, and tangent edge AddPoint
// introduced since the last ClearPoints (or since construction). Permanent
// obstacle geometry is untouched. Transitions Prepared|Searched back to
// Built.
func (g *Graph) ClearPoints() {
	g.muGeom.Lock()
	for _, h := range g.transientNodes {
		delete(g.nodes, h)
	}
	for _, h := range g.transientCircles {
		delete(g.circles, h)
	}
	g.transientNodes = g.transientNodes[:0]
	g.transientCircles = g.transientCircles[:0]
	g.state = stateBuilt
	g.muGeom.Unlock()

	g.muEdges.Lock()
	g.transientTangent = g.transientTangent[:0]
	g.prunedTangent = g.prunedTangent[:0]
	g.hugging = g.hugging[:0]
	g.adjacency = nil
	g.muEdges.Unlock()
}
