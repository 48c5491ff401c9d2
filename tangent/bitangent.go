package tangent

import (
	"log"
	"math"

	"github.com/cttdev/mags/geom"
)

// addCircleLocked registers a circle and returns its handle. Caller must
// hold muGeom for writing.
func (g *Graph) addCircleLocked(c Circle, transient bool) CircleHandle {
	g.nextCircleID++
	h := CircleHandle(g.nextCircleID)
	g.circles[h] = &circleRecord{circle: c, transient: transient}
	if transient {
		g.transientCircles = append(g.transientCircles, h)
	}

	return h
}

// addNodeLocked registers a node and returns its handle. Caller must hold
// muGeom for writing.
func (g *Graph) addNodeLocked(circle CircleHandle, pos geom.Point, transient bool) NodeHandle {
	g.nextNodeID++
	h := NodeHandle(g.nextNodeID)
	g.nodes[h] = &nodeRecord{node: Node{Circle: circle, Position: pos}, transient: transient}
	if transient {
		g.transientNodes = append(g.transientNodes, h)
	}

	return h
}

// logSkip records a geometric-degeneracy skip (overlapping or coincident
// circles) and, if verbose, logs it. Degenerate pairs are always skipped
// silently rather than surfaced as an error.
func (g *Graph) logSkip(reason string, a, b CircleHandle) {
	g.degenerateSkips++
	if g.opts.Verbose {
		log.Printf("tangent: skipping %s<->%s: %s", a, b, reason)
	}
}

// DegenerateSkips reports how many circle pairs were skipped due to
// geometric degeneracy (overlap, coincident centres) since construction.
func (g *Graph) DegenerateSkips() int {
	g.muGeom.RLock()
	defer g.muGeom.RUnlock()

	return g.degenerateSkips
}

// buildBitangentsLocked constructs the internal and external bitangents
// between two non-degenerate obstacle circles ha and hb and appends the
// resulting surfing edges to dst. Caller must hold muGeom for writing.
func (g *Graph) buildBitangentsLocked(ha, hb CircleHandle, dst *[]Edge) {
	a := g.circles[ha].circle
	b := g.circles[hb].circle

	d := geom.Dist(a.Center, b.Center)

	// Degenerate circles (radius 0) among themselves: exactly one direct
	// edge, not the quadruple the internal/external formulas would each
	// produce.
	if a.Degenerate() && b.Degenerate() {
		if d == 0 {
			g.logSkip("coincident degenerate points", ha, hb)
			return
		}
		na := g.findNodeOnCircleLocked(ha)
		if na == 0 {
			na = g.addNodeLocked(ha, a.Center, false)
		}
		nb := g.findNodeOnCircleLocked(hb)
		if nb == 0 {
			nb = g.addNodeLocked(hb, b.Center, false)
		}
		*dst = append(*dst, Edge{A: na, B: nb, Kind: Surfing})
		return
	}

	g.buildInternalBitangentsLocked(ha, hb, a, b, d, dst)
	g.buildExternalBitangentsLocked(ha, hb, a, b, d, dst)
}

// buildInternalBitangentsLocked constructs the internal bitangents between
// two circles. Internal bitangents cross the segment between the two
// centres and require d >= r1+r2; overlapping circles are skipped.
func (g *Graph) buildInternalBitangentsLocked(ha, hb CircleHandle, a, b Circle, d float64, dst *[]Edge) {
	if d == 0 {
		g.logSkip("coincident centres", ha, hb)
		return
	}

	ratio := (a.Radius + b.Radius) / d
	if ratio > 1 {
		g.logSkip("overlapping circles (no internal bitangent)", ha, hb)
		return
	}

	theta := math.Acos(ratio)
	abAngle := geom.AngleTo(a.Center, b.Center)
	baAngle := geom.AngleTo(b.Center, a.Center)

	c := geom.PolarOffset(a.Center, a.Radius, abAngle+theta)
	dPt := geom.PolarOffset(a.Center, a.Radius, abAngle-theta)
	e := geom.PolarOffset(b.Center, b.Radius, baAngle-theta)
	f := geom.PolarOffset(b.Center, b.Radius, baAngle+theta)

	cNode := g.addNodeLocked(ha, c, false)
	dNode := g.addNodeLocked(ha, dPt, false)
	eNode := g.addNodeLocked(hb, e, false)
	fNode := g.addNodeLocked(hb, f, false)

	*dst = append(*dst, Edge{A: dNode, B: eNode, Kind: Surfing})
	*dst = append(*dst, Edge{A: cNode, B: fNode, Kind: Surfing})
}

// buildExternalBitangentsLocked constructs the external bitangents between
// two circles. External bitangents do not cross the segment between the
// two centres and are defined whenever d > 0.
func (g *Graph) buildExternalBitangentsLocked(ha, hb CircleHandle, a, b Circle, d float64, dst *[]Edge) {
	if d == 0 {
		g.logSkip("coincident centres", ha, hb)
		return
	}

	theta := math.Acos(math.Abs(a.Radius-b.Radius) / d)
	abAngle := geom.AngleTo(a.Center, b.Center)
	baAngle := geom.AngleTo(b.Center, a.Center)

	c := geom.PolarOffset(a.Center, a.Radius, abAngle+theta)
	dPt := geom.PolarOffset(a.Center, a.Radius, abAngle-theta)
	e := geom.PolarOffset(b.Center, b.Radius, (baAngle+math.Pi)-theta)
	f := geom.PolarOffset(b.Center, b.Radius, (baAngle+math.Pi)+theta)

	cNode := g.addNodeLocked(ha, c, false)
	dNode := g.addNodeLocked(ha, dPt, false)
	eNode := g.addNodeLocked(hb, e, false)
	fNode := g.addNodeLocked(hb, f, false)

	*dst = append(*dst, Edge{A: dNode, B: eNode, Kind: Surfing})
	*dst = append(*dst, Edge{A: cNode, B: fNode, Kind: Surfing})
}

// findNodeOnCircleLocked returns the (assumed unique) node anchored to a
// degenerate circle. Caller must hold muGeom.
func (g *Graph) findNodeOnCircleLocked(h CircleHandle) NodeHandle {
	for handle, rec := range g.nodes {
		if rec.node.Circle == h {
			return handle
		}
	}

	return 0
}
