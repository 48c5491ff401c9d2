package tangent

import (
	"log"

	"github.com/cttdev/mags/geom"
)

// segmentIntersectsCircle reports whether the segment p1-p2 comes within
// c's radius of c's centre. p1, p2 are the segment endpoints; c is the
// candidate obstacle. eps shrinks c's effective radius so that tangent
// points lying exactly on c's boundary are not rejected as intersections
// of their own anchor circle.
func segmentIntersectsCircle(p1, p2 geom.Point, c Circle, eps float64) bool {
	u := p2.Sub(p1)
	v := c.Center.Sub(p1)
	w := c.Center.Sub(p2)

	if u.X == 0 && u.Y == 0 {
		// Degenerate zero-length edge: the point is assumed to already lie
		// on some other circle and cannot intersect this one.
		return false
	}

	var d float64
	switch {
	case geom.Dot(v, u) < 0:
		d = geom.Dist(p1, c.Center)
	case geom.Dot(w, u.Scale(-1)) < 0:
		d = geom.Dist(p2, c.Center)
	default:
		d = geom.CrossMag(u, v) / geom.Length(u)
	}

	effectiveRadius := c.Radius - eps
	if effectiveRadius < 0 {
		effectiveRadius = 0
	}

	return d <= effectiveRadius
}

// logPruneSummary reports how many edges a pruning pass kept, for WithVerbose.
func logPruneSummary(total, kept int) {
	log.Printf("tangent: pruned %d/%d edges", total-kept, total)
}
