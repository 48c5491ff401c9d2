package tangent

import (
	"sort"

	"github.com/cttdev/mags/geom"
)

// installHuggingEdges connects, for every non-degenerate circle, each
// surviving (live) node to its angular neighbours around the circle's
// centre: it gathers the live nodes per circle, sorts them by angle, and
// connects each consecutive pair (plus the wrap-around pair) with one
// hugging edge. Degenerate circles are skipped.
func (g *Graph) installHuggingEdges(live map[NodeHandle]struct{}, circles map[CircleHandle]Circle) []Edge {
	g.muGeom.RLock()
	byCircle := make(map[CircleHandle][]NodeHandle)
	for h := range live {
		rec, ok := g.nodes[h]
		if !ok {
			continue
		}
		if c, ok := circles[rec.node.Circle]; ok && c.Degenerate() {
			continue
		}
		byCircle[rec.node.Circle] = append(byCircle[rec.node.Circle], h)
	}
	positions := make(map[NodeHandle]geom.Point, len(live))
	for h := range live {
		if rec, ok := g.nodes[h]; ok {
			positions[h] = rec.node.Position
		}
	}
	g.muGeom.RUnlock()

	var hugging []Edge
	for circleH, nodeHandles := range byCircle {
		center := circles[circleH].Center
		sort.Slice(nodeHandles, func(i, j int) bool {
			ai := geom.Normalize2Pi(geom.AngleTo(center, positions[nodeHandles[i]]))
			aj := geom.Normalize2Pi(geom.AngleTo(center, positions[nodeHandles[j]]))
			if ai != aj {
				return ai < aj
			}
			return nodeHandles[i] < nodeHandles[j]
		})

		n := len(nodeHandles)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			a := nodeHandles[i]
			b := nodeHandles[(i+1)%n]
			hugging = append(hugging, Edge{A: a, B: b, Kind: Hugging})
		}
	}

	return hugging
}
