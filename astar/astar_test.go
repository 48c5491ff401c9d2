package astar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cttdev/mags/astar"
	"github.com/cttdev/mags/geom"
	"github.com/cttdev/mags/tangent"
)

// TestEmptyField verifies that with no obstacles, start and goal connect
// by a direct segment.
func TestEmptyField(t *testing.T) {
	g := tangent.NewGraph(nil)
	start := g.AddPoint(geom.Point{X: 0, Y: 0})
	goal := g.AddPoint(geom.Point{X: 10, Y: 0})
	g.Prepare()

	path, err := astar.Search(g, start, goal)
	require.NoError(t, err)
	require.Equal(t, astar.Path{start, goal}, path)
}

// TestStartEqualsGoal verifies the documented boundary behaviour: a
// trivial single-node path, cost-free.
func TestStartEqualsGoal(t *testing.T) {
	g := tangent.NewGraph(nil)
	start := g.AddPoint(geom.Point{X: 3, Y: 3})
	g.Prepare()

	path, err := astar.Search(g, start, start)
	require.NoError(t, err)
	assert.Equal(t, astar.Path{start}, path)
}

// TestSingleObstacleInTheWay verifies that a single obstacle between start
// and goal produces a 4-node path with exactly one hugging edge, clearing
// the obstacle.
func TestSingleObstacleInTheWay(t *testing.T) {
	obstacle := tangent.Circle{Center: geom.Point{X: 5, Y: 0}, Radius: 1}
	g := tangent.NewGraph([]tangent.Circle{obstacle})
	start := g.AddPoint(geom.Point{X: 0, Y: 0})
	goal := g.AddPoint(geom.Point{X: 10, Y: 0})
	g.Prepare()

	path, err := astar.Search(g, start, goal)
	require.NoError(t, err)
	require.Equal(t, 4, len(path), "expected start, two tangent points, goal")

	huggingCount := 0
	for i := 0; i < len(path)-1; i++ {
		nodeA, _ := g.NodeAt(path[i])
		nodeB, _ := g.NodeAt(path[i+1])
		if nodeA.Circle == nodeB.Circle {
			c, _ := g.Circle(nodeA.Circle)
			if !c.Degenerate() {
				huggingCount++
			}
		}
	}
	assert.Equal(t, 1, huggingCount)

	assertPathClearsObstacle(t, g, path, obstacle, 1e-6)
}

// TestTwoDisjointCircles verifies that a path around two disjoint
// obstacles stays clear of both.
func TestTwoDisjointCircles(t *testing.T) {
	obstacles := []tangent.Circle{
		{Center: geom.Point{X: 3, Y: 0}, Radius: 1},
		{Center: geom.Point{X: 7, Y: 0}, Radius: 1},
	}
	g := tangent.NewGraph(obstacles)
	start := g.AddPoint(geom.Point{X: 0, Y: 0})
	goal := g.AddPoint(geom.Point{X: 10, Y: 0})
	g.Prepare()

	path, err := astar.Search(g, start, goal)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(path), 2)

	huggingArcs := 0
	for i := 0; i < len(path)-1; i++ {
		nodeA, _ := g.NodeAt(path[i])
		nodeB, _ := g.NodeAt(path[i+1])
		if nodeA.Circle == nodeB.Circle {
			if c, _ := g.Circle(nodeA.Circle); !c.Degenerate() {
				huggingArcs++
			}
		}
	}
	assert.LessOrEqual(t, huggingArcs, 2)

	for _, obs := range obstacles {
		assertPathClearsObstacle(t, g, path, obs, 1e-6)
	}
}

// TestGridObstacleField verifies that, against an 8x8 grid of small
// circles, the search terminates with an obstacle-free path.
func TestGridObstacleField(t *testing.T) {
	var obstacles []tangent.Circle
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			obstacles = append(obstacles, tangent.Circle{
				Center: geom.Point{X: float64(i), Y: float64(j)},
				Radius: 0.1,
			})
		}
	}
	g := tangent.NewGraph(obstacles)
	start := g.AddPoint(geom.Point{X: 0.5, Y: 0.5})
	goal := g.AddPoint(geom.Point{X: 6.5, Y: 1.0})
	g.Prepare()

	path, err := astar.Search(g, start, goal)
	require.NoError(t, err)
	require.NotEmpty(t, path)

	for _, obs := range obstacles {
		assertPathClearsObstacle(t, g, path, obs, 1e-6)
	}

	straightLine := geom.Dist(geom.Point{X: 0.5, Y: 0.5}, geom.Point{X: 6.5, Y: 1.0})
	totalCost := pathCost(t, g, path)
	assert.LessOrEqual(t, totalCost, straightLine+float64(len(path))*2+10)
}

// TestNoPath verifies that a ring of mutually overlapping circles
// enclosing the start reports ErrNoPath.
func TestNoPath(t *testing.T) {
	var ring []tangent.Circle
	const n = 8
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / n
		ring = append(ring, tangent.Circle{
			Center: geom.Point{X: 3 * math.Cos(theta), Y: 3 * math.Sin(theta)},
			Radius: 1.5, // overlapping neighbours, radius > ring spacing/2
		})
	}
	g := tangent.NewGraph(ring)
	start := g.AddPoint(geom.Point{X: 0, Y: 0})
	goal := g.AddPoint(geom.Point{X: 100, Y: 100})
	g.Prepare()

	_, err := astar.Search(g, start, goal)
	assert.ErrorIs(t, err, astar.ErrNoPath)
}

// TestDeterminism verifies that repeated runs on the same graph return the
// identical path.
func TestDeterminism(t *testing.T) {
	obstacles := []tangent.Circle{{Center: geom.Point{X: 5, Y: 0}, Radius: 1}}
	g := tangent.NewGraph(obstacles)
	start := g.AddPoint(geom.Point{X: 0, Y: 0})
	goal := g.AddPoint(geom.Point{X: 10, Y: 0})
	g.Prepare()

	first, err := astar.Search(g, start, goal)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := astar.Search(g, start, goal)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func pathCost(t *testing.T, g *tangent.Graph, path astar.Path) float64 {
	t.Helper()
	total := 0.0
	for i := 0; i < len(path)-1; i++ {
		a, _ := g.NodeAt(path[i])
		b, _ := g.NodeAt(path[i+1])
		if a.Circle == b.Circle {
			if c, _ := g.Circle(a.Circle); !c.Degenerate() {
				angleA := geom.AngleTo(c.Center, a.Position)
				angleB := geom.AngleTo(c.Center, b.Position)
				total += 1 + absf(c.Radius*geom.ShortestAngleDelta(angleA, angleB))
				continue
			}
		}
		total += 1 + geom.Dist(a.Position, b.Position)
	}

	return total
}

func assertPathClearsObstacle(t *testing.T, g *tangent.Graph, path astar.Path, obstacle tangent.Circle, eps float64) {
	t.Helper()
	for i := 0; i < len(path)-1; i++ {
		a, _ := g.NodeAt(path[i])
		b, _ := g.NodeAt(path[i+1])
		if a.Circle == b.Circle {
			continue // hugging edge always rides the obstacle's own boundary
		}
		d := distPointToSegment(obstacle.Center, a.Position, b.Position)
		assert.GreaterOrEqual(t, d, obstacle.Radius-eps)
	}
}

func distPointToSegment(c, p1, p2 geom.Point) float64 {
	u := p2.Sub(p1)
	if u.X == 0 && u.Y == 0 {
		return geom.Dist(c, p1)
	}
	v := c.Sub(p1)
	w := c.Sub(p2)
	if geom.Dot(v, u) < 0 {
		return geom.Dist(c, p1)
	}
	if geom.Dot(w, u.Scale(-1)) < 0 {
		return geom.Dist(c, p2)
	}

	return geom.CrossMag(u, v) / geom.Length(u)
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
