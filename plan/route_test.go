package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cttdev/mags/astar"
	"github.com/cttdev/mags/geom"
	"github.com/cttdev/mags/plan"
	"github.com/cttdev/mags/tangent"
)

func TestRouteEmptyField(t *testing.T) {
	path, err := plan.Route(nil, geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0})
	require.NoError(t, err)
	assert.Len(t, path, 2)
}

func TestRouteAroundObstacle(t *testing.T) {
	obstacles := []tangent.Circle{{Center: geom.Point{X: 5, Y: 0}, Radius: 1}}

	path, err := plan.Route(obstacles, geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0})
	require.NoError(t, err)
	assert.Len(t, path, 4)
}

func TestRouteNoPath(t *testing.T) {
	obstacles := []tangent.Circle{{Center: geom.Point{X: 0, Y: 0}, Radius: 1000}}

	_, err := plan.Route(obstacles, geom.Point{X: 0, Y: 0}, geom.Point{X: 2000, Y: 2000})
	assert.ErrorIs(t, err, astar.ErrNoPath)
}

func TestRouteWithClearance(t *testing.T) {
	obstacles := []tangent.Circle{{Center: geom.Point{X: 5, Y: 0}, Radius: 1}}

	withoutMargin, err := plan.Route(obstacles, geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0})
	require.NoError(t, err)

	withMargin, err := plan.Route(obstacles, geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0}, plan.WithClearance(0.5))
	require.NoError(t, err)

	assert.Equal(t, len(withoutMargin), len(withMargin))
}

func TestRouteStartEqualsGoal(t *testing.T) {
	p := geom.Point{X: 3, Y: 4}
	path, err := plan.Route(nil, p, p)
	require.NoError(t, err)
	assert.Len(t, path, 1)
}
