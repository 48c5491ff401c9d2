package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a position in the plane. It is a plain alias for r2.Vec so that
// callers can use gonum's vector arithmetic (Add, Sub, Scale, ...) directly
// alongside the operations defined here.
type Point = r2.Vec

// Dist returns the Euclidean distance between a and b.
// Dist(a, a) is 0; callers divide by it at their own risk.
func Dist(a, b Point) float64 {
	return r2.Norm(b.Sub(a))
}

// Length returns the Euclidean norm of the vector v.
func Length(v Point) float64 {
	return r2.Norm(v)
}

// AngleTo returns the signed bearing from a to b: atan2(b.Y-a.Y, b.X-a.X),
// in (-π, π].
func AngleTo(a, b Point) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// PolarOffset returns the point at distance r from origin along bearing
// theta (radians, measured the same way AngleTo measures it).
func PolarOffset(origin Point, r, theta float64) Point {
	return Point{
		X: origin.X + r*math.Cos(theta),
		Y: origin.Y + r*math.Sin(theta),
	}
}

// CrossMag returns the non-negative magnitude of the 2-D cross product of
// u and v — the area of the parallelogram they span.
func CrossMag(u, v Point) float64 {
	return math.Abs(u.Cross(v))
}

// Dot returns the standard inner product of u and v.
func Dot(u, v Point) float64 {
	return u.Dot(v)
}

// Normalize2Pi reduces theta modulo 2π into the half-open range [0, 2π).
func Normalize2Pi(theta float64) float64 {
	const twoPi = 2 * math.Pi
	theta = math.Mod(theta, twoPi)
	if theta < 0 {
		theta += twoPi
	}

	return theta
}

// ShortestAngleDelta returns the signed delta from a to b reduced into
// (-π, π], the short way around the circle. Used by hugging-edge cost
// computation so that angle wraparound near 0/2π never inflates an arc
// length (see astar package, hugging edge cost).
func ShortestAngleDelta(a, b float64) float64 {
	const (
		twoPi = 2 * math.Pi
		pi    = math.Pi
	)
	delta := math.Mod(b-a, twoPi)
	if delta > pi {
		delta -= twoPi
	} else if delta <= -pi {
		delta += twoPi
	}

	return delta
}
