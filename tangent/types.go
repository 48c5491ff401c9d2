package tangent

import (
	"runtime"
	"sync"

	"github.com/cttdev/mags/geom"
)

// CircleHandle identifies a Circle owned by a Graph. The zero value never
// refers to a real circle.
type CircleHandle uint64

// NodeHandle identifies a Node owned by a Graph. The zero value never
// refers to a real node.
type NodeHandle uint64

// Circle is an obstacle (or, with Radius == 0, a degenerate point) in the
// plane.
type Circle struct {
	Center geom.Point
	Radius float64
}

// Degenerate reports whether c represents an isolated point rather than a
// true obstacle.
func (c Circle) Degenerate() bool { return c.Radius == 0 }

// Node is a tangent point anchored to a Circle. Position lies on the
// boundary of Circle (within floating-point tolerance), or equals the
// degenerate circle's center when Circle.Radius == 0.
type Node struct {
	Circle   CircleHandle
	Position geom.Point
}

// EdgeKind distinguishes a straight surfing segment from a circular hugging
// arc.
type EdgeKind uint8

const (
	// Surfing edges are straight segments between tangent points on two
	// different circles.
	Surfing EdgeKind = iota
	// Hugging edges are arcs between angularly-adjacent tangent points on
	// the same circle.
	Hugging
)

// String implements fmt.Stringer for diagnostic logging.
func (k EdgeKind) String() string {
	if k == Hugging {
		return "hugging"
	}

	return "surfing"
}

// Edge is an undirected connection between two nodes. For a Hugging edge,
// A and B are anchored to the same circle.
type Edge struct {
	A, B NodeHandle
	Kind EdgeKind
}

// equivalent reports whether e and other connect the same unordered pair of
// nodes.
func (e Edge) equivalent(other Edge) bool {
	return (e.A == other.A && e.B == other.B) || (e.A == other.B && e.B == other.A)
}

// Neighbour pairs an edge incident to some node n with its opposite
// endpoint, as returned by Graph.Neighbours.
type Neighbour struct {
	Other NodeHandle
	Edge  Edge
}

// circleRecord is the graph's internal storage for a Circle plus the
// bookkeeping (transience) ClearPoints needs.
type circleRecord struct {
	circle    Circle
	transient bool
}

// nodeRecord is the graph's internal storage for a Node.
type nodeRecord struct {
	node      Node
	transient bool
}

// graphState tracks the graph's lifecycle:
//
//	Empty -> Built (obstacles only) -> PointsAdded -> Prepared -> Searched
//
// ClearPoints moves Prepared|Searched back to Built. Prepare moves Built or
// PointsAdded to Prepared. Neighbours (and therefore astar.Search) requires
// Prepared or Searched.
type graphState uint8

const (
	stateEmpty graphState = iota
	stateBuilt
	statePointsAdded
	statePrepared
	stateSearched
)

// GraphOptions configures a Graph's behaviour. Use DefaultGraphOptions as a
// base and apply GraphOption functions over it, mirroring the functional-
// options style used throughout this module's sibling packages.
type GraphOptions struct {
	// ClearanceMargin is added to every obstacle's radius at construction
	// time (never to degenerate start/goal points). It models the
	// "clearance radius" glossary term: the moving piece's own footprint
	// plus a safety margin.
	ClearanceMargin float64

	// ClearanceEpsilon is subtracted from an obstacle's radius before the
	// segment-circle intersection test in Prepare, so that legitimate
	// tangent endpoints are not rejected as intersections of their own
	// circle.
	ClearanceEpsilon float64

	// Workers bounds the size of the worker pool Prepare uses to prune
	// surfing edges in parallel. Must be >= 1.
	Workers int

	// Verbose, if set, logs skipped-pair and pruning diagnostics via the
	// standard log package.
	Verbose bool
}

// DefaultGraphOptions returns production-safe defaults: no extra clearance
// margin, a small epsilon tolerance for tangency, one worker per available
// core, and no logging.
func DefaultGraphOptions() GraphOptions {
	return GraphOptions{
		ClearanceMargin:  0,
		ClearanceEpsilon: 1e-9,
		Workers:          runtime.GOMAXPROCS(0),
		Verbose:          false,
	}
}

// GraphOption configures a Graph before construction.
type GraphOption func(*GraphOptions)

// WithClearance inflates every obstacle's radius by margin at construction
// time. Panics if margin < 0.
func WithClearance(margin float64) GraphOption {
	if margin < 0 {
		panic("tangent: WithClearance margin must be non-negative")
	}

	return func(o *GraphOptions) { o.ClearanceMargin = margin }
}

// WithClearanceEpsilon sets the tangency tolerance subtracted from an
// obstacle's radius during pruning. Panics if eps < 0.
func WithClearanceEpsilon(eps float64) GraphOption {
	if eps < 0 {
		panic("tangent: WithClearanceEpsilon must be non-negative")
	}

	return func(o *GraphOptions) { o.ClearanceEpsilon = eps }
}

// WithWorkers bounds Prepare's pruning worker pool. Panics if n < 1.
func WithWorkers(n int) GraphOption {
	if n < 1 {
		panic("tangent: WithWorkers requires n >= 1")
	}

	return func(o *GraphOptions) { o.Workers = n }
}

// WithVerbose enables diagnostic logging of skipped-pair and pruning
// events.
func WithVerbose() GraphOption {
	return func(o *GraphOptions) { o.Verbose = true }
}

// Graph is the tangent-visibility graph: a set of circles, a set of nodes
// keyed by handle, and three edge buckets (permanent obstacle surfing
// edges, transient tangent edges from inserted points, and ephemeral
// hugging edges rebuilt on every Prepare).
//
// muGeom guards circles, nodes, and the handle counters; muEdges guards the
// edge buckets and the adjacency index built by Prepare. The split mirrors
// core.Graph's muVert/muEdgeAdj separation.
type Graph struct {
	muGeom  sync.RWMutex
	muEdges sync.RWMutex

	opts GraphOptions

	nextCircleID uint64
	nextNodeID   uint64

	circles map[CircleHandle]*circleRecord
	nodes   map[NodeHandle]*nodeRecord

	rawSurfing    []Edge // permanent obstacle bitangents, built once in NewGraph
	prunedSurfing []Edge // recomputed by every Prepare call

	transientTangent []Edge // built by AddPoint
	prunedTangent    []Edge // recomputed by every Prepare call

	hugging []Edge // rebuilt by every Prepare call

	transientNodes   []NodeHandle
	transientCircles []CircleHandle

	adjacency map[NodeHandle][]Neighbour

	state           graphState
	degenerateSkips int
}
