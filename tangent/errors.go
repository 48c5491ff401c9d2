package tangent

import "errors"

// Sentinel errors for the tangent package.
//
// ErrUnpreparedGraph and ErrInvalidHandle are contract violations: functions
// that can raise them panic with the sentinel rather than return it (see
// doc.go). GeometricDegeneracy has no sentinel at all — per spec it is
// policy to skip the offending pair silently and keep building.
var (
	// ErrUnpreparedGraph indicates Neighbours (or astar.Search, which calls
	// it) was invoked before Prepare.
	ErrUnpreparedGraph = errors.New("tangent: graph used before Prepare")

	// ErrInvalidHandle indicates a NodeHandle or CircleHandle that does not
	// belong to this graph was passed to one of its methods.
	ErrInvalidHandle = errors.New("tangent: handle does not belong to this graph")
)
