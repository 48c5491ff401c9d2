package plan

import (
	"github.com/cttdev/mags/astar"
	"github.com/cttdev/mags/tangent"
)

// options collects the subset of tangent.GraphOption / astar.Option knobs
// Route exposes, translated at call time into the two packages' own option
// types.
type options struct {
	graphOpts []tangent.GraphOption
	astarOpts []astar.Option
}

// Option configures Route.
type Option func(*options)

// WithClearance inflates every obstacle's radius by margin before the
// graph is built. See tangent.WithClearance.
func WithClearance(margin float64) Option {
	return func(o *options) { o.graphOpts = append(o.graphOpts, tangent.WithClearance(margin)) }
}

// WithClearanceEpsilon sets the tangency tolerance Prepare's pruning pass
// uses. See tangent.WithClearanceEpsilon.
func WithClearanceEpsilon(eps float64) Option {
	return func(o *options) {
		o.graphOpts = append(o.graphOpts, tangent.WithClearanceEpsilon(eps))
	}
}

// WithWorkers bounds the worker pool Prepare uses to prune edges. See
// tangent.WithWorkers.
func WithWorkers(n int) Option {
	return func(o *options) { o.graphOpts = append(o.graphOpts, tangent.WithWorkers(n)) }
}

// WithVerbose enables tangent's diagnostic skip/prune logging.
func WithVerbose() Option {
	return func(o *options) { o.graphOpts = append(o.graphOpts, tangent.WithVerbose()) }
}

// WithMaxExpansions bounds the number of nodes astar.Search will pop off
// its frontier. See astar.WithMaxExpansions.
func WithMaxExpansions(n int64) Option {
	return func(o *options) { o.astarOpts = append(o.astarOpts, astar.WithMaxExpansions(n)) }
}

// WithoutReachabilityPrecheck disables astar.Search's BFS short-circuit.
func WithoutReachabilityPrecheck() Option {
	return func(o *options) {
		o.astarOpts = append(o.astarOpts, astar.WithoutReachabilityPrecheck())
	}
}
