package astar

import (
	"math"

	"github.com/cttdev/mags/tangent"
)

// Path is the ordered node sequence from start to goal a successful Search
// returns.
type Path []tangent.NodeHandle

// Options configures Search's behaviour.
type Options struct {
	// MaxExpansions bounds how many nodes Search will pop off the frontier
	// before giving up and returning ErrNoPath, guarding against runaway
	// search on a misconfigured graph. Default is math.MaxInt64 (no cap).
	MaxExpansions int64

	// SkipReachabilityPrecheck disables the cheap BFS connectivity check
	// Search otherwise runs before paying for the priority-queue search.
	// Disable only for benchmarking the heap search in isolation.
	SkipReachabilityPrecheck bool
}

// Option is a functional option for Search, following the style of
// tangent.GraphOption.
type Option func(*Options)

// DefaultOptions returns production-safe defaults: no expansion cap, and
// the reachability precheck enabled.
func DefaultOptions() Options {
	return Options{
		MaxExpansions:            math.MaxInt64,
		SkipReachabilityPrecheck: false,
	}
}

// WithMaxExpansions bounds the number of frontier pops before Search gives
// up. Panics if n < 1.
func WithMaxExpansions(n int64) Option {
	if n < 1 {
		panic("astar: WithMaxExpansions requires n >= 1")
	}

	return func(o *Options) { o.MaxExpansions = n }
}

// WithoutReachabilityPrecheck disables the BFS short-circuit Search
// otherwise runs first.
func WithoutReachabilityPrecheck() Option {
	return func(o *Options) { o.SkipReachabilityPrecheck = true }
}
