package tsp

import (
	"context"
	"errors"
	"strings"
)

// Sentinel errors. Match them with errors.Is.
var (
	// ErrDimensionMismatch is returned for a nil or empty matrix, or a tour
	// whose shape does not fit the matrix.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNonSquare is returned when the cost matrix is not n×n.
	ErrNonSquare = errors.New("tsp: cost matrix is not square")

	// ErrNegativeWeight is returned for a negative or NaN cost.
	ErrNegativeWeight = errors.New("tsp: negative or NaN cost")

	// ErrFiniteDiagonal is returned when a diagonal entry is not +Inf.
	ErrFiniteDiagonal = errors.New("tsp: diagonal entry must be +Inf")

	// ErrInvalidTour is returned by ValidateTour for a tour that is not a
	// closed Hamiltonian cycle through city 0.
	ErrInvalidTour = errors.New("tsp: invalid tour")

	// ErrMissingEdge is returned by TourCost when a tour uses a +Inf edge.
	ErrMissingEdge = errors.New("tsp: tour uses a missing edge")

	// ErrCanceled is returned when the context passed via WithContext is
	// done before the exact search completes. It wraps ctx.Err().
	ErrCanceled = errors.New("tsp: search canceled")
)

// Method selects the algorithm run by Solve. It is a closed, two-way choice.
type Method int

const (
	// MethodExact runs Little's branch-and-bound.
	MethodExact Method = iota
	// MethodGreedy runs the nearest-neighbor heuristic.
	MethodGreedy
)

// String returns the canonical method name.
func (m Method) String() string {
	if m == MethodExact {
		return "exact"
	}

	return "greedy"
}

// ParseMethod maps "exact" (or its alias "little") to MethodExact.
// Every other name selects MethodGreedy.
func ParseMethod(s string) Method {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact", "little":
		return MethodExact
	default:
		return MethodGreedy
	}
}

// Result holds the outcome of a TSP solver.
type Result struct {
	// Tour is the sequence of city indices, starting and ending at 0.
	// For n cities, len(Tour) == n+1. Empty when no tour exists.
	Tour []int

	// Cost is the total cost of the cycle, or +Inf when no tour exists.
	Cost float64

	// Stats describes the work done by the exact search (zero for greedy).
	Stats Stats
}

// Stats counts search events of one Little invocation.
type Stats struct {
	Nodes        int // child nodes generated (reduced and bounded)
	Pruned       int // children whose bound did not beat the incumbent
	Completed    int // complete tours closed back to city 0
	Improvements int // strict incumbent improvements
}

// NodeEvent describes one child node considered by the exact search.
type NodeEvent struct {
	Depth     int     // cities on the path before the move
	From, To  int     // the edge being tried
	Reduction float64 // reduction amount of the child matrix
	Cost      float64 // accumulated cost after the move
	Bound     float64 // Cost + remaining-cities estimate
	Pruned    bool    // true when the child is not explored
}

// Options configures a solve. Build it with DefaultOptions and Option funcs.
type Options struct {
	// Ctx allows cancelling a long exact search.
	Ctx context.Context

	// OnNode is called for every child node after its bound is computed.
	OnNode func(ev NodeEvent)

	// OnImprove is called whenever the incumbent strictly improves.
	// cost is the accumulated (reduced) search cost; tour must not be retained
	// past the call.
	OnImprove func(cost float64, tour []int)
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a background context and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnNode:    func(NodeEvent) {},
		OnImprove: func(float64, []int) {},
	}
}

// WithContext sets a context that can cancel the exact search.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnNode registers a callback run for every generated child node.
func WithOnNode(fn func(ev NodeEvent)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnNode = fn
		}
	}
}

// WithOnImprove registers a callback run on every incumbent improvement.
func WithOnImprove(fn func(cost float64, tour []int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnImprove = fn
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
