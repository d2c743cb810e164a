// Package dijkstra defines the sentinel errors, options and result types
// for the point-to-point shortest-path engine.
//
// Options:
//
//	– Direction:  Bidirectional (default) explores leaving AND entering edges;
//	              Forward follows stored edge direction only.
//	– MaxCost:    optional cap; search entries costlier than the cap are never queued.
//
// Errors (sentinel):
//
//	– ErrNoSuchElement  umbrella for every "no answer" outcome (errors.Is target).
//	– ErrUnknownLabel   start or end is not a node (wraps ErrNoSuchElement).
//	– ErrNoPathFound    both nodes exist but are not connected (wraps ErrNoSuchElement).
//	– ErrNilGraph       the traversal view is nil.
//	– ErrBadMaxCost     MaxCost < 0 or NaN (option constructor panics).
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the engine.
var (
	// ErrNoSuchElement is satisfied (errors.Is) by every query failure that
	// means "there is no such path".
	ErrNoSuchElement = errors.New("dijkstra: no such element")

	// ErrUnknownLabel indicates that start or end is not a node of the graph.
	ErrUnknownLabel = fmt.Errorf("%w: label not found in graph", ErrNoSuchElement)

	// ErrNoPathFound indicates that start and end exist but no edge sequence connects them.
	ErrNoPathFound = fmt.Errorf("%w: no path found", ErrNoSuchElement)

	// ErrNilGraph indicates that a nil traversal view was supplied.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxCost indicates that MaxCost was set to a negative or NaN value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// Direction selects which stored edges the search may walk.
type Direction int

const (
	// Bidirectional walks every edge in both directions: leaving edges
	// forward and entering edges backward.
	Bidirectional Direction = iota

	// Forward walks leaving edges only.
	Forward
)

// String returns the configuration name of the direction.
func (d Direction) String() string {
	switch d {
	case Bidirectional:
		return "bidirectional"
	case Forward:
		return "forward"
	default:
		return "unknown"
	}
}

// Options configures the engine.
//
// Direction – which stored edges are walked. Default Bidirectional.
// MaxCost   – entries with cumulative cost > MaxCost are not queued.
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	Direction Direction
	MaxCost   float64
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithDirection sets the edge direction policy.
func WithDirection(d Direction) Option {
	return func(o *Options) {
		o.Direction = d
	}
}

// WithMaxCost caps the cumulative cost the search will consider.
// A target beyond the cap is reported as ErrNoPathFound.
// Negative or NaN values panic with ErrBadMaxCost.
func WithMaxCost(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxCost.Error())
	}

	return func(o *Options) {
		o.MaxCost = max
	}
}

// DefaultOptions returns bidirectional traversal with no cost cap.
func DefaultOptions() Options {
	return Options{
		Direction: Bidirectional,
		MaxCost:   math.Inf(1),
	}
}

// Path is the answer to a shortest-path query.
type Path[L comparable] struct {
	// Labels lists every node on the path, start first and end last.
	Labels []L

	// Cost is the summed edge weight along Labels.
	Cost float64
}

// Hops returns the number of edges on the path.
func (p *Path[L]) Hops() int {
	if len(p.Labels) == 0 {
		return 0
	}

	return len(p.Labels) - 1
}

// Intermediaries returns the number of nodes strictly between start and end.
// It is 0 for a single-node path and for directly adjacent endpoints.
func (p *Path[L]) Intermediaries() int {
	if len(p.Labels) < 2 {
		return 0
	}

	return len(p.Labels) - 2
}
