// Package dotload defines the sentinel errors, options and result types of
// the edge-list loader.
//
// Errors (sentinel):
//
//	– ErrSourceUnavailable  the file cannot be opened (wraps the fs error).
//	– ErrNilSink            no graph was supplied.
//	– ErrBadWeight          WithWeight received a negative or NaN value (panics),
//	                        or the weight does not fit the sink's weight type.
package dotload

import (
	"errors"
	"math"

	"github.com/katalvlaran/socialpath/core"
)

// Sentinel errors returned by the loader.
var (
	// ErrSourceUnavailable indicates that the backing file could not be opened.
	ErrSourceUnavailable = errors.New("dotload: source unavailable")

	// ErrNilSink indicates that a nil graph was passed to Read or Load.
	ErrNilSink = errors.New("dotload: sink is nil")

	// ErrBadWeight indicates a negative or NaN default weight, or one the
	// sink's weight type cannot represent exactly.
	ErrBadWeight = errors.New("dotload: weight must be non-negative")
)

// DefaultWeight is the weight given to every loaded edge unless WithWeight overrides it.
const DefaultWeight = 1

// Sink receives the nodes and edges found in the input. *core.Graph[string, W]
// implements Sink.
type Sink[W core.Weight] interface {
	InsertNode(label string) bool
	InsertEdge(from, to string, weight W) error
}

// LineKind classifies one input line.
type LineKind int

const (
	// LineIgnored is blank, a comment, a graph header, a brace, or has no edge operator.
	LineIgnored LineKind = iota

	// LineEdge holds two or more labels joined by "--".
	LineEdge

	// LineMalformed has an edge operator but an empty label.
	LineMalformed
)

// Options configures the loader.
type Options struct {
	// Weight is assigned to every edge. Converted to the sink's weight type.
	Weight float64
}

// Option represents a functional option for configuring the loader.
type Option func(*Options)

// WithWeight overrides DefaultWeight. Negative or NaN values panic with ErrBadWeight.
// The value is not truncated: a fractional weight loaded into an integer
// sink makes Read return ErrBadWeight.
func WithWeight(w float64) Option {
	if w < 0 || math.IsNaN(w) {
		panic(ErrBadWeight.Error())
	}

	return func(o *Options) {
		o.Weight = w
	}
}

// DefaultOptions returns Options with Weight = DefaultWeight.
func DefaultOptions() Options {
	return Options{Weight: DefaultWeight}
}

// Result summarizes one load.
type Result struct {
	Lines     int // lines read
	Edges     int // InsertEdge calls that succeeded
	Ignored   int // LineIgnored lines
	Malformed int // LineMalformed lines
}
