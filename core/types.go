// Package core defines the central Graph, node and Edge types, the Weight
// constraint, and the functional options that configure a Graph.
//
// This file declares sentinel errors, Weight, Edge, DuplicatePolicy,
// GraphOption, Graph and the NewGraph constructor.
//
// Errors:
//
//	ErrMissingEndpoint - edge endpoint label is not present in the graph.
//	ErrNegativeWeight  - negative edge weight supplied to InsertEdge.
//	ErrNaNWeight       - NaN edge weight supplied to InsertEdge.
package core

import (
	"errors"
	"sync"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for core graph operations.
var (
	// ErrMissingEndpoint indicates InsertEdge referenced a label that was never inserted as a node.
	ErrMissingEndpoint = errors.New("core: edge endpoint not found")

	// ErrNegativeWeight indicates a negative weight was supplied to InsertEdge.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrNaNWeight indicates a NaN weight was supplied to InsertEdge.
	ErrNaNWeight = errors.New("core: NaN edge weight")
)

// Weight is the set of numeric types accepted as edge weights.
// Weights are compared and accumulated as float64 by search algorithms.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Edge is a directed, weighted connection From → To.
//
// Values returned by Graph accessors are copies; mutating them does not
// change the stored edge.
type Edge[L comparable, W Weight] struct {
	// From is the source (predecessor) label.
	From L

	// To is the target (successor) label.
	To L

	// Weight is the non-negative cost of traversing the edge.
	Weight W
}

// node is a graph vertex with its ordered incident edges.
type node[L comparable, W Weight] struct {
	label    L
	leaving  []*Edge[L, W] // edges where this node is From
	entering []*Edge[L, W] // edges where this node is To
}

// DuplicatePolicy decides what InsertEdge does with an already present (from,to) pair.
type DuplicatePolicy int

const (
	// DuplicateOverwrite updates the weight of the existing edge; EdgeCount is unchanged.
	DuplicateOverwrite DuplicatePolicy = iota

	// DuplicateParallel stores a second, parallel edge; EdgeCount grows by one.
	DuplicateParallel
)

// String returns the configuration name of the policy.
func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicateOverwrite:
		return "overwrite"
	case DuplicateParallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(o *graphOptions)

type graphOptions struct {
	policy DuplicatePolicy
}

// WithParallelEdges keeps every inserted edge, including repeats of the same ordered pair.
func WithParallelEdges() GraphOption {
	return func(o *graphOptions) { o.policy = DuplicateParallel }
}

// WithDuplicatePolicy sets the duplicate-edge policy explicitly.
func WithDuplicatePolicy(p DuplicatePolicy) GraphOption {
	return func(o *graphOptions) { o.policy = p }
}

// Graph is the in-memory labeled graph store.
//
// mu guards every field below it. nodeCount and edgeCount are maintained on
// insertion so counting never scans.
type Graph[L comparable, W Weight] struct {
	mu sync.RWMutex

	policy DuplicatePolicy

	nodes map[L]*node[L, W] // label → node
	order []L               // labels in insertion order
	edges []*Edge[L, W]     // edges in insertion order

	nodeCount int
	edgeCount int
}

// NewGraph creates an empty Graph. By default duplicate (from,to) inserts
// overwrite the stored weight.
// Complexity: O(1)
func NewGraph[L comparable, W Weight](opts ...GraphOption) *Graph[L, W] {
	cfg := graphOptions{policy: DuplicateOverwrite}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[L, W]{
		policy: cfg.policy,
		nodes:  make(map[L]*node[L, W]),
	}
}

// Policy reports the duplicate-edge policy fixed at construction.
func (g *Graph[L, W]) Policy() DuplicatePolicy {
	return g.policy
}
