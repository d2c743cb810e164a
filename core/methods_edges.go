// File: methods_edges.go
// Role: Edge lifecycle & queries: InsertEdge/EdgeCount/Edges/Weight.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Under DuplicateOverwrite an updated edge keeps its original position.
// Concurrency:
//   - Mutations under g.mu write lock.
//   - Read queries under g.mu read lock.

package core

import "fmt"

// InsertEdge stores a directed edge from → to with the given weight.
//
// Steps:
//  1. Reject NaN (ErrNaNWeight) and negative weights (ErrNegativeWeight).
//  2. Lock g.mu; resolve both endpoints (ErrMissingEndpoint, wrapped with the label).
//  3. Under DuplicateOverwrite, if from already has a leaving edge to `to`,
//     update its weight and return without touching edgeCount.
//  4. Otherwise allocate the edge, append it to from.leaving, to.entering
//     and the edge catalog, and bump edgeCount.
//
// Complexity: O(1) amortized for DuplicateParallel, O(deg(from)) for DuplicateOverwrite.
func (g *Graph[L, W]) InsertEdge(from, to L, weight W) error {
	if weight != weight {
		return fmt.Errorf("%w: %v→%v", ErrNaNWeight, from, to)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %v→%v weight=%v", ErrNegativeWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	src, ok := g.nodes[from]
	if !ok {
		return fmt.Errorf("%w: %v", ErrMissingEndpoint, from)
	}
	dst, ok := g.nodes[to]
	if !ok {
		return fmt.Errorf("%w: %v", ErrMissingEndpoint, to)
	}

	if g.policy == DuplicateOverwrite {
		if e := findLeaving(src, to); e != nil {
			e.Weight = weight
			return nil
		}
	}

	e := &Edge[L, W]{From: from, To: to, Weight: weight}
	src.leaving = append(src.leaving, e)
	dst.entering = append(dst.entering, e)
	g.edges = append(g.edges, e)
	g.edgeCount++

	return nil
}

// EdgeCount returns the number of stored edges. It reads a running counter.
// Complexity: O(1).
func (g *Graph[L, W]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E).
func (g *Graph[L, W]) Edges() []Edge[L, W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return copyEdges(g.edges)
}

// Weight returns the weight of the first stored edge from → to.
// The second result is false when no such edge exists; direction matters.
// Complexity: O(deg(from)).
func (g *Graph[L, W]) Weight(from, to L) (W, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	src, ok := g.nodes[from]
	if !ok {
		var zero W
		return zero, false
	}
	if e := findLeaving(src, to); e != nil {
		return e.Weight, true
	}
	var zero W

	return zero, false
}

// findLeaving returns the first leaving edge of n that targets `to`, or nil.
// Caller must hold g.mu.
func findLeaving[L comparable, W Weight](n *node[L, W], to L) *Edge[L, W] {
	for _, e := range n.leaving {
		if e.To == to {
			return e
		}
	}

	return nil
}

// copyEdges dereferences a slice of stored edges into a fresh value slice.
// Caller must hold g.mu.
func copyEdges[L comparable, W Weight](src []*Edge[L, W]) []Edge[L, W] {
	if len(src) == 0 {
		return nil
	}
	out := make([]Edge[L, W], len(src))
	for i, e := range src {
		out[i] = *e
	}

	return out
}
