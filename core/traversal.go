// SPDX-License-Identifier: MIT
//
// File: traversal.go
// Role: Read-only traversal view consumed by search algorithms.
// Policy:
//   - Search code depends on Traversal, never on Graph internals.
//   - Accessors return copies; callers may keep them after the lock is released.

package core

// Traversal is the capability a shortest-path search needs from a graph:
// membership plus the ordered leaving and entering edges of every node.
//
// *Graph implements Traversal.
type Traversal[L comparable, W Weight] interface {
	// HasNode reports whether label is a node.
	HasNode(label L) bool

	// Leaving returns the edges whose From is label, in insertion order.
	Leaving(label L) []Edge[L, W]

	// Entering returns the edges whose To is label, in insertion order.
	Entering(label L) []Edge[L, W]
}

var _ Traversal[string, int] = (*Graph[string, int])(nil)

// Leaving returns copies of the edges where label is the source.
// Unknown labels yield nil.
// Complexity: O(deg⁺(label)).
func (g *Graph[L, W]) Leaving(label L) []Edge[L, W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[label]
	if !ok {
		return nil
	}

	return copyEdges(n.leaving)
}

// Entering returns copies of the edges where label is the target.
// Unknown labels yield nil.
// Complexity: O(deg⁻(label)).
func (g *Graph[L, W]) Entering(label L) []Edge[L, W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[label]
	if !ok {
		return nil
	}

	return copyEdges(n.entering)
}
