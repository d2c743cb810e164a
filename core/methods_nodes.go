// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns labels in insertion order.
//
// Concurrency:
//   - Writes under g.mu write lock, reads under g.mu read lock.
package core

// InsertNode adds a node for label if it is not present yet.
//
// Implementation:
//   - Stage 1: Acquire the write lock.
//   - Stage 2: Return false if the label is already known (idempotent no-op).
//   - Stage 3: Allocate the node, record insertion order, bump nodeCount.
//
// Returns:
//   - bool: true if a new node was created.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[L, W]) InsertNode(label L) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[label]; exists {
		return false
	}

	g.nodes[label] = &node[L, W]{label: label}
	g.order = append(g.order, label)
	g.nodeCount++

	return true
}

// HasNode reports whether label is a node of the graph.
// Complexity: O(1).
func (g *Graph[L, W]) HasNode(label L) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[label]

	return ok
}

// NodeCount returns the number of nodes. It reads a running counter.
// Complexity: O(1).
func (g *Graph[L, W]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodeCount
}

// Nodes returns all labels in insertion order. The slice is a copy.
// Complexity: O(V).
func (g *Graph[L, W]) Nodes() []L {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]L, len(g.order))
	copy(out, g.order)

	return out
}
