// Package core provides the in-memory Graph store used by socialpath: a
// generic, labeled, weighted graph with directed edge storage and a
// traversal view for search algorithms.
//
// The Graph G = (V,E) is parameterized by:
//
//   - L: the label type (any comparable type; usually string).
//   - W: the edge weight type (any integer or floating-point type).
//
// Storage model:
//
//   - nodes[label] holds a *node with two ordered edge slices:
//     leaving (node is the source) and entering (node is the target).
//   - edges holds every *Edge in insertion order; both endpoint nodes keep
//     non-owning references to the same *Edge.
//   - nodeCount / edgeCount are running counters, so NodeCount() and
//     EdgeCount() are O(1).
//
// Configuration Options (GraphOption):
//
//	– WithParallelEdges()
//	    Every InsertEdge creates a new edge, even for an existing (from,to) pair.
//	    Without it (DuplicateOverwrite, the default) a repeated pair updates
//	    the stored weight and EdgeCount is unchanged.
//
// Core Methods:
//
//	// Node lifecycle
//	InsertNode(label L) bool                    // O(1), idempotent
//	HasNode(label L) bool                       // O(1)
//	NodeCount() int                             // O(1)
//	Nodes() []L                                 // O(V), insertion order
//
//	// Edge lifecycle
//	InsertEdge(from, to L, weight W) error      // O(1) parallel, O(deg(from)) overwrite
//	EdgeCount() int                             // O(1)
//	Edges() []Edge[L, W]                        // O(E), insertion order
//	Weight(from, to L) (W, bool)                // O(deg(from))
//
//	// Traversal view
//	Leaving(label L) []Edge[L, W]               // O(deg)
//	Entering(label L) []Edge[L, W]              // O(deg)
//
// Errors:
//
//	ErrMissingEndpoint – InsertEdge referenced a label that is not a node.
//	ErrNegativeWeight  – InsertEdge with weight < 0.
//
// Concurrency:
//
//	A single sync.RWMutex guards the store. Inserts take the write lock,
//	queries the read lock, and traversal accessors return copies so a
//	search never observes a slice that is being appended to.
package core
