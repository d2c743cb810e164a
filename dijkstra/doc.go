// Package dijkstra answers "what is the cheapest way from A to B?" over a
// core.Graph (or anything implementing core.Traversal).
//
// Overview:
//
//   - A min-heap of search entries, each carrying a label, its cumulative
//     cost from start and a link to the previous hop.
//   - A cost ledger label → best known cost; only strict improvements are queued.
//   - The first time end is popped, the predecessor chain is the answer.
//
// Edge direction:
//
//   - Bidirectional (default): an edge X→Y can be walked X→Y (it leaves X)
//     and Y→X (it enters Y). Social graphs loaded from undirected edge lists
//     are stored with one directed edge per pair, so this is what makes
//     "A -- B" reachable from both sides.
//   - Forward: only leaving edges are walked.
//
// API reference:
//
//	func New[L, W](t core.Traversal[L, W], opts ...Option) (*Engine[L, W], error)
//	func (e *Engine[L, W]) ShortestPath(start, end L) (*Path[L], error)
//	func (e *Engine[L, W]) ShortestPathLabels(start, end L) ([]L, error)
//	func (e *Engine[L, W]) ShortestPathCost(start, end L) (float64, error)
//	func ShortestPath[L, W](t core.Traversal[L, W], start, end L, opts ...Option) (*Path[L], error)
//
//	Path.Labels          start … end, inclusive
//	Path.Cost            Σ edge weights as float64
//	Path.Intermediaries  len(Labels) - 2, never negative
//
// Error handling:
//
//   - ErrUnknownLabel:  start or end is not a node.
//   - ErrNoPathFound:   start and end are in different components (or beyond MaxCost).
//   - Both wrap ErrNoSuchElement, so callers that only care whether an
//     answer exists can test errors.Is(err, ErrNoSuchElement).
//   - ErrNilGraph:      New received a nil traversal.
//
// Thread safety:
//
//   - An Engine keeps no state between queries. core.Graph guards its reads,
//     so concurrent queries are safe; concurrent inserts during a query make
//     the answer reflect whatever the search observed.
package dijkstra
