// Package dijkstra implements a point-to-point variant of Dijkstra's
// shortest-path algorithm over a core.Traversal view.
//
// The search treats every stored edge as walkable in both directions by
// default: from a node it relaxes the edges it leaves (towards To) and the
// edges it enters (towards From). Forward mode relaxes leaving edges only.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Every strict improvement pushes a new heap entry (up to E pushes).
//   - Each heap operation costs O(log N), N ≤ V + E, simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for the cost ledger, O(E) worst-case heap entries.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: improvements push fresh entries; stale entries are
//     skipped when popped (their cost exceeds the ledger).
//   - The search stops the first time the target is popped, which happens at
//     its minimum cost because weights are non-negative.
//   - Equal costs pop in push order, so results are deterministic.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/socialpath/core"
)

// Engine answers shortest-path queries against one traversal view.
// An Engine holds no per-query state and may be reused.
type Engine[L comparable, W core.Weight] struct {
	t    core.Traversal[L, W]
	opts Options
}

// New builds an Engine over t with the given options.
//
// Returns ErrNilGraph if t is nil. Invalid option values panic in their
// constructors (see WithMaxCost).
func New[L comparable, W core.Weight](t core.Traversal[L, W], opts ...Option) (*Engine[L, W], error) {
	if t == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine[L, W]{t: t, opts: cfg}, nil
}

// Options returns the effective configuration.
func (e *Engine[L, W]) Options() Options {
	return e.opts
}

// ShortestPath computes a minimum-total-weight path from start to end.
//
// Preconditions and validation (in order):
//  1. start and end must not be nil interface values (ErrUnknownLabel).
//  2. start and end must be nodes (ErrUnknownLabel).
//
// If the search exhausts the queue without reaching end, the error wraps
// ErrNoPathFound. All failures satisfy errors.Is(err, ErrNoSuchElement).
func (e *Engine[L, W]) ShortestPath(start, end L) (*Path[L], error) {
	if isNilLabel(start) || isNilLabel(end) {
		return nil, fmt.Errorf("%w: nil label", ErrUnknownLabel)
	}
	if !e.t.HasNode(start) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownLabel, start)
	}
	if !e.t.HasNode(end) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownLabel, end)
	}

	r := &runner[L, W]{
		t:    e.t,
		opts: e.opts,
		end:  end,
		cost: make(map[L]float64),
	}
	r.init(start)
	last := r.process()
	if last == nil {
		return nil, fmt.Errorf("%w: %v→%v", ErrNoPathFound, start, end)
	}

	return &Path[L]{Labels: last.labels(), Cost: last.cost}, nil
}

// ShortestPathLabels returns the labels on a shortest path, start first and end last.
func (e *Engine[L, W]) ShortestPathLabels(start, end L) ([]L, error) {
	p, err := e.ShortestPath(start, end)
	if err != nil {
		return nil, err
	}

	return p.Labels, nil
}

// ShortestPathCost returns the summed edge weight of a shortest path.
func (e *Engine[L, W]) ShortestPathCost(start, end L) (float64, error) {
	p, err := e.ShortestPath(start, end)
	if err != nil {
		return 0, err
	}

	return p.Cost, nil
}

// ShortestPath is a one-shot helper: New(t, opts...) followed by ShortestPath(start, end).
func ShortestPath[L comparable, W core.Weight](t core.Traversal[L, W], start, end L, opts ...Option) (*Path[L], error) {
	e, err := New(t, opts...)
	if err != nil {
		return nil, err
	}

	return e.ShortestPath(start, end)
}

// isNilLabel reports whether l boxes to a nil interface (only possible for interface label types).
func isNilLabel[L comparable](l L) bool {
	return any(l) == nil
}

// runner holds the mutable state for a single query.
type runner[L comparable, W core.Weight] struct {
	t    core.Traversal[L, W]
	opts Options
	end  L
	cost map[L]float64 // best known cumulative cost per label
	pq   searchPQ[L]
	seq  uint64 // push counter for stable tie-breaks
}

// init seeds the ledger and the heap with start at cost 0.
func (r *runner[L, W]) init(start L) {
	heap.Init(&r.pq)
	r.cost[start] = 0
	r.push(start, 0, nil)
}

// process pops entries until end is reached or the heap is empty.
// It returns the terminal searchNode, or nil if end is unreachable.
func (r *runner[L, W]) process() *searchNode[L] {
	for r.pq.Len() > 0 {
		cur := heap.Pop(&r.pq).(*searchNode[L])

		if cur.label == r.end {
			return cur
		}

		// A cheaper entry for this label was pushed after this one.
		if cur.cost > r.cost[cur.label] {
			continue
		}

		for _, e := range r.t.Leaving(cur.label) {
			r.relax(cur, e.To, e.Weight)
		}
		if r.opts.Direction == Bidirectional {
			for _, e := range r.t.Entering(cur.label) {
				r.relax(cur, e.From, e.Weight)
			}
		}
	}

	return nil
}

// relax pushes next if reaching it through cur beats its recorded cost.
func (r *runner[L, W]) relax(cur *searchNode[L], next L, w W) {
	c := cur.cost + float64(w)
	// NaN compares false both ways and would be re-pushed forever.
	if math.IsNaN(c) || c > r.opts.MaxCost {
		return
	}
	if best, seen := r.cost[next]; seen && c >= best {
		return
	}
	r.cost[next] = c
	r.push(next, c, cur)
}

func (r *runner[L, W]) push(label L, cost float64, pred *searchNode[L]) {
	r.seq++
	heap.Push(&r.pq, &searchNode[L]{label: label, cost: cost, pred: pred, seq: r.seq})
}

// searchNode is one candidate path endpoint: its label, cumulative cost from
// start, and the previous hop (nil for start).
type searchNode[L comparable] struct {
	label L
	cost  float64
	pred  *searchNode[L]
	seq   uint64
}

// labels walks the predecessor chain and returns it in start→end order.
func (n *searchNode[L]) labels() []L {
	var out []L
	for cur := n; cur != nil; cur = cur.pred {
		out = append(out, cur.label)
	}
	slices.Reverse(out)

	return out
}

// searchPQ is a min-heap of *searchNode ordered by cost, then push order.
type searchPQ[L comparable] []*searchNode[L]

func (pq searchPQ[L]) Len() int { return len(pq) }

func (pq searchPQ[L]) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

func (pq searchPQ[L]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a *searchNode[L].
func (pq *searchPQ[L]) Push(x any) { *pq = append(*pq, x.(*searchNode[L])) }

// Pop is called by heap.Pop and removes the last element.
func (pq *searchPQ[L]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
