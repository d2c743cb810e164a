package report

import (
	"fmt"
)

// Collect reads the counters of c. A nil Counter yields zero Stats.
func Collect(c Counter) Stats {
	if c == nil {
		return Stats{}
	}
	s := Stats{Nodes: c.NodeCount(), Edges: c.EdgeCount()}
	if s.Nodes > 0 {
		s.Average = float64(s.Edges) / float64(s.Nodes)
	}

	return s
}

// Closest asks f for the cheapest path from a to b.
// Errors from f are returned wrapped; errors.Is still matches the
// dijkstra sentinels.
func Closest(f PathFinder, a, b string) (Connection, error) {
	p, err := f.ShortestPath(a, b)
	if err != nil {
		return Connection{}, fmt.Errorf("report: closest %s→%s: %w", a, b, err)
	}

	return Connection{
		From:           a,
		To:             b,
		Path:           p.Labels,
		Cost:           p.Cost,
		Intermediaries: p.Intermediaries(),
	}, nil
}
