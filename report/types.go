// Package report turns graph counters and shortest-path answers into the
// summaries the social track tool prints.
//
//	– Stats        node/edge totals and the average number of friends.
//	– Connection   the closest path between two people.
//	– Renderer     Plain text or Styled (lipgloss) output for both.
package report

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/socialpath/dijkstra"
)

// Counter is the part of a graph Collect needs. *core.Graph implements it.
type Counter interface {
	NodeCount() int
	EdgeCount() int
}

// PathFinder answers shortest-path queries between two labels.
// *dijkstra.Engine[string, W] implements it.
type PathFinder interface {
	ShortestPath(start, end string) (*dijkstra.Path[string], error)
}

// Stats summarizes the size of a social graph.
type Stats struct {
	Nodes   int
	Edges   int
	Average float64 // Edges / Nodes, 0 for an empty graph
}

// String renders the three-line statistics block.
func (s Stats) String() string {
	return fmt.Sprintf("Number of Nodes: %d\nNumber of Edges: %d\nAverage Number of Friends: %.2f",
		s.Nodes, s.Edges, s.Average)
}

// Connection is the closest path between two people.
type Connection struct {
	From, To       string
	Path           []string
	Cost           float64
	Intermediaries int
}

// String renders the path one label per line followed by the intermediary count.
func (c Connection) String() string {
	var b strings.Builder
	b.WriteString("Closest path:\n")
	for _, l := range c.Path {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Number of intermediary friends: %d", c.Intermediaries)

	return b.String()
}
