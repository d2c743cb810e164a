// Package socialpath is an in-memory social graph with a point-to-point
// shortest-path engine, built to answer "how closely are these two people
// connected?".
//
// What is in the box?
//
//	• core/      generic labeled, weighted graph store with a traversal view
//	• dijkstra/  lazy-heap Dijkstra with bidirectional (default) or forward traversal
//	• dotload/   DOT edge-list loader ("a -- b;") over any afero filesystem
//	• report/    statistics, closest connection, plain and lipgloss rendering
//	• cmd/       the socialpath CLI: stats, path FROM TO, interactive shell
//
// Quick ASCII example:
//
//	    ann───bo
//	     │     │
//	    eve───cy
//
//	ann → cy costs 2 either way; ties resolve in insertion order.
//
//	go install github.com/katalvlaran/socialpath/cmd/socialpath@latest
package socialpath
