// Package dotload reads undirected edge lists written in a small subset of
// the Graphviz DOT language into a graph:
//
//	graph socialnetwork {
//	    "alice" -- "bob";
//	    bob -- carol -- dave
//	}
//
// Every "a -- b" pair becomes InsertNode(a), InsertNode(b) and
// InsertEdge(a, b, weight). Headers, braces, comments, blank lines and
// lines without "--" are ignored. A chain "a -- b -- c" yields the pairs
// (a,b) and (b,c).
//
// Nothing is rolled back on error: nodes and edges inserted before a
// failure stay in the graph.
package dotload

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/katalvlaran/socialpath/core"
	"github.com/katalvlaran/socialpath/internal/ctxlog"
)

const edgeOp = "--"

// maxLine bounds a single input line.
const maxLine = 1 << 20

// Load opens path on fs and reads it into g. A nil fs means the OS filesystem.
//
// Errors:
//   - ErrSourceUnavailable (wrapping the fs error) if path cannot be opened or is a directory.
//   - Anything Read returns.
func Load[W core.Weight](ctx context.Context, fs afero.Fs, path string, g Sink[W], opts ...Option) (Result, error) {
	log := ctxlog.FromContext(ctx)
	if fs == nil {
		fs = afero.NewOsFs()
	}

	info, err := fs.Stat(path)
	if err != nil {
		log.Warn("graph source unavailable", "path", path, "error", err)
		return Result{}, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, path, err)
	}
	if info.IsDir() {
		log.Warn("graph source is a directory", "path", path)
		return Result{}, fmt.Errorf("%w: %s: is a directory", ErrSourceUnavailable, path)
	}

	f, err := fs.Open(path)
	if err != nil {
		log.Warn("graph source unavailable", "path", path, "error", err)
		return Result{}, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, path, err)
	}
	defer f.Close()

	res, err := Read(ctx, f, g, opts...)
	if err != nil {
		return res, fmt.Errorf("dotload: %s: %w", path, err)
	}
	log.Info("graph loaded",
		"path", path,
		"lines", res.Lines,
		"edges", res.Edges,
		"ignored", res.Ignored,
		"malformed", res.Malformed,
	)

	return res, nil
}

// Read parses r line by line into g.
//
// Steps per line:
//  1. Stop with ctx.Err() if the context is done.
//  2. Classify with ParseLine; count ignored and malformed lines.
//  3. For each consecutive label pair insert both nodes, then the edge.
//
// An InsertEdge failure aborts the read with the line number attached.
// A weight the sink's W cannot hold exactly (1.5 for an integer W) fails
// with ErrBadWeight before anything is read.
func Read[W core.Weight](ctx context.Context, r io.Reader, g Sink[W], opts ...Option) (Result, error) {
	var res Result
	if g == nil {
		return res, ErrNilSink
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	weight := W(cfg.Weight)
	// Float sinks round to their own precision; integer sinks must not truncate.
	half := 0.5
	if W(half) == 0 && float64(weight) != cfg.Weight {
		return res, fmt.Errorf("%w: %v does not fit %T", ErrBadWeight, cfg.Weight, weight)
	}
	log := ctxlog.FromContext(ctx)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Lines++

		labels, kind := ParseLine(sc.Text())
		switch kind {
		case LineIgnored:
			res.Ignored++
			continue
		case LineMalformed:
			res.Malformed++
			log.Debug("skipping malformed edge line", "line", res.Lines, "text", sc.Text())
			continue
		}

		for i := 1; i < len(labels); i++ {
			from, to := labels[i-1], labels[i]
			g.InsertNode(from)
			g.InsertNode(to)
			if err := g.InsertEdge(from, to, weight); err != nil {
				return res, fmt.Errorf("dotload: line %d: %w", res.Lines, err)
			}
			res.Edges++
		}
	}
	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("dotload: read: %w", err)
	}

	return res, nil
}

// ParseLine classifies a single line and, for LineEdge, returns its labels
// in order with quotes stripped and whitespace trimmed.
func ParseLine(line string) ([]string, LineKind) {
	s := strings.TrimSpace(line)
	if s == "" || s == "{" || s == "}" {
		return nil, LineIgnored
	}
	if strings.HasPrefix(s, "//") || strings.HasPrefix(s, "#") {
		return nil, LineIgnored
	}
	if !strings.Contains(s, edgeOp) && isHeader(s) {
		return nil, LineIgnored
	}

	s = strings.TrimSpace(strings.TrimSuffix(s, ";"))
	s = stripAttributes(s)
	if !strings.Contains(s, edgeOp) {
		return nil, LineIgnored
	}

	parts := strings.Split(s, edgeOp)
	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		l := strings.TrimSpace(strings.ReplaceAll(p, `"`, ""))
		if l == "" {
			return nil, LineMalformed
		}
		labels = append(labels, l)
	}

	return labels, LineEdge
}

// isHeader reports whether s opens a graph block ("graph", "strict graph", "digraph").
// Callers only ask for lines without an edge operator, so "Strict -- bob" stays an edge.
func isHeader(s string) bool {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return false
	}
	switch strings.ToLower(fields[0]) {
	case "graph", "digraph", "strict":
		return true
	default:
		return false
	}
}

// stripAttributes drops a trailing "[...]" attribute list.
func stripAttributes(s string) string {
	if !strings.HasSuffix(s, "]") {
		return s
	}
	if i := strings.LastIndex(s, "["); i >= 0 {
		return strings.TrimSpace(s[:i])
	}

	return s
}
