// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in idempotent node insertion and O(1) counters.
//   - Validate endpoint and weight checks on InsertEdge.
//   - Anchor both duplicate-edge policies.

package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialpath/core"
)

func TestGraph_InsertNodeIdempotent(t *testing.T) {
	g := core.NewGraph[string, int]()

	require.True(t, g.InsertNode("A"), "first insert creates the node")
	require.False(t, g.InsertNode("A"), "second insert is a no-op")
	require.False(t, g.InsertNode("A"))

	assert.Equal(t, 1, g.NodeCount())
	assert.True(t, g.HasNode("A"))
	assert.False(t, g.HasNode("B"))
	assert.Equal(t, []string{"A"}, g.Nodes())
}

func TestGraph_NodesKeepInsertionOrder(t *testing.T) {
	g := core.NewGraph[string, int]()
	for _, l := range []string{"D", "A", "G", "A", "L"} {
		g.InsertNode(l)
	}

	assert.Equal(t, []string{"D", "A", "G", "L"}, g.Nodes())
	assert.Equal(t, 4, g.NodeCount())
}

func TestGraph_InsertEdgeMissingEndpoint(t *testing.T) {
	g := core.NewGraph[string, int]()
	g.InsertNode("A")

	err := g.InsertEdge("A", "B", 1)
	require.ErrorIs(t, err, core.ErrMissingEndpoint)
	assert.Contains(t, err.Error(), "B")

	err = g.InsertEdge("X", "A", 1)
	require.ErrorIs(t, err, core.ErrMissingEndpoint)
	assert.Contains(t, err.Error(), "X")

	assert.Equal(t, 0, g.EdgeCount(), "failed inserts must not count")
	assert.Empty(t, g.Leaving("A"))
}

func TestGraph_InsertEdgeNegativeWeight(t *testing.T) {
	g := core.NewGraph[string, float64]()
	g.InsertNode("A")
	g.InsertNode("B")

	err := g.InsertEdge("A", "B", -0.5)
	require.ErrorIs(t, err, core.ErrNegativeWeight)
	assert.Equal(t, 0, g.EdgeCount())

	require.NoError(t, g.InsertEdge("A", "B", 0), "zero weight is allowed")
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_InsertEdgeNaNWeight(t *testing.T) {
	g := core.NewGraph[string, float64]()
	g.InsertNode("A")
	g.InsertNode("B")

	err := g.InsertEdge("A", "B", math.NaN())
	require.ErrorIs(t, err, core.ErrNaNWeight)
	assert.False(t, errors.Is(err, core.ErrNegativeWeight))
	assert.Equal(t, 0, g.EdgeCount())

	require.NoError(t, g.InsertEdge("A", "B", math.Inf(1)), "+Inf is a valid, unreachable weight")
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_InsertEdgeIncrementsByOne(t *testing.T) {
	g := core.NewGraph[string, int]()
	g.InsertNode("A")
	g.InsertNode("B")
	g.InsertNode("C")

	require.NoError(t, g.InsertEdge("A", "B", 2))
	assert.Equal(t, 1, g.EdgeCount())
	require.NoError(t, g.InsertEdge("B", "A", 3), "reverse pair is a distinct edge")
	assert.Equal(t, 2, g.EdgeCount())
	require.NoError(t, g.InsertEdge("B", "C", 4))
	assert.Equal(t, 3, g.EdgeCount())

	assert.Equal(t, []core.Edge[string, int]{
		{From: "A", To: "B", Weight: 2},
		{From: "B", To: "A", Weight: 3},
		{From: "B", To: "C", Weight: 4},
	}, g.Edges())
}

func TestGraph_DuplicateOverwrite(t *testing.T) {
	g := core.NewGraph[string, int]()
	require.Equal(t, core.DuplicateOverwrite, g.Policy())
	g.InsertNode("G")
	g.InsertNode("L")

	require.NoError(t, g.InsertEdge("G", "L", 7))
	require.NoError(t, g.InsertEdge("G", "L", 4))

	assert.Equal(t, 1, g.EdgeCount())
	w, ok := g.Weight("G", "L")
	require.True(t, ok)
	assert.Equal(t, 4, w)
	assert.Len(t, g.Leaving("G"), 1)
	assert.Len(t, g.Entering("L"), 1)
	assert.Equal(t, 4, g.Entering("L")[0].Weight, "both endpoints see the same edge")
}

func TestGraph_DuplicateParallel(t *testing.T) {
	g := core.NewGraph[string, int](core.WithParallelEdges())
	require.Equal(t, core.DuplicateParallel, g.Policy())
	g.InsertNode("G")
	g.InsertNode("L")

	require.NoError(t, g.InsertEdge("G", "L", 7))
	require.NoError(t, g.InsertEdge("G", "L", 4))

	assert.Equal(t, 2, g.EdgeCount())
	w, ok := g.Weight("G", "L")
	require.True(t, ok)
	assert.Equal(t, 7, w, "Weight reports the first stored edge")
	assert.Len(t, g.Leaving("G"), 2)
	assert.Len(t, g.Entering("L"), 2)
}

func TestGraph_WeightIsDirectional(t *testing.T) {
	g := core.NewGraph[string, int]()
	g.InsertNode("A")
	g.InsertNode("B")
	require.NoError(t, g.InsertEdge("A", "B", 5))

	_, ok := g.Weight("B", "A")
	assert.False(t, ok)
	_, ok = g.Weight("Q", "A")
	assert.False(t, ok)
}

func TestGraph_EdgesAreCopies(t *testing.T) {
	g := core.NewGraph[string, int]()
	g.InsertNode("A")
	g.InsertNode("B")
	require.NoError(t, g.InsertEdge("A", "B", 5))

	edges := g.Edges()
	edges[0].Weight = 99
	leaving := g.Leaving("A")
	leaving[0].Weight = 42

	w, _ := g.Weight("A", "B")
	assert.Equal(t, 5, w)
}

func TestDuplicatePolicy_String(t *testing.T) {
	assert.Equal(t, "overwrite", core.DuplicateOverwrite.String())
	assert.Equal(t, "parallel", core.DuplicateParallel.String())
	assert.Equal(t, "unknown", core.DuplicatePolicy(7).String())

	g := core.NewGraph[int, uint8](core.WithDuplicatePolicy(core.DuplicateParallel))
	assert.Equal(t, core.DuplicateParallel, g.Policy())
}
