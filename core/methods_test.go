// Package core_test contains unit tests for the community graph.
package core_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phonalign"
	"github.com/katalvlaran/phonalign/core"
)

// TestAddEdgeMirrorsAdjacency verifies undirected symmetry and stable IDs.
func TestAddEdgeMirrorsAdjacency(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)

	assert.True(t, g.HasEdge("a", "b"))
	assert.True(t, g.HasEdge("b", "a"))
	assert.Equal(t, []string{"a", "b"}, g.Vertices())

	ids, err := g.NeighborIDs("b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids)
}

// TestAddEdgeConstraints checks the simple-graph defaults.
func TestAddEdgeConstraints(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)

	_, err = g.AddEdge("b", "a", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	_, err = g.AddEdge("a", "a", 0)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	require.ErrorIs(t, err, phonalign.ErrMalformedInput)

	_, err = g.AddEdge("a", "c", 2)
	require.ErrorIs(t, err, core.ErrBadWeight)

	_, err = g.AddEdge("", "c", 0)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestWeightedGraph(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("a", "b", 0.5)
	require.NoError(t, err)

	w, ok := g.Weight("b", "a")
	require.True(t, ok)
	assert.Equal(t, 0.5, w)

	_, ok = g.Weight("a", "z")
	assert.False(t, ok)

	_, err = g.AddEdge("a", "c", math.NaN())
	require.ErrorIs(t, err, core.ErrBadWeight)
	assert.True(t, g.Weighted())
}

func TestLoopsAndMultiEdges(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	_, err := g.AddEdge("a", "a", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "a", 0)
	require.NoError(t, err)

	deg, err := g.Degree("a")
	require.NoError(t, err)
	assert.Equal(t, 4, deg)

	ns, err := g.Neighbors("a")
	require.NoError(t, err)
	require.Len(t, ns, 3)
	assert.Equal(t, "e1", ns[0].ID)

	ids, err := g.NeighborIDs("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestEdgesInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	for i, pair := range [][2]string{{"c", "d"}, {"a", "b"}, {"b", "c"}} {
		_, err := g.AddEdge(pair[0], pair[1], 0)
		require.NoError(t, err, i)
	}
	for i := 0; i < 9; i++ {
		_, err := g.AddEdge("x", string(rune('a'+i))+"1", 0)
		require.NoError(t, err)
	}

	es := g.Edges()
	require.Len(t, es, 12)
	assert.Equal(t, "e1", es[0].ID)
	assert.Equal(t, "e2", es[1].ID)
	assert.Equal(t, "e10", es[9].ID) // numeric, not lexicographic
	assert.Equal(t, "d", es[0].Other("c"))
}

func TestRemoveEdge(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(eid))
	assert.False(t, g.HasEdge("b", "a"))
	assert.Equal(t, 0, g.EdgeCount())
	require.ErrorIs(t, g.RemoveEdge(eid), core.ErrEdgeNotFound)

	_, err = g.GetEdge(eid)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)

	_, err = g.Neighbors("zz")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestConcurrentAddEdge exercises the locks under the race detector.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = g.AddEdge("hub", string(rune('A'+i)), 0)
			_ = g.Vertices()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 16, g.EdgeCount())
	assert.Equal(t, 17, g.VertexCount())
}
