package linkcomm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/phonalign"
	"github.com/katalvlaran/phonalign/core"
	"github.com/katalvlaran/phonalign/linkcomm"
)

func build(t testing.TB, g *core.Graph, pairs [][2]string) {
	t.Helper()
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}
}

// bridged returns two K4 cliques joined by d–w. Edge IDs: e1..e6 for the
// first clique, e7 for the bridge, e8..e13 for the second.
func bridged(t testing.TB) *core.Graph {
	g := core.NewGraph()
	build(t, g, [][2]string{
		{"a", "b"}, {"a", "c"}, {"a", "d"}, {"b", "c"}, {"b", "d"}, {"c", "d"},
		{"d", "w"},
		{"w", "x"}, {"w", "y"}, {"w", "z"}, {"x", "y"}, {"x", "z"}, {"y", "z"},
	})

	return g
}

func TestClusterBridgedCliques(t *testing.T) {
	res, err := linkcomm.Cluster(bridged(t), linkcomm.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	require.Len(t, res.Curve, 3)
	assert.InDelta(t, 0.0, res.Curve[0].Threshold, 1e-12)
	assert.InDelta(t, 6.0/13, res.Curve[0].Density, 1e-12)
	assert.InDelta(t, 0.2, res.Curve[1].Threshold, 1e-12)
	assert.InDelta(t, 12.0/13, res.Curve[1].Density, 1e-12)
	assert.InDelta(t, 0.875, res.Curve[2].Threshold, 1e-12)
	assert.InDelta(t, 2.0/7, res.Curve[2].Density, 1e-12)

	assert.InDelta(t, 12.0/13, res.BestDensity, 1e-12)
	assert.InDelta(t, 0.2, res.BestThreshold, 1e-12)

	require.Len(t, res.Communities, 3)
	assert.Equal(t, []string{"e1", "e2", "e3", "e4", "e5", "e6"}, res.Communities[0])
	assert.Equal(t, []string{"e7"}, res.Communities[1])
	assert.Equal(t, []string{"e8", "e9", "e10", "e11", "e12", "e13"}, res.Communities[2])

	assert.Equal(t, 2, res.EdgeCommunity["e7"])
	assert.Equal(t, 3, res.EdgeCommunity["e13"])
	assert.Equal(t, []int{1}, res.NodeCommunities["a"])
	assert.Equal(t, []int{1, 2}, res.NodeCommunities["d"])
	assert.Equal(t, []int{2, 3}, res.NodeCommunities["w"])
}

func TestClusterThresholdStopsEarly(t *testing.T) {
	res, err := linkcomm.Cluster(bridged(t), linkcomm.WithThreshold(0.1))
	require.NoError(t, err)

	require.Len(t, res.Curve, 1)
	assert.InDelta(t, 6.0/13, res.BestDensity, 1e-12)
	// Each clique splits into a triangle and a star around its bridge node.
	require.Len(t, res.Communities, 5)
	assert.Equal(t, []string{"e1", "e2", "e4"}, res.Communities[0])
	assert.Equal(t, []string{"e3", "e5", "e6"}, res.Communities[1])
	assert.Equal(t, []string{"e7"}, res.Communities[2])
	assert.Equal(t, []string{"e8", "e9", "e10"}, res.Communities[3])
	assert.Equal(t, []string{"e11", "e12", "e13"}, res.Communities[4])
}

func TestClusterDisjointTriangles(t *testing.T) {
	g := core.NewGraph()
	build(t, g, [][2]string{
		{"a", "b"}, {"b", "c"}, {"c", "a"},
		{"x", "y"}, {"y", "z"}, {"z", "x"},
	})

	res, err := linkcomm.Cluster(g)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.BestDensity, 1e-12)
	assert.Equal(t, [][]string{{"e1", "e2", "e3"}, {"e4", "e5", "e6"}}, res.Communities)
}

func TestClusterSingleEdge(t *testing.T) {
	g := core.NewGraph()
	build(t, g, [][2]string{{"a", "b"}})

	res, err := linkcomm.Cluster(g)
	require.NoError(t, err)
	assert.Empty(t, res.Curve)
	assert.Zero(t, res.BestDensity)
	assert.Equal(t, [][]string{{"e1"}}, res.Communities)
	assert.Equal(t, []int{1}, res.NodeCommunities["b"])
}

func TestClusterDeterministicAcrossWorkers(t *testing.T) {
	one, err := linkcomm.Cluster(bridged(t), linkcomm.WithWorkers(1))
	require.NoError(t, err)
	many, err := linkcomm.Cluster(bridged(t), linkcomm.WithWorkers(8))
	require.NoError(t, err)
	assert.Equal(t, one, many)
}

func TestClusterTanimotoUnitWeights(t *testing.T) {
	jac, err := linkcomm.Cluster(bridged(t))
	require.NoError(t, err)
	tan, err := linkcomm.Cluster(bridged(t), linkcomm.WithTanimoto())
	require.NoError(t, err)
	assert.Equal(t, jac, tan)
}

func TestClusterWeightedTanimoto(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		u, v string
		w    float64
	}{
		{"a", "b", 3}, {"b", "c", 3}, {"c", "a", 3},
		{"c", "d", 0.5},
		{"d", "e", 3}, {"e", "f", 3}, {"f", "d", 3},
	} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	res, err := linkcomm.Cluster(g, linkcomm.WithTanimoto())
	require.NoError(t, err)
	assert.Greater(t, res.BestDensity, 0.0)
	for i := 1; i < len(res.Curve); i++ {
		assert.Greater(t, res.Curve[i].Threshold, res.Curve[i-1].Threshold)
	}
	assert.Equal(t, res.EdgeCommunity["e1"], res.EdgeCommunity["e2"])
	assert.NotEqual(t, res.EdgeCommunity["e1"], res.EdgeCommunity["e5"])
}

func TestClusterValidation(t *testing.T) {
	_, err := linkcomm.Cluster(nil)
	assert.ErrorIs(t, err, linkcomm.ErrNilGraph)

	_, err = linkcomm.Cluster(core.NewGraph())
	assert.ErrorIs(t, err, linkcomm.ErrNoEdges)
	assert.ErrorIs(t, err, phonalign.ErrInsufficientData)

	looped := core.NewGraph(core.WithLoops())
	build(t, looped, [][2]string{{"a", "b"}, {"a", "a"}})
	_, err = linkcomm.Cluster(looped)
	assert.ErrorIs(t, err, linkcomm.ErrSelfLoop)
	assert.ErrorIs(t, err, phonalign.ErrMalformedInput)

	multi := core.NewGraph(core.WithMultiEdges())
	build(t, multi, [][2]string{{"a", "b"}, {"b", "a"}})
	_, err = linkcomm.Cluster(multi)
	assert.ErrorIs(t, err, linkcomm.ErrDuplicateEdge)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { linkcomm.WithWorkers(0) })
	assert.Panics(t, func() { linkcomm.WithLogger(nil) })
}
