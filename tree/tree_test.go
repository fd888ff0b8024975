package tree_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phonalign"
	"github.com/katalvlaran/phonalign/matrix"
	"github.com/katalvlaran/phonalign/tree"
)

func mustMatrix(t *testing.T, labels []string, rows [][]float64) *matrix.DistanceMatrix {
	t.Helper()
	dm, err := matrix.FromRows(labels, rows)
	require.NoError(t, err)

	return dm
}

func abcMatrix(t *testing.T) *matrix.DistanceMatrix {
	return mustMatrix(t, []string{"A", "B", "C"}, [][]float64{
		{0, 2, 4},
		{2, 0, 4},
		{4, 4, 0},
	})
}

// wikiMatrix is the classic five-taxon neighbor-joining example.
func wikiMatrix(t *testing.T) *matrix.DistanceMatrix {
	return mustMatrix(t, []string{"a", "b", "c", "d", "e"}, [][]float64{
		{0, 5, 9, 9, 8},
		{5, 0, 10, 10, 9},
		{9, 10, 0, 8, 7},
		{9, 10, 8, 0, 3},
		{8, 9, 7, 3, 0},
	})
}

func TestUPGMAFixture(t *testing.T) {
	tr, err := tree.UPGMA(abcMatrix(t))
	require.NoError(t, err)
	assert.Equal(t, "((A:1,B:1):1,C:2);", tr.Newick())
	assert.Equal(t, "((A,B),C);", tr.Topology())
}

func TestNeighborJoining(t *testing.T) {
	tr, err := tree.NeighborJoining(wikiMatrix(t))
	require.NoError(t, err)
	assert.Equal(t, "(((a:2,b:3):3,c:4):2,d:2,e:1);", tr.Newick())
	assert.Equal(t, 7, tr.EdgeCount())
}

func TestNeighborJoiningTwoTaxa(t *testing.T) {
	dm := mustMatrix(t, []string{"x", "y"}, [][]float64{{0, 3}, {3, 0}})
	tr, err := tree.NeighborJoining(dm)
	require.NoError(t, err)
	assert.Equal(t, "(x:1.5,y:1.5);", tr.Newick())
}

func TestNeighborJoiningClampsNegative(t *testing.T) {
	// Non-additive input; no emitted branch may be negative.
	dm := mustMatrix(t, []string{"a", "b", "c", "d"}, [][]float64{
		{0, 1, 10, 10},
		{1, 0, 1, 1},
		{10, 1, 0, 10},
		{10, 1, 10, 0},
	})
	tr, err := tree.NeighborJoining(dm)
	require.NoError(t, err)
	for _, n := range tr.PostOrder() {
		if n != tr.Root {
			assert.GreaterOrEqual(t, n.Length, 0.0, n.Name)
		}
	}
}

func TestTreeShapeProperties(t *testing.T) {
	dm := wikiMatrix(t)
	n := dm.Len()

	up, err := tree.Build(dm, tree.MethodUPGMA)
	require.NoError(t, err)
	nj, err := tree.Build(dm, tree.MethodNJ)
	require.NoError(t, err)

	for _, tr := range []*tree.Tree{up, nj} {
		leaves := tr.Leaves()
		sort.Strings(leaves)
		assert.Equal(t, dm.Labels(), leaves)
	}
	assert.Equal(t, n-1, up.InternalCount())
	assert.Equal(t, 2*n-2, up.EdgeCount())
	assert.Equal(t, 2*n-3, nj.EdgeCount())
}

func TestUPGMAIsUltrametric(t *testing.T) {
	tr, err := tree.UPGMA(wikiMatrix(t))
	require.NoError(t, err)

	// Every root-to-leaf path has the same length.
	depth := map[*tree.Node]float64{tr.Root: 0}
	var leafDepths []float64
	stack := []*tree.Node{tr.Root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.IsLeaf() {
			leafDepths = append(leafDepths, depth[n])
		}
		for _, c := range n.Children {
			depth[c] = depth[n] + c.Length
			stack = append(stack, c)
		}
	}
	for _, d := range leafDepths {
		assert.InDelta(t, leafDepths[0], d, 1e-12)
	}
}

func TestBuildErrors(t *testing.T) {
	_, err := tree.UPGMA(nil)
	require.ErrorIs(t, err, phonalign.ErrMalformedInput)

	one := mustMatrix(t, []string{"solo"}, [][]float64{{0}})
	_, err = tree.UPGMA(one)
	require.ErrorIs(t, err, tree.ErrTooFewTaxa)
	_, err = tree.NeighborJoining(one)
	require.ErrorIs(t, err, phonalign.ErrInsufficientData)

	_, err = tree.Build(abcMatrix(t), tree.Method(9))
	require.ErrorIs(t, err, phonalign.ErrConfiguration)
}

func TestParseMethod(t *testing.T) {
	for in, want := range map[string]tree.Method{
		"upgma":    tree.MethodUPGMA,
		"NJ":       tree.MethodNJ,
		"neighbor": tree.MethodNJ,
	} {
		got, err := tree.ParseMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := tree.ParseMethod("wpgma")
	require.ErrorIs(t, err, tree.ErrUnknownMethod)
	assert.Equal(t, "nj", tree.MethodNJ.String())
}

func TestFlatCluster(t *testing.T) {
	dm := mustMatrix(t, []string{"a", "b", "c", "d"}, [][]float64{
		{0, 1, 5, 5},
		{1, 0, 5, 5},
		{5, 5, 0, 1},
		{5, 5, 1, 0},
	})

	p, err := tree.FlatCluster(dm, 2, tree.LinkageAverage)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1, "b": 1, "c": 2, "d": 2}, p)

	p, err = tree.FlatCluster(dm, 0, tree.LinkageAverage)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3, "d": 4}, p)

	p, err = tree.FlatCluster(dm, math.Inf(1), tree.LinkageComplete)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1, "b": 1, "c": 1, "d": 1}, p)
}

func TestFlatClusterCutIsInclusive(t *testing.T) {
	dm := mustMatrix(t, []string{"a", "b", "c"}, [][]float64{
		{0, 0, 2},
		{0, 0, 2},
		{2, 2, 0},
	})

	p, err := tree.FlatCluster(dm, 0, tree.LinkageAverage)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1, "b": 1, "c": 2}, p)

	p, err = tree.FlatCluster(dm, 2, tree.LinkageSingle)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1, "b": 1, "c": 1}, p)
}

func TestFlatClusterLinkages(t *testing.T) {
	dm := mustMatrix(t, []string{"a", "b", "c"}, [][]float64{
		{0, 1, 3},
		{1, 0, 2},
		{3, 2, 0},
	})
	cases := []struct {
		link tree.Linkage
		want map[string]int
	}{
		{tree.LinkageSingle, map[string]int{"a": 1, "b": 1, "c": 1}},
		{tree.LinkageAverage, map[string]int{"a": 1, "b": 1, "c": 1}},
		{tree.LinkageComplete, map[string]int{"a": 1, "b": 1, "c": 2}},
	}
	for _, tc := range cases {
		t.Run(tc.link.String(), func(t *testing.T) {
			p, err := tree.FlatCluster(dm, 2.5, tc.link)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p)
		})
	}

	_, err := tree.FlatCluster(dm, 1, tree.Linkage(5))
	require.ErrorIs(t, err, tree.ErrUnknownLinkage)

	l, err := tree.ParseLinkage("Complete")
	require.NoError(t, err)
	assert.Equal(t, tree.LinkageComplete, l)
}
