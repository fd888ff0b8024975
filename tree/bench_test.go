package tree_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/phonalign/matrix"
	"github.com/katalvlaran/phonalign/tree"
)

var sinkTree *tree.Tree

func randomMatrix(b *testing.B, n int) *matrix.DistanceMatrix {
	b.Helper()
	rng := rand.New(rand.NewSource(7))
	labels := make([]string, n)
	rows := make([][]float64, n)
	for i := range rows {
		labels[i] = fmt.Sprintf("t%d", i)
		rows[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := rng.Float64()
			rows[i][j], rows[j][i] = v, v
		}
	}
	dm, err := matrix.FromRows(labels, rows)
	if err != nil {
		b.Fatal(err)
	}

	return dm
}

func BenchmarkBuild(b *testing.B) {
	for _, m := range []tree.Method{tree.MethodUPGMA, tree.MethodNJ} {
		for _, n := range []int{32, 128} {
			dm := randomMatrix(b, n)
			b.Run(fmt.Sprintf("%s/n=%d", m, n), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					tr, err := m.Build(dm)
					if err != nil {
						b.Fatal(err)
					}
					sinkTree = tr
				}
			})
		}
	}
}
