package linkcomm_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/phonalign/core"
	"github.com/katalvlaran/phonalign/linkcomm"
)

// ring of 20 K5 cliques, neighbours joined by a single edge.
func benchGraph() *core.Graph {
	g := core.NewGraph()
	const k, size = 20, 5
	for c := 0; c < k; c++ {
		for i := 0; i < size; i++ {
			for j := i + 1; j < size; j++ {
				_, _ = g.AddEdge(fmt.Sprintf("%d.%d", c, i), fmt.Sprintf("%d.%d", c, j), 0)
			}
		}
		_, _ = g.AddEdge(fmt.Sprintf("%d.0", c), fmt.Sprintf("%d.1", (c+1)%k), 0)
	}

	return g
}

func BenchmarkCluster(b *testing.B) {
	g := benchGraph()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := linkcomm.Cluster(g); err != nil {
			b.Fatal(err)
		}
	}
}
