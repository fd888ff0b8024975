package linkcomm

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/phonalign/core"
)

// pair is two edges sharing a node, with a < b.
type pair struct {
	a, b int
	dist float64 // 1 − similarity
}

// incidence is the indexed view of the graph used by the clusterer.
type incidence struct {
	edges    []*core.Edge
	ends     [][2]int          // edge index → node indices
	nodes    []string          // node index → ID
	incident [][]int           // node index → incident edge indices, ascending
	vectors  []map[int]float64 // inclusive weighted neighbourhood per node
}

func newIncidence(g *core.Graph, edges []*core.Edge) *incidence {
	nodes := g.Vertices()
	index := make(map[string]int, len(nodes))
	for i, id := range nodes {
		index[id] = i
	}

	inc := &incidence{
		edges:    edges,
		ends:     make([][2]int, len(edges)),
		nodes:    nodes,
		incident: make([][]int, len(nodes)),
		vectors:  make([]map[int]float64, len(nodes)),
	}
	weight := func(e *core.Edge) float64 {
		if g.Weighted() {
			return e.Weight
		}

		return 1
	}
	for i := range inc.vectors {
		inc.vectors[i] = make(map[int]float64)
	}
	for k, e := range edges {
		u, v := index[e.From], index[e.To]
		inc.ends[k] = [2]int{u, v}
		inc.incident[u] = append(inc.incident[u], k)
		inc.incident[v] = append(inc.incident[v], k)
		w := weight(e)
		inc.vectors[u][v] = w
		inc.vectors[v][u] = w
	}
	// Self entry: mean incident weight (1 when unweighted).
	for i, vec := range inc.vectors {
		if len(vec) == 0 {
			continue
		}
		var sum float64
		for _, w := range vec {
			sum += w
		}
		vec[i] = sum / float64(len(vec))
	}

	return inc
}

// other returns the endpoint of edge k that is not node.
func (inc *incidence) other(k, node int) int {
	if inc.ends[k][0] == node {
		return inc.ends[k][1]
	}

	return inc.ends[k][0]
}

func jaccard(a, b map[int]float64) float64 {
	inter := 0
	for x := range a {
		if _, ok := b[x]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}

	return float64(inter) / float64(union)
}

func tanimoto(a, b map[int]float64) float64 {
	var dot, na, nb float64
	for x, wa := range a {
		na += wa * wa
		if wb, ok := b[x]; ok {
			dot += wa * wb
		}
	}
	for _, wb := range b {
		nb += wb * wb
	}
	den := na + nb - dot
	if den == 0 {
		return 0
	}

	return dot / den
}

// pairs scores every edge pair sharing a node, fanning out by node. Each
// node fills its own slot; slots are concatenated in node order and sorted by
// (dist, a, b), so the result is independent of scheduling.
func (inc *incidence) pairs(o options) ([]pair, error) {
	sim := jaccard
	if o.tanimoto {
		sim = tanimoto
	}

	slots := make([][]pair, len(inc.nodes))
	g := new(errgroup.Group)
	g.SetLimit(o.workers)
	for k := range inc.nodes {
		g.Go(func() error {
			es := inc.incident[k]
			var out []pair
			for x := 0; x < len(es); x++ {
				for y := x + 1; y < len(es); y++ {
					i, j := inc.other(es[x], k), inc.other(es[y], k)
					s := sim(inc.vectors[i], inc.vectors[j])
					out = append(out, pair{a: es[x], b: es[y], dist: 1 - s})
				}
			}
			slots[k] = out

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []pair
	for _, s := range slots {
		all = append(all, s...)
	}
	sort.Slice(all, func(x, y int) bool {
		if all[x].dist != all[y].dist {
			return all[x].dist < all[y].dist
		}
		if all[x].a != all[y].a {
			return all[x].a < all[y].a
		}

		return all[x].b < all[y].b
	})

	return all, nil
}
