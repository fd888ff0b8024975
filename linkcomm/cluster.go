package linkcomm

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/phonalign"
	"github.com/katalvlaran/phonalign/core"
)

var (
	// ErrNilGraph is returned for a nil graph.
	ErrNilGraph = fmt.Errorf("linkcomm: nil graph: %w", phonalign.ErrMalformedInput)
	// ErrNoEdges is returned for a graph without edges.
	ErrNoEdges = fmt.Errorf("linkcomm: graph has no edges: %w", phonalign.ErrInsufficientData)
	// ErrSelfLoop is returned when an edge joins a node to itself.
	ErrSelfLoop = fmt.Errorf("linkcomm: self-loop: %w", phonalign.ErrMalformedInput)
	// ErrDuplicateEdge is returned when two edges join the same unordered pair.
	ErrDuplicateEdge = fmt.Errorf("linkcomm: duplicate edge: %w", phonalign.ErrMalformedInput)
)

// CurvePoint is the partition density after all merges at one threshold.
type CurvePoint struct {
	Threshold float64 // 1 − similarity of the level
	Density   float64
}

// Result is the best link partition and the density curve that chose it.
type Result struct {
	// EdgeCommunity maps edge ID to community id (1..k, by first edge).
	EdgeCommunity map[string]int
	// Communities[c-1] lists the edge IDs of community c in edge order.
	Communities [][]string
	// NodeCommunities lists, per node, the ascending ids of communities
	// that own at least one of its edges.
	NodeCommunities map[string][]int

	BestThreshold float64
	BestDensity   float64
	Curve         []CurvePoint
}

type community struct {
	edges []int
	nodes map[int]struct{}
}

// density is m(m−n+1)/((n−2)(n−1)), zero for n <= 2.
func density(m, n int) float64 {
	if n <= 2 {
		return 0
	}

	return float64(m*(m-n+1)) / float64((n-2)*(n-1))
}

func (c *community) density() float64 {
	return density(len(c.edges), len(c.nodes))
}

// arena holds every community; edgeComm[e] indexes into comms.
type arena struct {
	comms    []community
	edgeComm []int
	sum      float64 // Σ D_c over live communities
}

func newArena(inc *incidence) *arena {
	a := &arena{
		comms:    make([]community, len(inc.edges)),
		edgeComm: make([]int, len(inc.edges)),
	}
	for e, ends := range inc.ends {
		a.comms[e] = community{
			edges: []int{e},
			nodes: map[int]struct{}{ends[0]: {}, ends[1]: {}},
		}
		a.edgeComm[e] = e
	}

	return a
}

// union merges the communities of edges x and y and reports whether they
// were distinct. The smaller moves into the larger; equal sizes keep the
// lower index.
func (a *arena) union(x, y int) bool {
	cx, cy := a.edgeComm[x], a.edgeComm[y]
	if cx == cy {
		return false
	}
	big, small := &a.comms[cx], &a.comms[cy]
	if len(small.edges) > len(big.edges) || (len(small.edges) == len(big.edges) && cy < cx) {
		big, small = small, big
		cx, cy = cy, cx
	}
	a.sum -= big.density() + small.density()
	for _, e := range small.edges {
		a.edgeComm[e] = cx
	}
	big.edges = append(big.edges, small.edges...)
	for n := range small.nodes {
		big.nodes[n] = struct{}{}
	}
	*small = community{}
	a.sum += big.density()

	return true
}

// Cluster partitions the edges of g into link communities.
func Cluster(g *core.Graph, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	edges, err := checkGraph(g)
	if err != nil {
		return Result{}, err
	}

	inc := newIncidence(g, edges)
	pairs, err := inc.pairs(o)
	if err != nil {
		return Result{}, fmt.Errorf("linkcomm: similarity: %w", err)
	}

	ar := newArena(inc)
	total := float64(len(edges))
	best := append([]int(nil), ar.edgeComm...)
	res := Result{}

	for i := 0; i < len(pairs); {
		level := pairs[i].dist
		if level > o.threshold {
			break
		}
		merges := 0
		for ; i < len(pairs) && pairs[i].dist == level; i++ {
			if ar.union(pairs[i].a, pairs[i].b) {
				merges++
			}
		}
		d := 2 / total * ar.sum
		res.Curve = append(res.Curve, CurvePoint{Threshold: level, Density: d})
		o.logger.Debug("linkcomm level",
			zap.Float64("threshold", level),
			zap.Int("merges", merges),
			zap.Float64("density", d))
		if d > res.BestDensity {
			res.BestDensity = d
			res.BestThreshold = level
			copy(best, ar.edgeComm)
		}
	}

	res.fill(inc, best)
	o.logger.Debug("linkcomm done",
		zap.Int("edges", len(edges)),
		zap.Int("communities", len(res.Communities)),
		zap.Float64("best_density", res.BestDensity))

	return res, nil
}

func checkGraph(g *core.Graph) ([]*core.Edge, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	edges := g.Edges()
	if len(edges) == 0 {
		return nil, ErrNoEdges
	}
	seen := make(map[[2]string]string, len(edges))
	for _, e := range edges {
		if e.From == e.To {
			return nil, fmt.Errorf("%w: edge %s at %q", ErrSelfLoop, e.ID, e.From)
		}
		key := [2]string{e.From, e.To}
		if key[1] < key[0] {
			key[0], key[1] = key[1], key[0]
		}
		if prev, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: %s and %s join %q-%q", ErrDuplicateEdge, prev, e.ID, key[0], key[1])
		}
		seen[key] = e.ID
	}

	return edges, nil
}

// fill relabels the arena slots in best to ids 1..k by first edge.
func (r *Result) fill(inc *incidence, best []int) {
	ids := make(map[int]int)
	r.EdgeCommunity = make(map[string]int, len(inc.edges))
	for e, slot := range best {
		id, ok := ids[slot]
		if !ok {
			id = len(ids) + 1
			ids[slot] = id
			r.Communities = append(r.Communities, nil)
		}
		eid := inc.edges[e].ID
		r.EdgeCommunity[eid] = id
		r.Communities[id-1] = append(r.Communities[id-1], eid)
	}

	r.NodeCommunities = make(map[string][]int, len(inc.nodes))
	for n, es := range inc.incident {
		if len(es) == 0 {
			continue
		}
		set := make(map[int]struct{})
		for _, e := range es {
			set[ids[best[e]]] = struct{}{}
		}
		list := make([]int, 0, len(set))
		for id := range set {
			list = append(list, id)
		}
		sort.Ints(list)
		r.NodeCommunities[inc.nodes[n]] = list
	}
}
