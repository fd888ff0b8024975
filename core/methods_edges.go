// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates an undirected edge u–v and returns its ID.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check the multi-edge constraint on the unordered pair.
//  4. Generate eid atomically, store the edge, link adjacency both ways.
//
// Errors:
//   - ErrEmptyVertexID for an empty endpoint.
//   - ErrBadWeight for a non-finite weight, or weight != 0 on an unweighted graph.
//   - ErrLoopNotAllowed when u == v and loops are disabled.
//   - ErrMultiEdgeNotAllowed when u–v already exists and multi-edges are disabled.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, weight float64) (string, error) {
	if u == "" || v == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || (!g.weighted && weight != 0) {
		return "", ErrBadWeight
	}
	if u == v && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(u); err != nil {
		return "", err
	}
	if err := g.AddVertex(v); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacency[u][v]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid, seq := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: u, To: v, Weight: weight, seq: seq}
	link(g, u, v, eid)
	if u != v {
		link(g, v, u, eid)
	}

	return eid, nil
}

// link records eid in adjacency[from][to]. Caller holds muEdgeAdj.
func link(g *Graph, from, to, eid string) {
	bucket := g.adjacency[from][to]
	if bucket == nil {
		bucket = make(map[string]struct{})
		g.adjacency[from][to] = bucket
	}
	bucket[eid] = struct{}{}
}

// unlink removes eid from adjacency[from][to] and drops empty buckets.
func unlink(g *Graph, from, to, eid string) {
	bucket := g.adjacency[from][to]
	delete(bucket, eid)
	if len(bucket) == 0 {
		delete(g.adjacency[from], to)
	}
}

// RemoveEdge deletes one edge and its mirror.
// Errors: ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	unlink(g, e.From, e.To, eid)
	if e.From != e.To {
		unlink(g, e.To, e.From, eid)
	}

	return nil
}

// HasEdge reports whether at least one edge u–v exists.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[u][v]) > 0
}

// GetEdge returns the Edge with the given ID, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
// Complexity: O(1).
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Weight returns the weight of the earliest u–v edge.
// Complexity: O(k) in the number of parallel edges.
func (g *Graph) Weight(u, v string) (float64, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var best *Edge
	for eid := range g.adjacency[u][v] {
		if e := g.edges[eid]; best == nil || e.seq < best.seq {
			best = e
		}
	}
	if best == nil {
		return 0, false
	}

	return best.Weight, true
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortBySeq(out)

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

func sortBySeq(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}

// nextEdgeID returns a new unique textual edge ID and its sequence number.
// Safe for concurrent callers; the counter is advanced atomically.
func nextEdgeID(g *Graph) (string, uint64) {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf), n
}
