// Package core defines Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight on an unweighted graph, or a non-finite weight.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - second edge on the same unordered pair when multi-edges are disabled.
package core

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/phonalign"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID rejects "" as a vertex.
	ErrEmptyVertexID = fmt.Errorf("core: vertex ID is empty: %w", phonalign.ErrMalformedInput)

	// ErrVertexNotFound reports an unknown vertex.
	ErrVertexNotFound = fmt.Errorf("core: vertex not found: %w", phonalign.ErrMalformedInput)

	// ErrEdgeNotFound reports an unknown edge ID.
	ErrEdgeNotFound = fmt.Errorf("core: edge not found: %w", phonalign.ErrMalformedInput)

	// ErrBadWeight indicates a weight the graph cannot hold.
	ErrBadWeight = fmt.Errorf("core: bad edge weight: %w", phonalign.ErrMalformedInput)

	// ErrLoopNotAllowed rejects u == v unless WithLoops is set.
	ErrLoopNotAllowed = fmt.Errorf("core: self-loop not allowed: %w", phonalign.ErrMalformedInput)

	// ErrMultiEdgeNotAllowed rejects a repeated pair unless WithMultiEdges is set.
	ErrMultiEdgeNotAllowed = fmt.Errorf("core: multi-edges not allowed: %w", phonalign.ErrMalformedInput)
)

// Edge represents an undirected connection between two vertices.
//
// From and To keep the order given to AddEdge; the edge is symmetric.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the first endpoint.
	From string

	// To is the second endpoint.
	To string

	// Weight is the similarity weight (0 on unweighted graphs).
	Weight float64

	seq uint64 // insertion order
}

// Other returns the endpoint of e opposite to id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures NewGraph.
type GraphOption func(g *Graph)

// WithWeighted stores edge weights; link clustering then uses them.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges admits repeated pairs.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops admits u–u edges.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory undirected graph.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	weighted   bool
	allowMulti bool
	allowLoops bool

	nextEdgeID uint64 // advanced atomically
	vertices   map[string]struct{}
	edges      map[string]*Edge

	// adjacency[u][v][Edge.ID] = struct{}{}, mirrored for u != v
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph. By default it is unweighted, with no
// loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Weighted reports whether the graph accepts non-zero weights.
func (g *Graph) Weighted() bool { return g.weighted }

// Looped reports whether self-loops are allowed.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are allowed.
func (g *Graph) Multigraph() bool { return g.allowMulti }
