// Package core provides the thread-safe, undirected community graph consumed
// by link clustering.
//
// The Graph G = (V,E) supports:
//
//   - Weighted vs. unweighted edges (WithWeighted); weights are finite float64
//   - Self-loops (WithLoops) and parallel edges (WithMultiEdges), both off by
//     default so that a plain graph is simple
//   - Constant-time edge operations via nested maps:
//     adjacency[u][v][edgeID] = struct{}{}, mirrored for every edge
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Determinism:
//
//   - Vertices() and NeighborIDs() return IDs sorted ascending.
//   - Edges() and Neighbors() return edges in insertion order.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v string, weight float64) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error    // O(1)
//	HasEdge(u, v string) bool          // O(1)
//	Weight(u, v string) (float64, bool)
//
//	// Queries
//	Neighbors(id string) ([]*Edge, error)
//	NeighborIDs(id string) ([]string, error)
//	Degree(id string) (int, error)
//
// Errors all wrap phonalign.ErrMalformedInput.
package core
