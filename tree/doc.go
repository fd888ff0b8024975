// Package tree builds phylogenetic trees from distance matrices.
//
// Builders:
//
//   - UPGMA: size-weighted average linkage; rooted, binary, ultrametric.
//     Branch length = parent height − child height, heights = merge distance / 2.
//   - NeighborJoining: Saitou–Nei selection with Studier–Keppler branch
//     lengths; the last three clusters meet at a trifurcating root, giving the
//     unrooted 2n−3 edges.
//   - FlatCluster: the same agglomeration cut at a distance threshold, with
//     average, single or complete linkage; returns a Partition.
//
// Determinism:
//
//   - Clusters live in slots ordered by taxon index. A merge of slots i < j
//     stores the new cluster in slot i; the minimum is the first (i, j) found
//     in row-major order, so ties go to the lowest pair.
//
// Newick:
//
//   - Tree.Newick and ParseNewick cover quoted labels, internal names, branch
//     lengths and bracketed comments; lengths are written with the shortest
//     round-trip representation.
//
// Complexity:
//
//   - UPGMA, NJ and FlatCluster: O(n³) time, O(n²) memory.
package tree
