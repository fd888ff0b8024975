// Package linkcomm implements link-community clustering by partition density.
//
// Every edge starts as its own community. Pairs of edges that share a node
// are ranked by the similarity of their non-shared endpoints (Jaccard of
// inclusive neighbourhoods, or Tanimoto of weighted adjacency vectors) and
// merged from most to least similar. After the last merge of each similarity
// level the partition density
//
//	D = 2/|E| · Σ_c m_c(m_c − n_c + 1) / ((n_c − 2)(n_c − 1))
//
// is recorded (communities with n_c <= 2 contribute 0). The first level that
// reaches the maximum D wins; a state in the middle of a level is never
// reported.
//
// Communities live in an arena indexed by int with an edge → community array;
// merges move the smaller community into the larger one.
package linkcomm
