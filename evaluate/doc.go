// Package evaluate compares a predicted partition against a gold one.
//
// Both measures are generic over the cluster-id types of the two sides, so a
// gold partition with string cognate labels can be scored against integer
// clusters from tree.FlatCluster or linkcomm without conversion. Cluster ids
// are only compared for equality; relabelling either side never changes a
// score.
//
//   - BCubes: per-item precision and recall averaged over all items.
//   - Pairs: precision and recall over unordered co-clustered item pairs.
//
// Both functions are pure. Items are visited in sorted order so sums are
// reproducible bit for bit.
package evaluate
