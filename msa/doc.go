// Package msa aligns N >= 2 segment sequences.
//
// Modes:
//
//   - Progressive: pairwise distances build a guide tree (UPGMA by default,
//     or WithGuideTree); the tree is walked in post-order with an explicit
//     stack and child profiles are merged by profile-profile alignment on the
//     pairwise DP engine.
//   - Library: every pair is aligned first (in parallel); aligned residue
//     pairs enter a library weighted by the pair's percent identity,
//     optionally extended through third sequences. A progressive pass then
//     adds WithLibraryWeight × average library support to each column score.
//   - Refine: random bipartitions of an alignment are realigned as two
//     profiles and kept only if the sum-of-pairs score strictly improves.
//
// Column scores average the pairwise symbol scores over all row pairs; a
// residue facing a gap contributes the gap-extend score.
//
// Output rows follow the input order, have equal length and no all-gap
// column; each row without gaps equals its input sequence.
package msa
