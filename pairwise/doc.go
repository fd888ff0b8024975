// Package pairwise computes optimal alignments of two segment sequences.
//
// 🚀 Modes
//
//	Global  Needleman–Wunsch over the whole of both sequences
//	Local   Smith–Waterman: only the best-scoring contiguous sub-alignment
//	Overlap semi-global: leading and trailing gaps in either sequence are free
//
// ✨ Key features:
//   - affine gaps (Gotoh): open once, extend per further position
//   - three-state DP (match, gap-in-B, gap-in-A) over an (n+1)×(m+1) grid
//   - deterministic ties: match/mismatch > up (gap in B) > left (gap in A)
//   - a reusable engine (AlignFunc) over an arbitrary substitution function,
//     shared with the profile aligner in package msa
//   - normalized distances in [0, 1] for distance matrices
//
// ⚙️ Usage:
//
//	s := scoring.DefaultSCA()
//	aln, err := pairwise.Align(a, b, s, pairwise.WithMode(pairwise.Overlap))
//	d, err := pairwise.Distance(a, b, s)
//
// Empty inputs are never an error: they collapse to an all-gap alignment
// against the other side.
//
// Complexity: O(n·m) time and memory.
package pairwise
