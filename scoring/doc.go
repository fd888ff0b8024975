// Package scoring supplies symbol-pair scores and gap penalties to the
// aligners.
//
// A Scorer is a pure similarity model:
//
//	Score(a, b)  higher is more similar; total over any pair of strings
//	GapOpen()    score (≤ 0) of the first position of a gap run
//	GapExtend()  score (≤ 0) of every further position
//
// A gap run of length k therefore scores GapOpen() + (k-1)·GapExtend().
//
// Implementations:
//
//	Identity     match / mismatch constants
//	Matrix       substitution table, symmetric lookups, default mismatch
//	ClassScorer  maps segments to sound classes, then scores the classes
//
// Unknown symbols never fail: they fall back to the configured default
// mismatch. Invalid parameters (NaN, ±Inf, positive gap penalties,
// contradicting table entries) are rejected at construction with errors
// wrapping phonalign.ErrConfiguration.
package scoring
