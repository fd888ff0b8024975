// Package distance builds labelled distance matrices from segment sequences.
//
// Every unordered pair (i, j), i < j, is an independent job. Jobs fan out over
// an errgroup bounded by WithWorkers and write into a pre-indexed slot; the
// matrix is filled afterwards in index order, so the result never depends on
// scheduling.
//
// Metrics:
//
//	MetricAlignment  pairwise.Distance under a Scorer (default)
//	MetricEdit       normalized Levenshtein distance
//	MetricHamming    p-distance over already-aligned, equal-length rows
package distance
