package msa

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/phonalign/sequence"
)

// improvementEps is the minimum sum-of-pairs gain that counts as strict.
const improvementEps = 1e-9

// Refine iteratively realigns random bipartitions of aln.
//
// Each attempt splits the rows into two non-empty sides, strips the columns
// that are all gaps within a side, realigns the two profiles and keeps the
// result only if the sum-of-pairs score strictly improves. Refinement stops
// after WithIterations attempts, or after len(rows) consecutive attempts
// without improvement. The score of the result is never lower than the
// score of aln.
//
// aln must align this Aligner's sequences in input order (ErrForeignAlignment).
func (a *Aligner) Refine(aln Alignment) (Alignment, error) {
	if err := a.checkAlignment(aln); err != nil {
		return Alignment{}, err
	}

	n := len(a.seqs)
	rows := stripGapColumns(aln.Rows)
	best := a.sumOfPairs(rows)
	r := rngFromSeed(a.opts.seed)

	stale, accepted := 0, 0
	for it := 0; it < a.opts.iterations && stale < n; it++ {
		left, right := bipartition(n, r)
		merged, _ := a.mergeProfiles(subset(rows, left), subset(rows, right), nil)
		cand := stripGapColumns(merged.ordered(n))

		score := a.sumOfPairs(cand)
		if score <= best+improvementEps {
			stale++
			continue
		}
		a.opts.logger.Debug("refinement accepted",
			zap.Int("iteration", it),
			zap.Float64("previous", best),
			zap.Float64("score", score))
		rows, best, stale = cand, score, 0
		accepted++
	}
	a.opts.logger.Debug("refinement done",
		zap.Int("accepted", accepted),
		zap.Float64("score", best))

	return Alignment{Taxa: append([]string(nil), a.taxa...), Rows: rows}, nil
}

func (a *Aligner) sumOfPairs(rows []sequence.Sequence) float64 {
	var total float64
	for x := 0; x < len(rows); x++ {
		for y := x + 1; y < len(rows); y++ {
			total += pairScore(rows[x], rows[y], a.scorer)
		}
	}

	return total
}

// checkAlignment verifies that aln holds this Aligner's sequences.
func (a *Aligner) checkAlignment(aln Alignment) error {
	if err := aln.Validate(); err != nil {
		return err
	}
	if len(aln.Rows) != len(a.seqs) {
		return fmt.Errorf("%d rows for %d sequences: %w", len(aln.Rows), len(a.seqs), ErrForeignAlignment)
	}
	for k, row := range aln.Rows {
		if aln.Taxa[k] != a.taxa[k] || !row.Degap().Equal(a.seqs[k]) {
			return fmt.Errorf("row %d (%q): %w", k, aln.Taxa[k], ErrForeignAlignment)
		}
	}

	return nil
}

// SumOfPairs scores aln under this Aligner's scorer.
func (a *Aligner) SumOfPairs(aln Alignment) (float64, error) {
	return SumOfPairs(aln, a.scorer)
}
