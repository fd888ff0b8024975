package msa

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/phonalign/scoring"
	"github.com/katalvlaran/phonalign/sequence"
)

// Alignment is a multiple alignment; Rows[k] belongs to Taxa[k].
type Alignment struct {
	Taxa []string
	Rows []sequence.Sequence
}

// Len returns the number of columns.
func (a Alignment) Len() int {
	if len(a.Rows) == 0 {
		return 0
	}

	return len(a.Rows[0])
}

// Validate checks that all rows have the same length.
func (a Alignment) Validate() error {
	if len(a.Taxa) != len(a.Rows) {
		return fmt.Errorf("%d taxa for %d rows: %w", len(a.Taxa), len(a.Rows), ErrTaxaMismatch)
	}
	for k, row := range a.Rows {
		if len(row) != a.Len() {
			return fmt.Errorf("row %q has %d columns, want %d: %w", a.Taxa[k], len(row), a.Len(), ErrRaggedAlignment)
		}
	}

	return nil
}

// Column returns the symbols of column c, one per row.
func (a Alignment) Column(c int) []string {
	out := make([]string, len(a.Rows))
	for k, row := range a.Rows {
		out[k] = row[c]
	}

	return out
}

// String renders one "taxon<TAB>row" line per row.
func (a Alignment) String() string {
	var b strings.Builder
	for k, row := range a.Rows {
		b.WriteString(a.Taxa[k])
		b.WriteByte('\t')
		b.WriteString(row.String())
		b.WriteByte('\n')
	}

	return b.String()
}

// stripGapColumns drops columns that are gaps in every row. It returns new
// row slices and leaves rows untouched.
func stripGapColumns(rows []sequence.Sequence) []sequence.Sequence {
	out := make([]sequence.Sequence, len(rows))
	if len(rows) == 0 {
		return out
	}
	width := len(rows[0])
	keep := make([]bool, width)
	kept := 0
	for c := 0; c < width; c++ {
		for _, row := range rows {
			if !sequence.IsGap(row[c]) {
				keep[c] = true
				kept++
				break
			}
		}
	}
	for k, row := range rows {
		out[k] = make(sequence.Sequence, 0, kept)
		for c, seg := range row {
			if keep[c] {
				out[k] = append(out[k], seg)
			}
		}
	}

	return out
}

// SumOfPairs scores an alignment as the sum over all row pairs of their
// induced pairwise score: columns gapped in both rows are dropped, aligned
// segments score s.Score and each maximal gap run in either row costs
// GapOpen + (k-1)·GapExtend.
func SumOfPairs(a Alignment, s scoring.Scorer) (float64, error) {
	if s == nil {
		return 0, ErrNilScorer
	}
	if err := a.Validate(); err != nil {
		return 0, err
	}

	var total float64
	for x := 0; x < len(a.Rows); x++ {
		for y := x + 1; y < len(a.Rows); y++ {
			total += pairScore(a.Rows[x], a.Rows[y], s)
		}
	}

	return total, nil
}

// pairScore is the induced score of one row pair.
func pairScore(x, y sequence.Sequence, s scoring.Scorer) float64 {
	const (
		none = iota
		gapX
		gapY
	)
	var total float64
	state := none
	for c := range x {
		gx, gy := sequence.IsGap(x[c]), sequence.IsGap(y[c])
		switch {
		case gx && gy:
			continue // shared gap: column removed, run state unchanged
		case gx:
			if state == gapX {
				total += s.GapExtend()
			} else {
				total += s.GapOpen()
			}
			state = gapX
		case gy:
			if state == gapY {
				total += s.GapExtend()
			} else {
				total += s.GapOpen()
			}
			state = gapY
		default:
			total += s.Score(x[c], y[c])
			state = none
		}
	}

	return total
}
