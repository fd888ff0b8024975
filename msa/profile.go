package msa

import (
	"github.com/katalvlaran/phonalign/pairwise"
	"github.com/katalvlaran/phonalign/scoring"
	"github.com/katalvlaran/phonalign/sequence"
)

// profile is a partial alignment: rows[k] is the aligned form of input
// sequence members[k].
type profile struct {
	members []int
	rows    []sequence.Sequence
}

func leafProfile(idx int, seq sequence.Sequence) *profile {
	return &profile{members: []int{idx}, rows: []sequence.Sequence{seq.Clone()}}
}

func (p *profile) width() int {
	if len(p.rows) == 0 {
		return 0
	}

	return len(p.rows[0])
}

// symCount is one symbol of a column with its multiplicity.
type symCount struct {
	sym string
	n   int
}

// column summarizes one profile column. Symbols keep first-seen row order.
type column struct {
	syms []symCount
	gaps int
}

func (p *profile) columns() []column {
	cols := make([]column, p.width())
	for c := range cols {
		for _, row := range p.rows {
			seg := row[c]
			if sequence.IsGap(seg) {
				cols[c].gaps++
				continue
			}
			found := false
			for k := range cols[c].syms {
				if cols[c].syms[k].sym == seg {
					cols[c].syms[k].n++
					found = true
					break
				}
			}
			if !found {
				cols[c].syms = append(cols[c].syms, symCount{sym: seg, n: 1})
			}
		}
	}

	return cols
}

// positions maps every row and column to the residue index in the
// ungapped sequence, or -1 for a gap.
func (p *profile) positions() [][]int {
	out := make([][]int, len(p.rows))
	for k, row := range p.rows {
		out[k] = make([]int, len(row))
		next := 0
		for c, seg := range row {
			if sequence.IsGap(seg) {
				out[k][c] = -1
				continue
			}
			out[k][c] = next
			next++
		}
	}

	return out
}

// substitution returns the column-by-column score table of p against q:
// the average over all row pairs of the symbol score, with a residue facing
// a gap scoring GapExtend and a gap facing a gap scoring 0.
func substitution(p, q *profile, s scoring.Scorer) [][]float64 {
	pc, qc := p.columns(), q.columns()
	rowsP, rowsQ := float64(len(p.rows)), float64(len(q.rows))
	ext := s.GapExtend()

	out := make([][]float64, len(pc))
	for i, ci := range pc {
		out[i] = make([]float64, len(qc))
		resP := rowsP - float64(ci.gaps)
		for j, cj := range qc {
			var sum float64
			for _, a := range ci.syms {
				for _, b := range cj.syms {
					sum += float64(a.n*b.n) * s.Score(a.sym, b.sym)
				}
			}
			resQ := rowsQ - float64(cj.gaps)
			sum += ext * (float64(ci.gaps)*resQ + resP*float64(cj.gaps))
			out[i][j] = sum / (rowsP * rowsQ)
		}
	}

	return out
}

// merge aligns p against q globally under sub and the scorer's gaps and
// returns the combined profile, p's rows first.
func merge(p, q *profile, sub [][]float64, gaps pairwise.GapModel) (*profile, float64) {
	path, score := pairwise.AlignFunc(p.width(), q.width(), func(i, j int) float64 {
		return sub[i][j]
	}, gaps, pairwise.Global)

	out := &profile{
		members: append(append([]int(nil), p.members...), q.members...),
		rows:    make([]sequence.Sequence, 0, len(p.rows)+len(q.rows)),
	}
	for _, side := range []struct {
		prof  *profile
		index func(pairwise.Step) int
	}{
		{p, func(st pairwise.Step) int { return st.I }},
		{q, func(st pairwise.Step) int { return st.J }},
	} {
		for _, row := range side.prof.rows {
			aligned := make(sequence.Sequence, len(path))
			for k, st := range path {
				if c := side.index(st); c >= 0 {
					aligned[k] = row[c]
				} else {
					aligned[k] = sequence.Gap
				}
			}
			out.rows = append(out.rows, aligned)
		}
	}

	return out, score
}

// subset builds a profile of the given alignment rows with their shared
// all-gap columns stripped.
func subset(rows []sequence.Sequence, idx []int) *profile {
	picked := make([]sequence.Sequence, len(idx))
	for k, i := range idx {
		picked[k] = rows[i]
	}

	return &profile{members: append([]int(nil), idx...), rows: stripGapColumns(picked)}
}

// ordered returns the profile rows rearranged into member order 0..n-1.
func (p *profile) ordered(n int) []sequence.Sequence {
	out := make([]sequence.Sequence, n)
	for k, m := range p.members {
		out[m] = p.rows[k]
	}

	return out
}
