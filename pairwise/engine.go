package pairwise

import (
	"fmt"
	"math"
	"strings"
)

// Mode selects the alignment variant.
type Mode int

const (
	// Global aligns both sequences end to end.
	Global Mode = iota

	// Local returns the best-scoring contiguous sub-alignment.
	Local

	// Overlap does not penalize leading or trailing gaps.
	Overlap
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case Global:
		return "global"
	case Local:
		return "local"
	case Overlap:
		return "overlap"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "global", "local", "overlap" (alias "semi-global", "semiglobal").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "global", "":
		return Global, nil
	case "local":
		return Local, nil
	case "overlap", "semi-global", "semiglobal":
		return Overlap, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMode)
	}
}

// GapModel holds affine gap scores (both ≤ 0).
type GapModel struct {
	Open   float64
	Extend float64
}

// Cost returns the score of a gap run of length k.
func (g GapModel) Cost(k int) float64 {
	if k <= 0 {
		return 0
	}

	return g.Open + float64(k-1)*g.Extend
}

// Step is one alignment column. I indexes the first sequence and J the
// second; -1 marks a gap on that side.
type Step struct {
	I, J int
}

// Path is an ordered list of alignment columns.
type Path []Step

// DP states, also used as traceback pointers.
const (
	stMatch byte = iota // diagonal
	stUp                // consume from the first sequence, gap in the second
	stLeft              // consume from the second sequence, gap in the first
	stStart             // local alignment starts here
)

// grid holds one DP layer in row-major order.
type grid struct {
	cols int
	val  []float64
	ptr  []byte
}

func newGrid(rows, cols int) grid {
	return grid{cols: cols, val: make([]float64, rows*cols), ptr: make([]byte, rows*cols)}
}

func (g grid) at(i, j int) int { return i*g.cols + j }

// AlignFunc runs the three-state affine DP over an n×m problem where
// sub(i, j) scores item i of the first side against item j of the second.
// It returns one optimal path and its score.
//
// Algorithm outline:
//  1. M[i][j] = sub(i-1,j-1) + max(M, X, Y)[i-1][j-1]        (Local: also max with 0)
//     X[i][j] = max(M[i-1][j]+open, X[i-1][j]+extend, Y[i-1][j]+open)
//     Y[i][j] = max(M[i][j-1]+open, Y[i][j-1]+extend, X[i][j-1]+open)
//  2. Borders: Global charges leading gaps, Overlap leaves them free,
//     Local forbids them.
//  3. End cell: (n,m) for Global; best cell of the last row or column for
//     Overlap (trailing gaps free, or no overlap at all); best M cell for Local.
//  4. Trace back; ties prefer M, then X (up), then Y (left).
//
// Either side may be empty; the result is then an all-gap path.
//
// Complexity: O(n·m) time and memory.
func AlignFunc(n, m int, sub func(i, j int) float64, gaps GapModel, mode Mode) (Path, float64) {
	if n == 0 || m == 0 {
		return gapOnlyPath(n, m), emptyScore(n, m, gaps, mode)
	}

	var (
		negInf = math.Inf(-1)
		rows   = n + 1
		cols   = m + 1
		mm     = newGrid(rows, cols)
		xx     = newGrid(rows, cols)
		yy     = newGrid(rows, cols)
	)

	// Borders.
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if i > 0 && j > 0 {
				continue
			}
			k := mm.at(i, j)
			mm.val[k], xx.val[k], yy.val[k] = negInf, negInf, negInf
		}
	}
	mm.val[0] = 0
	for i := 1; i < rows; i++ {
		k := xx.at(i, 0)
		switch mode {
		case Global:
			xx.val[k] = gaps.Cost(i)
		case Overlap:
			xx.val[k] = 0
		}
		xx.ptr[k] = stUp
	}
	for j := 1; j < cols; j++ {
		k := yy.at(0, j)
		switch mode {
		case Global:
			yy.val[k] = gaps.Cost(j)
		case Overlap:
			yy.val[k] = 0
		}
		yy.ptr[k] = stLeft
	}

	// Fill.
	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			d := mm.at(i-1, j-1)
			best, from := max3(mm.val[d], xx.val[d], yy.val[d], stMatch, stUp, stLeft)
			k := mm.at(i, j)
			if mode == Local && best <= 0 {
				best, from = 0, stStart
			}
			mm.val[k] = sub(i-1, j-1) + best
			mm.ptr[k] = from

			u := mm.at(i-1, j)
			xx.val[k], xx.ptr[k] = max3(
				mm.val[u]+gaps.Open, xx.val[u]+gaps.Extend, yy.val[u]+gaps.Open,
				stMatch, stUp, stLeft)

			l := mm.at(i, j-1)
			yy.val[k], yy.ptr[k] = max3(
				mm.val[l]+gaps.Open, yy.val[l]+gaps.Extend, xx.val[l]+gaps.Open,
				stMatch, stLeft, stUp)
		}
	}

	layers := [3]grid{mm, xx, yy}
	switch mode {
	case Local:
		return traceLocal(layers, n, m)
	case Overlap:
		return traceOverlap(layers, n, m)
	default:
		k := mm.at(n, m)
		score, state := max3(mm.val[k], xx.val[k], yy.val[k], stMatch, stUp, stLeft)
		path := traceback(layers, n, m, state, func(i, j int) bool { return i == 0 && j == 0 }, nil)
		reverse(path)

		return path, score
	}
}

// traceback walks pointers from (i,j) in state until done reports true.
// The returned path is in reverse order.
func traceback(layers [3]grid, i, j int, state byte, done func(i, j int) bool, path Path) Path {
	for !done(i, j) {
		k := layers[0].at(i, j)
		switch state {
		case stMatch:
			path = append(path, Step{I: i - 1, J: j - 1})
			state = layers[stMatch].ptr[k]
			i, j = i-1, j-1
			if state == stStart {
				return path
			}
		case stUp:
			path = append(path, Step{I: i - 1, J: -1})
			state = layers[stUp].ptr[k]
			i--
		case stLeft:
			path = append(path, Step{I: -1, J: j - 1})
			state = layers[stLeft].ptr[k]
			j--
		default:
			return path
		}
	}

	return path
}

// traceLocal starts at the best M cell (first in row-major order on ties).
func traceLocal(layers [3]grid, n, m int) (Path, float64) {
	mm := layers[stMatch]
	bi, bj, best := 0, 0, 0.0
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if v := mm.val[mm.at(i, j)]; v > best {
				bi, bj, best = i, j, v
			}
		}
	}
	if best <= 0 {
		return Path{}, 0
	}
	path := traceback(layers, bi, bj, stMatch, func(i, j int) bool { return i == 0 || j == 0 }, nil)
	reverse(path)

	return path, best
}

// traceOverlap starts at the best cell of the last row, then of the last
// column; trailing and leading gaps are emitted for free. The corner cells
// (n,0) and (0,m) stand for the all-gap alignment.
func traceOverlap(layers [3]grid, n, m int) (Path, float64) {
	bi, bj, best := n, m, math.Inf(-1)
	var bstate byte
	consider := func(i, j int) {
		k := layers[0].at(i, j)
		v, st := max3(layers[stMatch].val[k], layers[stUp].val[k], layers[stLeft].val[k], stMatch, stUp, stLeft)
		if v > best {
			bi, bj, best, bstate = i, j, v, st
		}
	}
	for j := 1; j <= m; j++ {
		consider(n, j)
	}
	for i := 1; i < n; i++ {
		consider(i, m)
	}
	// Aligning nothing at all scores 0; it wins only when every overlap is negative.
	consider(n, 0)
	consider(0, m)
	if bj == 0 || bi == 0 {
		return gapOnlyPath(n, m), best
	}

	var path Path
	for j := m - 1; j >= bj; j-- {
		path = append(path, Step{I: -1, J: j})
	}
	for i := n - 1; i >= bi; i-- {
		path = append(path, Step{I: i, J: -1})
	}
	path = traceback(layers, bi, bj, bstate, func(i, j int) bool { return i == 0 || j == 0 }, path)

	// Leading gaps: whatever the walk did not consume.
	i, j := 0, 0
	if len(path) > 0 {
		i, j = firstUnconsumed(path, n, m)
	}
	for ; i > 0; i-- {
		path = append(path, Step{I: i - 1, J: -1})
	}
	for ; j > 0; j-- {
		path = append(path, Step{I: -1, J: j - 1})
	}
	reverse(path)

	return path, best
}

// firstUnconsumed returns how many leading items of each side a reversed
// path has not covered yet.
func firstUnconsumed(path Path, n, m int) (int, int) {
	i, j := n, m
	for _, st := range path {
		if st.I >= 0 && st.I < i {
			i = st.I
		}
		if st.J >= 0 && st.J < j {
			j = st.J
		}
	}

	return i, j
}

func gapOnlyPath(n, m int) Path {
	path := make(Path, 0, n+m)
	for i := 0; i < n; i++ {
		path = append(path, Step{I: i, J: -1})
	}
	for j := 0; j < m; j++ {
		path = append(path, Step{I: -1, J: j})
	}

	return path
}

func emptyScore(n, m int, gaps GapModel, mode Mode) float64 {
	if mode != Global {
		return 0
	}

	return gaps.Cost(n + m)
}

// max3 returns the largest value and its tag; earlier arguments win ties.
func max3(a, b, c float64, ta, tb, tc byte) (float64, byte) {
	best, tag := a, ta
	if b > best {
		best, tag = b, tb
	}
	if c > best {
		best, tag = c, tc
	}

	return best, tag
}

func reverse(p Path) {
	for l, r := 0, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
}
