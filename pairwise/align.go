package pairwise

import (
	"fmt"

	"github.com/katalvlaran/phonalign"
	"github.com/katalvlaran/phonalign/scoring"
	"github.com/katalvlaran/phonalign/sequence"
)

var (
	// ErrNilScorer is returned when Align or Distance get a nil Scorer.
	ErrNilScorer = fmt.Errorf("pairwise: nil scorer: %w", phonalign.ErrConfiguration)

	// ErrUnknownMode is returned by ParseMode and by Align for an out-of-range Mode.
	ErrUnknownMode = fmt.Errorf("pairwise: unknown mode: %w", phonalign.ErrConfiguration)

	// ErrUnknownNormalization is returned by Distance for an out-of-range Normalization.
	ErrUnknownNormalization = fmt.Errorf("pairwise: unknown normalization: %w", phonalign.ErrConfiguration)
)

// Normalization selects how Distance turns a score into [0, 1].
type Normalization int

const (
	// NormLonger divides by the self-score of the longer sequence:
	// d = 1 - score/self(longer). Equal lengths use the larger self-score.
	NormLonger Normalization = iota

	// NormMean uses both self-scores: d = 1 - 2·score/(self(a)+self(b)).
	NormMean
)

// Options configures Align and Distance.
type Options struct {
	Mode          Mode
	Gaps          *GapModel // nil ⇒ take gaps from the Scorer
	Normalization Normalization
}

// Option mutates Options.
type Option func(*Options)

// WithMode selects Global, Local or Overlap.
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithGapModel overrides the Scorer's gap penalties for this call.
func WithGapModel(g GapModel) Option {
	return func(o *Options) { o.Gaps = &g }
}

// WithNormalization selects the Distance normalization.
func WithNormalization(n Normalization) Option {
	return func(o *Options) { o.Normalization = n }
}

// DefaultOptions returns Global mode, scorer gaps, NormLonger.
func DefaultOptions() Options {
	return Options{Mode: Global, Normalization: NormLonger}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Alignment is an aligned pair. A and B have equal length and use
// sequence.Gap for gaps. For Local alignments only the aligned region is
// kept; [StartA, EndA) and [StartB, EndB) locate it in the inputs.
type Alignment struct {
	A, B         sequence.Sequence
	Score        float64
	Mode         Mode
	StartA, EndA int
	StartB, EndB int
}

// Len returns the number of columns.
func (a Alignment) Len() int { return len(a.A) }

// Mirror swaps both sides.
func (a Alignment) Mirror() Alignment {
	return Alignment{
		A: a.B, B: a.A, Score: a.Score, Mode: a.Mode,
		StartA: a.StartB, EndA: a.EndB, StartB: a.StartA, EndB: a.EndA,
	}
}

// Matches counts columns where both sides hold the same non-gap segment.
func (a Alignment) Matches() int {
	var n int
	for i := range a.A {
		if a.A[i] != sequence.Gap && a.A[i] == a.B[i] {
			n++
		}
	}

	return n
}

// Identity returns matches divided by columns without gaps, or 0 if there
// are none.
func (a Alignment) Identity() float64 {
	var pairs int
	for i := range a.A {
		if a.A[i] != sequence.Gap && a.B[i] != sequence.Gap {
			pairs++
		}
	}
	if pairs == 0 {
		return 0
	}

	return float64(a.Matches()) / float64(pairs)
}

// String renders both rows on two lines.
func (a Alignment) String() string {
	return a.A.String() + "\n" + a.B.String()
}

// Align computes an optimal alignment of a and b under s.
//
// Contract:
//   - s must be non-nil (ErrNilScorer).
//   - Empty inputs give an all-gap alignment; never an error.
//   - Ties follow the package policy: match/mismatch > up > left.
//
// Complexity: O(|a|·|b|) time and memory.
func Align(a, b sequence.Sequence, s scoring.Scorer, opts ...Option) (Alignment, error) {
	if s == nil {
		return Alignment{}, ErrNilScorer
	}
	o := gatherOptions(opts)
	if o.Mode < Global || o.Mode > Overlap {
		return Alignment{}, ErrUnknownMode
	}
	gaps := GapModel{Open: s.GapOpen(), Extend: s.GapExtend()}
	if o.Gaps != nil {
		gaps = *o.Gaps
	}

	path, score := AlignFunc(len(a), len(b), func(i, j int) float64 {
		return s.Score(a[i], b[j])
	}, gaps, o.Mode)

	return BuildAlignment(a, b, path, score, o.Mode), nil
}

// BuildAlignment materializes the rows of path over a and b.
func BuildAlignment(a, b sequence.Sequence, path Path, score float64, mode Mode) Alignment {
	out := Alignment{
		A:     make(sequence.Sequence, len(path)),
		B:     make(sequence.Sequence, len(path)),
		Score: score,
		Mode:  mode,
	}
	startA, startB, endA, endB := -1, -1, 0, 0
	for k, st := range path {
		out.A[k], out.B[k] = sequence.Gap, sequence.Gap
		if st.I >= 0 {
			out.A[k] = a[st.I]
			if startA < 0 {
				startA = st.I
			}
			endA = st.I + 1
		}
		if st.J >= 0 {
			out.B[k] = b[st.J]
			if startB < 0 {
				startB = st.J
			}
			endB = st.J + 1
		}
	}
	out.StartA, out.EndA = max(startA, 0), endA
	out.StartB, out.EndB = max(startB, 0), endB

	return out
}

// Distance aligns a and b and normalizes the score into [0, 1].
// Identical sequences give 0. When the normalizer is ≤ 0 the distance is 1,
// except for two empty sequences (0).
func Distance(a, b sequence.Sequence, s scoring.Scorer, opts ...Option) (float64, error) {
	aln, err := Align(a, b, s, opts...)
	if err != nil {
		return 0, err
	}
	if len(a) == 0 && len(b) == 0 {
		return 0, nil
	}
	o := gatherOptions(opts)

	var norm float64
	selfA, selfB := scoring.SelfScore(s, a), scoring.SelfScore(s, b)
	switch o.Normalization {
	case NormLonger:
		switch {
		case len(a) > len(b):
			norm = selfA
		case len(b) > len(a):
			norm = selfB
		default:
			norm = max(selfA, selfB)
		}
	case NormMean:
		norm = (selfA + selfB) / 2
	default:
		return 0, ErrUnknownNormalization
	}
	if norm <= 0 {
		return 1, nil
	}

	return clamp01(1 - aln.Score/norm), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}

// EditDistance returns the Levenshtein distance between a and b divided by
// the longer length (0 for two empty sequences).
func EditDistance(a, b sequence.Sequence) float64 {
	n, m := len(a), len(b)
	if n == 0 && m == 0 {
		return 0
	}
	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= n; i++ {
		curr[0] = i
		for j := 1; j <= m; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return float64(prev[m]) / float64(max(n, m))
}
