package scoring

import (
	"fmt"
	"math"

	"github.com/katalvlaran/phonalign"
)

var (
	// ErrNonFinite is returned when a score or penalty is NaN or ±Inf.
	ErrNonFinite = fmt.Errorf("scoring: non-finite score: %w", phonalign.ErrConfiguration)

	// ErrPositiveGap is returned when a gap penalty is > 0.
	ErrPositiveGap = fmt.Errorf("scoring: gap penalties must be <= 0: %w", phonalign.ErrConfiguration)

	// ErrAsymmetricEntry is returned when (a,b) and (b,a) are both given
	// with different values.
	ErrAsymmetricEntry = fmt.Errorf("scoring: contradicting symmetric entries: %w", phonalign.ErrConfiguration)

	// ErrNilScorer is returned when a nil inner Scorer is supplied.
	ErrNilScorer = fmt.Errorf("scoring: nil scorer: %w", phonalign.ErrConfiguration)
)

// Scorer scores symbol pairs and gaps. Implementations must be total,
// deterministic and safe for concurrent use.
type Scorer interface {
	// Score returns the similarity of a and b.
	Score(a, b string) float64
	// GapOpen returns the score of opening a gap (≤ 0).
	GapOpen() float64
	// GapExtend returns the score of each additional gap position (≤ 0).
	GapExtend() float64
}

// GapCost returns the score of a gap run of length k under s.
func GapCost(s Scorer, k int) float64 {
	if k <= 0 {
		return 0
	}

	return s.GapOpen() + float64(k-1)*s.GapExtend()
}

// SelfScore returns the score of aligning seq against itself without gaps.
func SelfScore(s Scorer, seq []string) float64 {
	var total float64
	for _, seg := range seq {
		total += s.Score(seg, seg)
	}

	return total
}

// Identity scores equal symbols with Match and different ones with Mismatch.
type Identity struct {
	match, mismatch float64
	open, extend    float64
}

var _ Scorer = Identity{}

// NewIdentity validates the parameters and returns an Identity scorer.
func NewIdentity(match, mismatch, gapOpen, gapExtend float64) (Identity, error) {
	if err := checkFinite(match, mismatch, gapOpen, gapExtend); err != nil {
		return Identity{}, err
	}
	if err := checkGaps(gapOpen, gapExtend); err != nil {
		return Identity{}, err
	}

	return Identity{match: match, mismatch: mismatch, open: gapOpen, extend: gapExtend}, nil
}

// DefaultIdentity is match 1, mismatch -1, gap open -2, gap extend -1.
func DefaultIdentity() Identity {
	return Identity{match: 1, mismatch: -1, open: -2, extend: -1}
}

// Score implements Scorer.
func (s Identity) Score(a, b string) float64 {
	if a == b {
		return s.match
	}

	return s.mismatch
}

// GapOpen implements Scorer.
func (s Identity) GapOpen() float64 { return s.open }

// GapExtend implements Scorer.
func (s Identity) GapExtend() float64 { return s.extend }

func checkFinite(vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}

	return nil
}

func checkGaps(open, extend float64) error {
	if open > 0 || extend > 0 {
		return ErrPositiveGap
	}

	return nil
}

// gapped replaces the gap penalties of an inner Scorer.
type gapped struct {
	Scorer
	open, extend float64
}

func (g gapped) GapOpen() float64   { return g.open }
func (g gapped) GapExtend() float64 { return g.extend }

// WithGaps returns s with its gap penalties replaced.
func WithGaps(s Scorer, open, extend float64) (Scorer, error) {
	if s == nil {
		return nil, ErrNilScorer
	}
	if err := checkFinite(open, extend); err != nil {
		return nil, err
	}
	if err := checkGaps(open, extend); err != nil {
		return nil, err
	}

	return gapped{Scorer: s, open: open, extend: extend}, nil
}
