package scoring_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/phonalign"
	"github.com/katalvlaran/phonalign/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIdentity checks match/mismatch and gap accessors.
func TestIdentity(t *testing.T) {
	s, err := scoring.NewIdentity(2, -1, -3, -1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, s.Score("a", "a"))
	assert.Equal(t, -1.0, s.Score("a", "b"))
	assert.Equal(t, -3.0, s.GapOpen())
	assert.Equal(t, -1.0, s.GapExtend())
	assert.Equal(t, -5.0, scoring.GapCost(s, 3))
	assert.Equal(t, 0.0, scoring.GapCost(s, 0))
	assert.Equal(t, 6.0, scoring.SelfScore(s, []string{"a", "b", "c"}))
}

// TestIdentity_Invalid rejects NaN and positive gaps.
func TestIdentity_Invalid(t *testing.T) {
	_, err := scoring.NewIdentity(math.NaN(), -1, -2, -1)
	assert.ErrorIs(t, err, scoring.ErrNonFinite)
	assert.ErrorIs(t, err, phonalign.ErrConfiguration)

	_, err = scoring.NewIdentity(1, -1, 2, -1)
	assert.ErrorIs(t, err, scoring.ErrPositiveGap)
}

// TestMatrix_SymmetricLookup mirrors one-sided entries and falls back on unknowns.
func TestMatrix_SymmetricLookup(t *testing.T) {
	m, err := scoring.NewMatrix(map[string]map[string]float64{
		"p": {"p": 3, "b": 1},
		"b": {"b": 3},
	}, scoring.WithDefaultMismatch(-4), scoring.WithGapOpen(-5), scoring.WithGapExtend(-2))
	require.NoError(t, err)

	assert.Equal(t, 1.0, m.Score("p", "b"))
	assert.Equal(t, 1.0, m.Score("b", "p"))
	assert.Equal(t, 3.0, m.Score("p", "p"))
	assert.Equal(t, -4.0, m.Score("p", "x"), "unknown symbol falls back")
	assert.Equal(t, -4.0, m.Score("x", "x"), "no identity configured")
	assert.Equal(t, -5.0, m.GapOpen())
	assert.Equal(t, -2.0, m.GapExtend())
	assert.Equal(t, []string{"b", "p"}, m.Symbols())
}

// TestMatrix_Identity fills equal pairs, including unknown symbols.
func TestMatrix_Identity(t *testing.T) {
	m, err := scoring.NewMatrix(map[string]map[string]float64{"a": {"e": 0.5}}, scoring.WithIdentity(1))
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.Score("a", "a"))
	assert.Equal(t, 1.0, m.Score("q", "q"))
	assert.Equal(t, 0.5, m.Score("e", "a"))
	assert.Equal(t, scoring.DefaultMismatch, m.Score("a", "q"))
}

// TestMatrix_Errors covers contradicting entries and bad values.
func TestMatrix_Errors(t *testing.T) {
	_, err := scoring.NewMatrix(map[string]map[string]float64{
		"a": {"b": 1},
		"b": {"a": 2},
	})
	assert.ErrorIs(t, err, scoring.ErrAsymmetricEntry)

	_, err = scoring.NewMatrix(map[string]map[string]float64{"a": {"a": math.Inf(1)}})
	assert.ErrorIs(t, err, scoring.ErrNonFinite)

	_, err = scoring.NewMatrix(nil, scoring.WithGapExtend(0.5))
	assert.ErrorIs(t, err, scoring.ErrPositiveGap)
}

// TestLoadMatrix decodes the YAML layout.
func TestLoadMatrix(t *testing.T) {
	doc := `
gap_open: -4
gap_extend: -1
default_mismatch: -2
identity: 2
scores:
  p: {b: 1}
`
	m, err := scoring.LoadMatrix(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, -4.0, m.GapOpen())
	assert.Equal(t, -1.0, m.GapExtend())
	assert.Equal(t, 1.0, m.Score("b", "p"))
	assert.Equal(t, 2.0, m.Score("p", "p"))
	assert.Equal(t, -2.0, m.Score("p", "t"))

	_, err = scoring.LoadMatrix(strings.NewReader("bogus_key: 1\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, phonalign.ErrConfiguration))
}

// TestDolgoClass maps common IPA segments.
func TestDolgoClass(t *testing.T) {
	cases := map[string]string{
		"p": "P", "bʰ": "P", "t": "T", "ð": "T", "s": "S", "ʃ": "S",
		"k": "K", "ts": "K", "dʒ": "K", "m": "M", "ŋ": "N", "l": "R",
		"w": "W", "j": "J", "ʔ": "H", "a": "V", "aː": "V", "ə": "V",
		"": "0", "ː": "0", "1": "0",
	}
	for in, want := range cases {
		assert.Equal(t, want, scoring.DolgoClass(in), "segment %q", in)
	}
	assert.Equal(t, []string{"K", "V", "R"}, scoring.Classes([]string{"k", "a", "r"}, scoring.DolgoClass))
}

// TestClassScorer scores through classes.
func TestClassScorer(t *testing.T) {
	sca := scoring.DefaultSCA()
	assert.Equal(t, 10.0, sca.Score("p", "b"), "same class")
	assert.Equal(t, 5.0, sca.Score("a", "o"))
	assert.Equal(t, 2.0, sca.Score("t", "s"))
	assert.Equal(t, -10.0, sca.Score("p", "a"))
	assert.Equal(t, -10.0, sca.GapOpen())
	assert.Equal(t, -5.0, sca.GapExtend())

	_, err := scoring.NewClassScorer(nil, nil)
	assert.ErrorIs(t, err, scoring.ErrNilScorer)

	cs, err := scoring.NewClassScorer(nil, scoring.DefaultIdentity())
	require.NoError(t, err)
	assert.Equal(t, 1.0, cs.Score("k", "g"))
}

// TestWithGaps keeps symbol scores and swaps penalties.
func TestWithGaps(t *testing.T) {
	s, err := scoring.WithGaps(scoring.DefaultSCA(), -4, -2)
	require.NoError(t, err)
	assert.Equal(t, scoring.DefaultSCA().Score("p", "b"), s.Score("p", "b"))
	assert.Equal(t, -4.0, s.GapOpen())
	assert.Equal(t, -2.0, s.GapExtend())

	_, err = scoring.WithGaps(scoring.DefaultIdentity(), 1, -1)
	assert.ErrorIs(t, err, scoring.ErrPositiveGap)
	_, err = scoring.WithGaps(nil, -1, -1)
	assert.ErrorIs(t, err, scoring.ErrNilScorer)
}
