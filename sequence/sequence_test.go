package sequence_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/phonalign"
	"github.com/katalvlaran/phonalign/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse covers whitespace and dash delimiters.
func TestParse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want sequence.Sequence
	}{
		{"spaces", "t o x t a", sequence.Sequence{"t", "o", "x", "t", "a"}},
		{"dashes", "t-o-x", sequence.Sequence{"t", "o", "x"}},
		{"mixed", " tʃ  a--i ", sequence.Sequence{"tʃ", "a", "i"}},
		{"empty", "", sequence.Sequence{}},
		{"only delimiters", " - - ", sequence.Sequence{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sequence.Parse(tc.in))
		})
	}
}

// TestParseAligned checks gaps and merge blocks.
func TestParseAligned(t *testing.T) {
	got, err := sequence.ParseAligned("t (t s) - a")
	require.NoError(t, err)
	assert.Equal(t, sequence.Sequence{"t", "ts", "-", "a"}, got)

	got, err = sequence.ParseAligned("( k w ) a")
	require.NoError(t, err)
	assert.Equal(t, sequence.Sequence{"kw", "a"}, got)

	got, err = sequence.ParseAligned("(x) a")
	require.NoError(t, err)
	assert.Equal(t, sequence.Sequence{"x", "a"}, got)
}

// TestParseAligned_Errors verifies malformed blocks are rejected.
func TestParseAligned_Errors(t *testing.T) {
	for _, in := range []string{"(t s", "t s)", "((t) s)", "a ( ) b", "(t - s)"} {
		_, err := sequence.ParseAligned(in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, phonalign.ErrMalformedInput), in)
	}
	_, err := sequence.ParseAligned("a ( ) b")
	assert.ErrorIs(t, err, sequence.ErrEmptyBlock)
	_, err = sequence.ParseAligned("(t - s)")
	assert.ErrorIs(t, err, sequence.ErrGapInBlock)
	assert.ErrorIs(t, err, phonalign.ErrMalformedInput)
}

// TestSequenceHelpers exercises Degap, Gaps, Equal and Clone.
func TestSequenceHelpers(t *testing.T) {
	s := sequence.Sequence{"a", "-", "b", "-"}
	assert.Equal(t, sequence.Sequence{"a", "b"}, s.Degap())
	assert.Equal(t, 2, s.Gaps())
	assert.Equal(t, "a - b -", s.String())

	c := s.Clone()
	assert.True(t, c.Equal(s))
	c[0] = "z"
	assert.False(t, c.Equal(s))
	assert.Equal(t, "a", s[0])

	assert.Equal(t, sequence.Sequence{"-", "-", "-"}, sequence.GapRun(3))
	assert.True(t, sequence.IsGap("-"))
}
