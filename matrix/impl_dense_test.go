// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/phonalign"
	"github.com/katalvlaran/phonalign/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	require.ErrorIs(t, err, phonalign.ErrMalformedInput) // kind is preserved

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "Dense.Set(2,0)")
}

// TestSetRejectsNonFinite checks the NaN/Inf write policy.
func TestSetRejectsNonFinite(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

// TestCloneIsDeep verifies a clone does not share storage.
func TestCloneIsDeep(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 7.5))

	c := m.Clone()
	require.NoError(t, m.Set(1, 2, 1))

	v, err := c.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.5, v)
	require.Equal(t, 2, c.Rows())
	require.Equal(t, 3, c.Cols())
}

func TestDenseString(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 2.5))

	require.Equal(t, "[0, 2.5]\n[0, 0]\n", m.String())
	require.Equal(t, []float64{0, 2.5}, m.Row(0))
	require.Nil(t, m.Row(2))
}

func TestValidators(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateDistance(m), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateDistance(nil), matrix.ErrNilMatrix)

	sq, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateDistance(sq))

	require.NoError(t, sq.Set(0, 0, 1))
	require.ErrorIs(t, matrix.ValidateDistance(sq), matrix.ErrNonZeroDiagonal)

	require.NoError(t, sq.Set(0, 0, 0))
	require.NoError(t, sq.Set(0, 1, 1))
	require.ErrorIs(t, matrix.ValidateDistance(sq), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateDistance(sq, matrix.WithEpsilon(2)))

	require.NoError(t, sq.Set(0, 1, -1))
	require.NoError(t, sq.Set(1, 0, -1))
	require.ErrorIs(t, matrix.ValidateDistance(sq), matrix.ErrNegativeDistance)
	require.NoError(t, matrix.ValidateDistance(sq, matrix.WithAllowNegative()))
}

func TestWithEpsilonPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
}
