package matrix_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/phonalign"
	"github.com/katalvlaran/phonalign/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var abc = []string{"A", "B", "C"}

func fixture(t *testing.T) *matrix.DistanceMatrix {
	t.Helper()
	dm, err := matrix.FromRows(abc, [][]float64{
		{0, 2, 4},
		{2, 0, 4},
		{4, 4, 0},
	})
	require.NoError(t, err)

	return dm
}

func TestFromRows(t *testing.T) {
	dm := fixture(t)
	assert.Equal(t, 3, dm.Len())
	assert.Equal(t, abc, dm.Labels())

	d, err := dm.Distance("B", "C")
	require.NoError(t, err)
	assert.Equal(t, 4.0, d)

	_, err = dm.Distance("A", "Z")
	require.ErrorIs(t, err, matrix.ErrUnknownLabel)

	require.NoError(t, dm.Validate())
}

func TestFromRowsErrorPriority(t *testing.T) {
	cases := []struct {
		name   string
		labels []string
		rows   [][]float64
		want   error
	}{
		{"empty", nil, nil, matrix.ErrInvalidDimensions},
		{"ragged", abc, [][]float64{{0, 1, 1}, {1, 0}, {1, 1, 0}}, matrix.ErrNonSquare},
		{"labels", []string{"A", "B"}, [][]float64{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}}, matrix.ErrLabelCount},
		{"duplicate", []string{"A", "A", "C"}, [][]float64{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}}, matrix.ErrDuplicateLabel},
		{"empty label", []string{"A", "", "C"}, [][]float64{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}}, matrix.ErrEmptyLabel},
		{"nan before diagonal", abc, [][]float64{{1, math.NaN(), 1}, {1, 0, 1}, {1, 1, 0}}, matrix.ErrNaNInf},
		{"diagonal before symmetry", abc, [][]float64{{1, 2, 1}, {1, 0, 1}, {1, 1, 0}}, matrix.ErrNonZeroDiagonal},
		{"asymmetric", abc, [][]float64{{0, 2, 1}, {1, 0, 1}, {1, 1, 0}}, matrix.ErrAsymmetry},
		{"negative", abc, [][]float64{{0, -1, 1}, {-1, 0, 1}, {1, 1, 0}}, matrix.ErrNegativeDistance},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.FromRows(tc.labels, tc.rows)
			require.ErrorIs(t, err, tc.want)
			require.True(t, errors.Is(err, phonalign.ErrMalformedInput))
		})
	}
}

func TestFromRowsOptions(t *testing.T) {
	rows := [][]float64{{0, 1, 3}, {3, 0, 1}, {3, 1, 0}}
	dm, err := matrix.FromRows(abc, rows, matrix.WithSymmetrize())
	require.NoError(t, err)
	d, err := dm.Distance("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 2.0, d)

	neg := [][]float64{{0, -0.5}, {-0.5, 0}}
	_, err = matrix.FromRows([]string{"x", "y"}, neg, matrix.WithAllowNegative())
	require.NoError(t, err)
}

func TestSetKeepsSymmetry(t *testing.T) {
	dm, err := matrix.NewDistanceMatrix(abc)
	require.NoError(t, err)

	require.NoError(t, dm.Set(0, 2, 1.5))
	v, err := dm.At(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	require.ErrorIs(t, dm.Set(1, 1, 1), matrix.ErrNonZeroDiagonal)
	require.ErrorIs(t, dm.Set(0, 1, -1), matrix.ErrNegativeDistance)
	require.ErrorIs(t, dm.Set(0, 3, 1), matrix.ErrOutOfRange)

	cp := dm.CloneDistance()
	require.NoError(t, dm.Set(0, 2, 9))
	assert.Equal(t, 1.5, cp.Get(0, 2))
}

func TestWriteRead(t *testing.T) {
	dm := fixture(t)
	for _, f := range []matrix.Format{matrix.FormatWhitespace, matrix.FormatCSV} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, dm.Write(&buf, f))

			back, err := matrix.ReadDistance(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, dm.Labels(), back.Labels())
			assert.Equal(t, dm.RowsCopy(), back.RowsCopy())
		})
	}
}

func TestWriteWhitespaceLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fixture(t).Write(&buf, matrix.FormatWhitespace))
	assert.Equal(t, "3\nA 0 2 4\nB 2 0 4\nC 4 4 0\n", buf.String())

	buf.Reset()
	require.NoError(t, fixture(t).Write(&buf, matrix.FormatCSV))
	assert.Equal(t, "taxon,A,B,C\nA,0,2,4\nB,2,0,4\nC,4,4,0\n", buf.String())
}

func TestReadErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		f    matrix.Format
		want error
	}{
		{"empty", "", matrix.FormatWhitespace, matrix.ErrParse},
		{"bad count", "x\n", matrix.FormatWhitespace, matrix.ErrParse},
		{"short row", "2\nA 0 1\nB 1\n", matrix.FormatWhitespace, matrix.ErrParse},
		{"missing row", "2\nA 0 1\n", matrix.FormatWhitespace, matrix.ErrParse},
		{"bad value", "2\nA 0 x\nB 1 0\n", matrix.FormatWhitespace, matrix.ErrParse},
		{"trailing", "1\nA 0\nB\n", matrix.FormatWhitespace, matrix.ErrParse},
		{"asymmetric", "2\nA 0 1\nB 2 0\n", matrix.FormatWhitespace, matrix.ErrAsymmetry},
		{"csv label mismatch", "taxon,A,B\nA,0,1\nC,1,0\n", matrix.FormatCSV, matrix.ErrParse},
		{"csv ragged", "taxon,A,B\nA,0\nB,1,0\n", matrix.FormatCSV, matrix.ErrParse},
		{"unknown format", "1\nA 0\n", matrix.Format(9), matrix.ErrUnknownFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.ReadDistance(strings.NewReader(tc.in), tc.f)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := matrix.ParseFormat("PHYLIP")
	require.NoError(t, err)
	assert.Equal(t, matrix.FormatWhitespace, f)

	f, err = matrix.ParseFormat("csv")
	require.NoError(t, err)
	assert.Equal(t, matrix.FormatCSV, f)

	_, err = matrix.ParseFormat("xml")
	require.ErrorIs(t, err, phonalign.ErrConfiguration)
}
