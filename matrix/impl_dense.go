// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Dense is an r×c float64 grid stored row by row; cell (i,j) lives at
// data[i*c+j]. DistanceMatrix keeps its values in one.
type Dense struct {
	r, c int
	data []float64
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense returns a zero-filled rows×cols grid, or ErrInvalidDimensions
// when either side is not positive.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape returns both dimensions.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

func (m *Dense) offset(op string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.%s(%d,%d): %w", op, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns cell (row, col); ErrOutOfRange outside the grid.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.offset("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[off], nil
}

// Set writes v to cell (row, col). Distances must be finite, so NaN and
// ±Inf fail with ErrNaNInf.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.offset("Set", row, col)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("Dense.Set(%d,%d): %w", row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i, or nil outside the grid.
func (m *Dense) Row(i int) []float64 {
	if i < 0 || i >= m.r {
		return nil
	}

	return append([]float64(nil), m.data[i*m.c:(i+1)*m.c]...)
}

// unchecked accessors for package code that already validated indices
func (m *Dense) at(row, col int) float64     { return m.data[row*m.c+col] }
func (m *Dense) set(row, col int, v float64) { m.data[row*m.c+col] = v }

// Clone returns an independent copy.
func (m *Dense) Clone() Matrix {
	return &Dense{r: m.r, c: m.c, data: append([]float64(nil), m.data...)}
}

// String prints one "[a, b, c]" line per row.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.at(i, j))
		}
		b.WriteString("]\n")
	}

	return b.String()
}
