// SPDX-License-Identifier: MIT

// Package matrix - labelled distance matrices.
//
// DistanceMatrix couples an ordered, unique taxon list with a square Dense
// buffer. Set writes both (i,j) and (j,i), so a value built through the API is
// symmetric by construction; FromRows validates foreign data before adopting it.
package matrix

import (
	"fmt"
	"math"
)

// DistanceMatrix is a square, symmetric, zero-diagonal matrix of nonnegative
// distances indexed by taxon label.
type DistanceMatrix struct {
	labels []string
	index  map[string]int
	dense  *Dense
}

var _ Matrix = (*DistanceMatrix)(nil)

// NewDistanceMatrix allocates an all-zero matrix over labels.
//
// Errors: ErrInvalidDimensions (no labels), ErrEmptyLabel, ErrDuplicateLabel.
func NewDistanceMatrix(labels []string) (*DistanceMatrix, error) {
	if len(labels) == 0 {
		return nil, ErrInvalidDimensions
	}
	index, err := indexLabels(labels)
	if err != nil {
		return nil, err
	}
	d, err := NewDense(len(labels), len(labels))
	if err != nil {
		return nil, err
	}

	return &DistanceMatrix{labels: append([]string(nil), labels...), index: index, dense: d}, nil
}

// FromRows adopts a row-major table after validating it in priority order:
// shape, labels, NaN/Inf, diagonal, symmetry, negativity.
//
// WithSymmetrize averages mirrored cells instead of rejecting asymmetry;
// WithAllowNegative skips the negativity check; WithEpsilon sets the tolerance.
func FromRows(labels []string, rows [][]float64, opts ...Option) (*DistanceMatrix, error) {
	o := gatherOptions(opts)
	n := len(rows)
	if n == 0 {
		return nil, ErrInvalidDimensions
	}
	for _, row := range rows {
		if len(row) != n {
			return nil, ErrNonSquare
		}
	}
	if len(labels) != n {
		return nil, fmt.Errorf("FromRows: %d labels for order %d: %w", len(labels), n, ErrLabelCount)
	}

	dm, err := NewDistanceMatrix(labels)
	if err != nil {
		return nil, err
	}

	// Stage 1: finite values only.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if math.IsNaN(rows[i][j]) || math.IsInf(rows[i][j], 0) {
				return nil, cellErrorf("FromRows", i, j, ErrNaNInf)
			}
		}
	}
	// Stage 2: diagonal.
	for i := 0; i < n; i++ {
		if math.Abs(rows[i][i]) > o.eps {
			return nil, cellErrorf("FromRows", i, i, ErrNonZeroDiagonal)
		}
	}
	// Stage 3: symmetry, then negativity; write the upper triangle mirrored.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := rows[i][j], rows[j][i]
			v := a
			if math.Abs(a-b) > o.eps {
				if !o.symmetrize {
					return nil, cellErrorf("FromRows", i, j, ErrAsymmetry)
				}
				v = (a + b) / 2
			}
			if v < -o.eps && !o.allowNegative {
				return nil, cellErrorf("FromRows", i, j, ErrNegativeDistance)
			}
			dm.dense.set(i, j, v)
			dm.dense.set(j, i, v)
		}
	}

	return dm, nil
}

func indexLabels(labels []string) (map[string]int, error) {
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		if l == "" {
			return nil, fmt.Errorf("label %d: %w", i, ErrEmptyLabel)
		}
		if _, dup := index[l]; dup {
			return nil, fmt.Errorf("label %q: %w", l, ErrDuplicateLabel)
		}
		index[l] = i
	}

	return index, nil
}

// Len returns the number of taxa.
func (dm *DistanceMatrix) Len() int { return len(dm.labels) }

// Rows implements Matrix.
func (dm *DistanceMatrix) Rows() int { return len(dm.labels) }

// Cols implements Matrix.
func (dm *DistanceMatrix) Cols() int { return len(dm.labels) }

// Labels returns a copy of the taxon order.
func (dm *DistanceMatrix) Labels() []string { return append([]string(nil), dm.labels...) }

// Label returns the i-th taxon name.
func (dm *DistanceMatrix) Label(i int) string { return dm.labels[i] }

// Index returns the position of label or ErrUnknownLabel.
func (dm *DistanceMatrix) Index(label string) (int, error) {
	i, ok := dm.index[label]
	if !ok {
		return 0, fmt.Errorf("%q: %w", label, ErrUnknownLabel)
	}

	return i, nil
}

// At returns d(i, j).
func (dm *DistanceMatrix) At(i, j int) (float64, error) { return dm.dense.At(i, j) }

// Get is the unchecked read used by clustering kernels. Panics out of range.
func (dm *DistanceMatrix) Get(i, j int) float64 { return dm.dense.at(i, j) }

// Distance returns d(a, b) addressed by labels.
func (dm *DistanceMatrix) Distance(a, b string) (float64, error) {
	i, err := dm.Index(a)
	if err != nil {
		return 0, err
	}
	j, err := dm.Index(b)
	if err != nil {
		return 0, err
	}

	return dm.dense.at(i, j), nil
}

// Set writes v at (i, j) and (j, i). Diagonal cells only accept 0; negative
// values are rejected with ErrNegativeDistance.
func (dm *DistanceMatrix) Set(i, j int, v float64) error {
	if i == j && v != 0 {
		return cellErrorf("DistanceMatrix.Set", i, j, ErrNonZeroDiagonal)
	}
	if v < 0 {
		return cellErrorf("DistanceMatrix.Set", i, j, ErrNegativeDistance)
	}
	if err := dm.dense.Set(i, j, v); err != nil {
		return err
	}

	return dm.dense.Set(j, i, v)
}

// Clone returns a deep copy.
func (dm *DistanceMatrix) Clone() Matrix { return dm.CloneDistance() }

// CloneDistance returns a deep copy with its concrete type.
func (dm *DistanceMatrix) CloneDistance() *DistanceMatrix {
	index := make(map[string]int, len(dm.index))
	for k, v := range dm.index {
		index[k] = v
	}

	return &DistanceMatrix{
		labels: append([]string(nil), dm.labels...),
		index:  index,
		dense:  dm.dense.Clone().(*Dense),
	}
}

// RowsCopy returns the matrix as fresh row slices.
func (dm *DistanceMatrix) RowsCopy() [][]float64 {
	out := make([][]float64, dm.Len())
	for i := range out {
		out[i] = dm.dense.Row(i)
	}

	return out
}

// Validate checks the distance invariants. A value built through the API
// always passes; the check exists for matrices mutated through Dense access.
func (dm *DistanceMatrix) Validate(opts ...Option) error {
	if dm == nil {
		return validatorErrorf("Validate", ErrNilMatrix)
	}
	if len(dm.labels) != dm.dense.Rows() {
		return validatorErrorf("Validate", ErrLabelCount)
	}

	return ValidateDistance(dm.dense, opts...)
}

// String renders the labelled matrix for diagnostics.
func (dm *DistanceMatrix) String() string {
	return fmt.Sprintf("%v\n%s", dm.labels, dm.dense.String())
}
