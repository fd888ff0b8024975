// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for distance-matrix validation.
//   - Return sentinel errors wrapped with a validator tag so errors.Is works.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//   - Composite validation follows the fixed priority
//     nil -> shape -> NaN/Inf -> diagonal -> symmetry -> negativity.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf reports the first offending cell.
func cellErrorf(tag string, i, j int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", tag, i, j, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare ensures m is n×n. Assumes m is not nil.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateFinite rejects any NaN or ±Inf cell, scanning row-major.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return cellErrorf("ValidateFinite", i, j, ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal requires |m[i][i]| <= eps. Assumes m is square.
// Complexity: O(n).
func ValidateZeroDiagonal(m Matrix, eps float64) error {
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		if err != nil {
			return err
		}
		if math.Abs(v) > eps {
			return cellErrorf("ValidateZeroDiagonal", i, i, ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetric requires |m[i][j] - m[j][i]| <= eps on the upper triangle.
// Assumes m is square.
// Complexity: O(n²).
func ValidateSymmetric(m Matrix, eps float64) error {
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, err := m.At(i, j)
			if err != nil {
				return err
			}
			b, err := m.At(j, i)
			if err != nil {
				return err
			}
			if math.Abs(a-b) > eps {
				return cellErrorf("ValidateSymmetric", i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateNonNegative rejects off-diagonal cells below -eps.
// Complexity: O(n²).
func ValidateNonNegative(m Matrix, eps float64) error {
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if i == j {
				continue
			}
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			if v < -eps {
				return cellErrorf("ValidateNonNegative", i, j, ErrNegativeDistance)
			}
		}
	}

	return nil
}

// ValidateDistance runs the composite check in priority order.
func ValidateDistance(m Matrix, opts ...Option) error {
	o := gatherOptions(opts)
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if err := ValidateFinite(m); err != nil {
		return err
	}
	if err := ValidateZeroDiagonal(m, o.eps); err != nil {
		return err
	}
	if err := ValidateSymmetric(m, o.eps); err != nil {
		return err
	}
	if o.allowNegative {
		return nil
	}

	return ValidateNonNegative(m, o.eps)
}
