// SPDX-License-Identifier: MIT

package matrix

// Matrix is a mutable 2-D float64 grid with bounds-checked access.
// Dense and DistanceMatrix implement it.
type Matrix interface {
	Rows() int
	Cols() int

	// At and Set fail with ErrOutOfRange outside the grid.
	At(i, j int) (float64, error)
	Set(i, j int, v float64) error

	Clone() Matrix
}
