// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every sentinel wraps one phonalign error kind, so callers may match the
// precise condition (errors.Is(err, ErrAsymmetry)) or its kind
// (errors.Is(err, phonalign.ErrMalformedInput)).
//
// ERROR PRIORITY (enforced in Validate*):
// nil -> shape -> labels -> NaN/Inf -> diagonal -> symmetry -> negativity.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/phonalign"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = fmt.Errorf("matrix: dimensions must be > 0: %w", phonalign.ErrMalformedInput)

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = fmt.Errorf("matrix: index out of range: %w", phonalign.ErrMalformedInput)

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("matrix: matrix is not square: %w", phonalign.ErrMalformedInput)

	// ErrAsymmetry signals that a distance matrix violated symmetry within eps.
	ErrAsymmetry = fmt.Errorf("matrix: matrix is not symmetric within eps: %w", phonalign.ErrMalformedInput)

	// ErrNonZeroDiagonal signals a diagonal entry farther than eps from 0.
	ErrNonZeroDiagonal = fmt.Errorf("matrix: diagonal not zero within eps: %w", phonalign.ErrMalformedInput)

	// ErrNegativeDistance signals an off-diagonal distance below zero.
	ErrNegativeDistance = fmt.Errorf("matrix: negative distance: %w", phonalign.ErrMalformedInput)

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = fmt.Errorf("matrix: NaN or Inf encountered: %w", phonalign.ErrMalformedInput)

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = fmt.Errorf("matrix: nil receiver: %w", phonalign.ErrMalformedInput)

	// ErrLabelCount indicates that the number of labels differs from the matrix order.
	ErrLabelCount = fmt.Errorf("matrix: label count does not match matrix order: %w", phonalign.ErrMalformedInput)

	// ErrDuplicateLabel indicates that a taxon label occurs twice.
	ErrDuplicateLabel = fmt.Errorf("matrix: duplicate label: %w", phonalign.ErrMalformedInput)

	// ErrEmptyLabel indicates an empty taxon label.
	ErrEmptyLabel = fmt.Errorf("matrix: empty label: %w", phonalign.ErrMalformedInput)

	// ErrUnknownLabel indicates a lookup of a label not in the matrix.
	ErrUnknownLabel = fmt.Errorf("matrix: unknown label: %w", phonalign.ErrMalformedInput)

	// ErrParse indicates unreadable serialized matrix text.
	ErrParse = fmt.Errorf("matrix: cannot parse matrix text: %w", phonalign.ErrMalformedInput)

	// ErrUnknownFormat indicates an unsupported serialization format.
	ErrUnknownFormat = fmt.Errorf("matrix: unknown format: %w", phonalign.ErrConfiguration)
)
