// SPDX-License-Identifier: MIT

package phonalign

import "errors"

// Error kinds shared by every subpackage. Package-level sentinels such as
// tree.ErrTooFewTaxa wrap exactly one of these, so callers can match either
// the precise condition or its kind with errors.Is.
var (
	// ErrConfiguration marks bad or missing scoring/alignment parameters.
	ErrConfiguration = errors.New("phonalign: configuration error")

	// ErrInsufficientData marks inputs with fewer than two sequences or taxa
	// where an operation needs a pair or a tree.
	ErrInsufficientData = errors.New("phonalign: insufficient data")

	// ErrMalformedInput marks structurally invalid inputs: unequal row lengths,
	// unparsable Newick, non-square or asymmetric matrices, invalid graphs.
	ErrMalformedInput = errors.New("phonalign: malformed input")
)
