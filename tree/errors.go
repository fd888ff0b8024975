package tree

import (
	"fmt"

	"github.com/katalvlaran/phonalign"
)

var (
	// ErrTooFewTaxa is returned when a matrix has fewer than 2 taxa.
	ErrTooFewTaxa = fmt.Errorf("tree: need at least 2 taxa: %w", phonalign.ErrInsufficientData)

	// ErrNilMatrix is returned for a nil distance matrix.
	ErrNilMatrix = fmt.Errorf("tree: nil distance matrix: %w", phonalign.ErrMalformedInput)

	// ErrUnknownMethod is returned by ParseMethod and Build for an unknown Method.
	ErrUnknownMethod = fmt.Errorf("tree: unknown method: %w", phonalign.ErrConfiguration)

	// ErrUnknownLinkage is returned by ParseLinkage and FlatCluster for an unknown Linkage.
	ErrUnknownLinkage = fmt.Errorf("tree: unknown linkage: %w", phonalign.ErrConfiguration)

	// ErrNewick is returned for unparsable Newick text.
	ErrNewick = fmt.Errorf("tree: malformed newick: %w", phonalign.ErrMalformedInput)
)
