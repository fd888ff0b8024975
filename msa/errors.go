package msa

import (
	"fmt"

	"github.com/katalvlaran/phonalign"
)

var (
	// ErrTooFewSequences is returned by New for fewer than two sequences.
	ErrTooFewSequences = fmt.Errorf("msa: need at least 2 sequences: %w", phonalign.ErrInsufficientData)

	// ErrTaxaMismatch is returned when taxa and sequences differ in count.
	ErrTaxaMismatch = fmt.Errorf("msa: taxa and sequences differ in count: %w", phonalign.ErrMalformedInput)

	// ErrDuplicateTaxon is returned for a repeated taxon name.
	ErrDuplicateTaxon = fmt.Errorf("msa: duplicate taxon: %w", phonalign.ErrMalformedInput)

	// ErrEmptyTaxon is returned for an empty taxon name.
	ErrEmptyTaxon = fmt.Errorf("msa: empty taxon: %w", phonalign.ErrMalformedInput)

	// ErrGappedInput is returned when an input sequence already holds gaps.
	ErrGappedInput = fmt.Errorf("msa: input sequence contains gaps: %w", phonalign.ErrMalformedInput)

	// ErrNilScorer is returned when New gets a nil Scorer.
	ErrNilScorer = fmt.Errorf("msa: nil scorer: %w", phonalign.ErrConfiguration)

	// ErrGuideTree is returned when the guide tree's leaves differ from the taxa.
	ErrGuideTree = fmt.Errorf("msa: guide tree leaves do not match taxa: %w", phonalign.ErrMalformedInput)

	// ErrRaggedAlignment is returned for an alignment whose rows differ in length.
	ErrRaggedAlignment = fmt.Errorf("msa: alignment rows differ in length: %w", phonalign.ErrMalformedInput)

	// ErrForeignAlignment is returned by Refine for an alignment of other sequences.
	ErrForeignAlignment = fmt.Errorf("msa: alignment does not match the aligner input: %w", phonalign.ErrMalformedInput)
)
