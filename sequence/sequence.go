package sequence

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/phonalign"
)

// Gap is the gap symbol used in every aligned row.
const Gap = "-"

var (
	// ErrUnbalancedBlock is returned by ParseAligned on a "(" without ")" or
	// the other way round, or on nested blocks.
	ErrUnbalancedBlock = fmt.Errorf("sequence: unbalanced merge block: %w", phonalign.ErrMalformedInput)

	// ErrEmptyBlock is returned by ParseAligned on "()".
	ErrEmptyBlock = fmt.Errorf("sequence: empty merge block: %w", phonalign.ErrMalformedInput)

	// ErrGapInBlock is returned when a gap symbol appears inside a merge block.
	ErrGapInBlock = fmt.Errorf("sequence: gap inside merge block: %w", phonalign.ErrMalformedInput)
)

// Sequence is an ordered list of segments.
type Sequence []string

// Parse splits s on whitespace and "-" into segments. Empty fields are
// dropped, so "t  o--x" and "t o x" give the same Sequence.
// Complexity: O(len(s)).
func Parse(s string) Sequence {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-'
	})
	if len(fields) == 0 {
		return Sequence{}
	}

	return Sequence(fields)
}

// ParseAligned splits an aligned row on whitespace. A "-" token is a gap;
// tokens between "(" and ")" are concatenated into one merged segment. The
// parentheses may stand alone or stick to the first/last token of the block.
func ParseAligned(s string) (Sequence, error) {
	var (
		out     Sequence
		block   strings.Builder
		inBlock bool
		blockN  int
	)
	for _, tok := range strings.Fields(s) {
		open := strings.HasPrefix(tok, "(")
		if open {
			if inBlock {
				return nil, ErrUnbalancedBlock
			}
			inBlock, blockN = true, 0
			block.Reset()
			tok = tok[1:]
		}
		closing := strings.HasSuffix(tok, ")")
		if closing {
			if !inBlock {
				return nil, ErrUnbalancedBlock
			}
			tok = tok[:len(tok)-1]
		}
		if strings.ContainsAny(tok, "()") {
			return nil, ErrUnbalancedBlock
		}

		switch {
		case inBlock:
			if tok == Gap {
				return nil, ErrGapInBlock
			}
			if tok != "" {
				block.WriteString(tok)
				blockN++
			}
			if closing {
				if blockN == 0 {
					return nil, ErrEmptyBlock
				}
				out = append(out, block.String())
				inBlock = false
			}
		case tok != "":
			out = append(out, tok)
		}
	}
	if inBlock {
		return nil, ErrUnbalancedBlock
	}
	if out == nil {
		out = Sequence{}
	}

	return out, nil
}

// String joins the segments with single spaces.
func (s Sequence) String() string { return strings.Join(s, " ") }

// Len returns the number of positions, gaps included.
func (s Sequence) Len() int { return len(s) }

// Clone returns an independent copy.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)

	return out
}

// Equal reports whether both sequences hold the same segments in order.
func (s Sequence) Equal(o Sequence) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// Degap returns s without gap symbols.
func (s Sequence) Degap() Sequence {
	out := make(Sequence, 0, len(s))
	for _, seg := range s {
		if seg != Gap {
			out = append(out, seg)
		}
	}

	return out
}

// Gaps counts gap symbols in s.
func (s Sequence) Gaps() int {
	var n int
	for _, seg := range s {
		if seg == Gap {
			n++
		}
	}

	return n
}

// IsGap reports whether seg is the gap symbol.
func IsGap(seg string) bool { return seg == Gap }

// GapRun returns a sequence of n gaps.
func GapRun(n int) Sequence {
	out := make(Sequence, n)
	for i := range out {
		out[i] = Gap
	}

	return out
}
