package tree

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/phonalign/matrix"
)

// Method selects a tree-building strategy.
type Method int

const (
	// MethodUPGMA selects UPGMA.
	MethodUPGMA Method = iota
	// MethodNJ selects neighbor-joining.
	MethodNJ
)

// String returns the canonical method name.
func (m Method) String() string {
	switch m {
	case MethodUPGMA:
		return "upgma"
	case MethodNJ:
		return "nj"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod accepts "upgma", "nj", "neighbor" and "neighbor-joining".
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "upgma", "":
		return MethodUPGMA, nil
	case "nj", "neighbor", "neighbor-joining", "neighbour":
		return MethodNJ, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
	}
}

// Build runs the builder selected by m.
func (m Method) Build(dm *matrix.DistanceMatrix) (*Tree, error) {
	switch m {
	case MethodUPGMA:
		return UPGMA(dm)
	case MethodNJ:
		return NeighborJoining(dm)
	default:
		return nil, ErrUnknownMethod
	}
}

// Build is m.Build(dm).
func Build(dm *matrix.DistanceMatrix, m Method) (*Tree, error) {
	return m.Build(dm)
}
