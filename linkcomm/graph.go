package linkcomm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/phonalign"
	"github.com/katalvlaran/phonalign/core"
	"github.com/katalvlaran/phonalign/matrix"
)

// ErrNilMatrix is returned by FromMatrix for a nil matrix.
var ErrNilMatrix = fmt.Errorf("linkcomm: nil distance matrix: %w", phonalign.ErrMalformedInput)

// FromMatrix builds the weighted threshold graph of dm: one vertex per taxon
// and an edge i–j of weight 1 − d(i,j) for every pair with d(i,j) <= threshold.
// Pairs are visited in row-major upper-triangle order, so edge IDs are stable.
func FromMatrix(dm *matrix.DistanceMatrix, threshold float64) (*core.Graph, error) {
	if dm == nil {
		return nil, ErrNilMatrix
	}
	if math.IsNaN(threshold) {
		return nil, fmt.Errorf("linkcomm: NaN threshold: %w", phonalign.ErrConfiguration)
	}

	g := core.NewGraph(core.WithWeighted())
	labels := dm.Labels()
	for _, l := range labels {
		if err := g.AddVertex(l); err != nil {
			return nil, fmt.Errorf("linkcomm: AddVertex(%s): %w", l, err)
		}
	}
	for i := 0; i < len(labels); i++ {
		for j := i + 1; j < len(labels); j++ {
			d := dm.Get(i, j)
			if d > threshold {
				continue
			}
			if _, err := g.AddEdge(labels[i], labels[j], 1-d); err != nil {
				return nil, fmt.Errorf("linkcomm: AddEdge(%s, %s): %w", labels[i], labels[j], err)
			}
		}
	}

	return g, nil
}
