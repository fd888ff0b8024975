package distance_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/phonalign/distance"
	"github.com/katalvlaran/phonalign/matrix"
	"github.com/katalvlaran/phonalign/sequence"
)

// ExampleBuild computes an edit-distance matrix and prints it in the
// PHYLIP-like whitespace layout.
func ExampleBuild() {
	seqs := []sequence.Sequence{
		sequence.Parse("a b c d"),
		sequence.Parse("a b c e"),
		sequence.Parse("x y"),
	}
	dm, err := distance.Build(seqs, []string{"A", "B", "C"}, nil, distance.WithMetric(distance.MetricEdit))
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = dm.Write(os.Stdout, matrix.FormatWhitespace)
	// Output:
	// 3
	// A 0 0.25 1
	// B 0.25 0 1
	// C 1 1 0
}
