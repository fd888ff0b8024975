package distance_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/phonalign/distance"
	"github.com/katalvlaran/phonalign/matrix"
	"github.com/katalvlaran/phonalign/scoring"
	"github.com/katalvlaran/phonalign/sequence"
)

var sinkDM *matrix.DistanceMatrix

func randomWords(n, length int, seed int64) ([]sequence.Sequence, []string) {
	rng := rand.New(rand.NewSource(seed))
	alphabet := []string{"p", "t", "k", "m", "n", "s", "a", "e", "i", "o", "u"}
	seqs := make([]sequence.Sequence, n)
	taxa := make([]string, n)
	for i := range seqs {
		var b strings.Builder
		for k := 0; k < length; k++ {
			if k > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(alphabet[rng.Intn(len(alphabet))])
		}
		seqs[i] = sequence.Parse(b.String())
		taxa[i] = fmt.Sprintf("t%d", i)
	}

	return seqs, taxa
}

func BenchmarkBuild(b *testing.B) {
	s := scoring.DefaultSCA()
	for _, n := range []int{16, 64} {
		seqs, taxa := randomWords(n, 8, 1)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				dm, err := distance.Build(seqs, taxa, s)
				if err != nil {
					b.Fatal(err)
				}
				sinkDM = dm
			}
		})
	}
}
