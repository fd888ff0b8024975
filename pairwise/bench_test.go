package pairwise_test

import (
	"testing"

	"github.com/katalvlaran/phonalign/pairwise"
	"github.com/katalvlaran/phonalign/scoring"
	"github.com/katalvlaran/phonalign/sequence"
)

// benchmarkAlign aligns two synthetic sequences of length n in mode.
func benchmarkAlign(b *testing.B, n int, mode pairwise.Mode) {
	alphabet := []string{"p", "t", "k", "a", "i", "u", "m", "n", "s", "r"}
	x := make(sequence.Sequence, n)
	y := make(sequence.Sequence, n)
	for i := 0; i < n; i++ {
		x[i] = alphabet[i%len(alphabet)]
		y[i] = alphabet[(i*3)%len(alphabet)]
	}
	s := scoring.DefaultSCA()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pairwise.Align(x, y, s, pairwise.WithMode(mode)); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

// BenchmarkAlign_Global12 benchmarks word-sized global alignment.
func BenchmarkAlign_Global12(b *testing.B) { benchmarkAlign(b, 12, pairwise.Global) }

// BenchmarkAlign_Global200 benchmarks long global alignment.
func BenchmarkAlign_Global200(b *testing.B) { benchmarkAlign(b, 200, pairwise.Global) }

// BenchmarkAlign_Local200 benchmarks long local alignment.
func BenchmarkAlign_Local200(b *testing.B) { benchmarkAlign(b, 200, pairwise.Local) }
