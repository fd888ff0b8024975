package msa_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/phonalign/msa"
	"github.com/katalvlaran/phonalign/scoring"
	"github.com/katalvlaran/phonalign/sequence"
)

var sinkAln msa.Alignment

func benchWords(n int) ([]sequence.Sequence, []string) {
	rng := rand.New(rand.NewSource(3))
	base := sequence.Parse("v o l o d y m y r")
	alphabet := []string{"p", "t", "k", "a", "e", "i", "o"}
	seqs := make([]sequence.Sequence, n)
	taxa := make([]string, n)
	for i := range seqs {
		w := base.Clone()
		for k := range w {
			if rng.Intn(4) == 0 {
				w[k] = alphabet[rng.Intn(len(alphabet))]
			}
		}
		seqs[i] = w[:len(w)-rng.Intn(3)]
		taxa[i] = fmt.Sprintf("t%d", i)
	}

	return seqs, taxa
}

func BenchmarkAligner(b *testing.B) {
	seqs, taxa := benchWords(12)
	a, err := msa.New(seqs, taxa, scoring.DefaultSCA(), msa.WithIterations(20))
	if err != nil {
		b.Fatal(err)
	}
	modes := map[string]func() (msa.Alignment, error){
		"progressive": a.Progressive,
		"library":     a.Library,
	}
	for name, run := range modes {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				aln, err := run()
				if err != nil {
					b.Fatal(err)
				}
				sinkAln = aln
			}
		})
	}
}
