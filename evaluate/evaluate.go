package evaluate

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/phonalign"
)

var (
	// ErrEmptyPartition is returned when either partition has no items.
	ErrEmptyPartition = fmt.Errorf("evaluate: empty partition: %w", phonalign.ErrInsufficientData)
	// ErrItemMismatch is returned when the partitions cover different items.
	ErrItemMismatch = fmt.Errorf("evaluate: item sets differ: %w", phonalign.ErrMalformedInput)
)

// Partition maps item ids to cluster ids.
type Partition[K comparable] map[string]K

// FromClusters flattens a cluster → items listing into a Partition.
// An item listed under more than one cluster lands in an arbitrary one.
func FromClusters[K comparable](clusters map[K][]string) Partition[K] {
	p := make(Partition[K])
	for k, items := range clusters {
		for _, it := range items {
			p[it] = k
		}
	}

	return p
}

// Clusters groups items by cluster id; each member list is sorted.
func (p Partition[K]) Clusters() map[K][]string {
	out := make(map[K][]string)
	for _, it := range p.Items() {
		k := p[it]
		out[k] = append(out[k], it)
	}

	return out
}

// Items returns the item ids in ascending order.
func (p Partition[K]) Items() []string {
	items := make([]string, 0, len(p))
	for it := range p {
		items = append(items, it)
	}
	sort.Strings(items)

	return items
}

// Score is a precision/recall pair with its harmonic mean.
type Score struct {
	Precision float64
	Recall    float64
	F1        float64
}

func newScore(p, r float64) Score {
	s := Score{Precision: p, Recall: r}
	if p+r > 0 {
		s.F1 = 2 * p * r / (p + r)
	}

	return s
}

func (s Score) String() string {
	return fmt.Sprintf("precision=%.4f recall=%.4f f1=%.4f", s.Precision, s.Recall, s.F1)
}

// sameItems checks that gold and test cover an identical, non-empty item set
// and returns it sorted.
func sameItems[G, T comparable](gold Partition[G], test Partition[T]) ([]string, error) {
	if len(gold) == 0 || len(test) == 0 {
		return nil, ErrEmptyPartition
	}
	items := gold.Items()
	if len(items) != len(test) {
		return nil, fmt.Errorf("%w: gold has %d items, test has %d", ErrItemMismatch, len(gold), len(test))
	}
	for _, it := range items {
		if _, ok := test[it]; !ok {
			return nil, fmt.Errorf("%w: %q missing from test", ErrItemMismatch, it)
		}
	}

	return items, nil
}

type cell[G, T comparable] struct {
	g G
	t T
}

// BCubes computes b-cubed precision, recall and F1.
//
// For item i with gold cluster G(i) and test cluster T(i):
// precision_i = |G(i) ∩ T(i)| / |T(i)|, recall_i = |G(i) ∩ T(i)| / |G(i)|.
// A singleton on both sides contributes 1 to each.
func BCubes[G, T comparable](gold Partition[G], test Partition[T]) (Score, error) {
	items, err := sameItems(gold, test)
	if err != nil {
		return Score{}, err
	}

	goldSize := make(map[G]int)
	testSize := make(map[T]int)
	overlap := make(map[cell[G, T]]int)
	for _, it := range items {
		g, t := gold[it], test[it]
		goldSize[g]++
		testSize[t]++
		overlap[cell[G, T]{g, t}]++
	}

	var p, r float64
	for _, it := range items {
		g, t := gold[it], test[it]
		both := float64(overlap[cell[G, T]{g, t}])
		p += both / float64(testSize[t])
		r += both / float64(goldSize[g])
	}
	n := float64(len(items))

	return newScore(p/n, r/n), nil
}

// Pairs computes pairwise precision, recall and F1 over unordered item pairs.
// A side without any co-clustered pair scores 1 on the measure it divides.
func Pairs[G, T comparable](gold Partition[G], test Partition[T]) (Score, error) {
	items, err := sameItems(gold, test)
	if err != nil {
		return Score{}, err
	}

	var goldPairs, testPairs, both int
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			a, b := items[i], items[j]
			inGold := gold[a] == gold[b]
			inTest := test[a] == test[b]
			if inGold {
				goldPairs++
			}
			if inTest {
				testPairs++
			}
			if inGold && inTest {
				both++
			}
		}
	}

	p, r := 1.0, 1.0
	if testPairs > 0 {
		p = float64(both) / float64(testPairs)
	}
	if goldPairs > 0 {
		r = float64(both) / float64(goldPairs)
	}

	return newScore(p, r), nil
}
