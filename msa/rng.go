package msa

import "math/rand"

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
// math/rand.Rand is not goroutine-safe; refinement owns its stream.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// bipartition draws a random split of n >= 2 rows into two non-empty sides.
// Each row joins side A with probability 1/2; trivial draws are redrawn.
func bipartition(n int, r *rand.Rand) (left, right []int) {
	for {
		left, right = left[:0], right[:0]
		for i := 0; i < n; i++ {
			if r.Intn(2) == 0 {
				left = append(left, i)
			} else {
				right = append(right, i)
			}
		}
		if len(left) > 0 && len(right) > 0 {
			return left, right
		}
	}
}
