package maze

import "math/rand"

// defaultRNGSeed is used when callers pass seed 0 or a nil *rand.Rand.
const defaultRNGSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
//
// math/rand.Rand is not goroutine-safe; use one per Generate call.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// shuffle performs an in-place Fisher–Yates shuffle of a using rng.
func shuffle[T any](a []T, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// chance reports a Bernoulli trial with success probability p.
func chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}
