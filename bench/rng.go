// SPDX-License-Identifier: MIT
// Package bench - deterministic dataset generation.
//
// math/rand.Rand is not goroutine-safe; Generate creates its own stream per call.
package bench

import "math/rand"

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

// ResolveSeed returns the seed a stream is actually drawn from:
// seed == 0 ⇒ defaultSeed, anything else verbatim.
func ResolveSeed(seed int64) int64 {
	if seed == 0 {
		return defaultSeed
	}

	return seed
}

// rngFromSeed returns a deterministic *rand.Rand for ResolveSeed(seed).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(ResolveSeed(seed)))
}

// Generate returns n pseudo-random ints in [0, bound) drawn from the seed's stream.
// Same (n, bound, seed) ⇒ same slice.
//
// Errors:
//   - ErrBadSize: n ≤ 0 or bound ≤ 0.
func Generate(n, bound int, seed int64) ([]int, error) {
	if n <= 0 || bound <= 0 {
		return nil, ErrBadSize
	}
	r := rngFromSeed(seed)
	out := make([]int, n)
	for i := range out {
		out[i] = r.Intn(bound)
	}

	return out, nil
}
