// Package composer generates multi-track compositions from a mood profile.
//
// Every generator takes its random source as a parameter; nothing in this
// package reads global randomness, so the same profile and seed always yield
// the same composition.
package composer

import "math/rand"

// Rand is the random source threaded through every generation call.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a seeded source
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// choice picks a uniformly random element. items must not be empty.
func choice[T any](rng Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// between returns a uniform integer in [lo, hi]
func between(rng Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// chance reports true with probability p
func chance(rng Rand, p float64) bool {
	return rng.Float64() < p
}
