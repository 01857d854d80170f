// Package dice provides the randomness abstraction used by item generation,
// combat resolution and reward rolls.
package dice

// Source is the randomness provider for every generation and resolution call.
//
// Implementations draw fresh values on every call. Production code uses the
// crypto source; seeded and fixed sources exist for replays and tests.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
	// Float64 returns a random float in [0, 1).
	Float64() float64
}

// Range returns a uniform integer in the inclusive range [min, max].
//
// Precondition: src must be non-nil.
// Postcondition: min <= result <= max; returns min when max <= min.
func Range(src Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + src.Intn(max-min+1)
}

// Chance reports whether a probability check with probability p succeeds.
//
// Postcondition: always false for p <= 0, always true for p >= 1.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// Pick returns a uniformly chosen index into a collection of length n.
//
// Precondition: n > 0.
func Pick(src Source, n int) int {
	return src.Intn(n)
}
