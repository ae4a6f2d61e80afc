// Package dailypick computes the shared daily selection: every caller on
// the same UTC calendar day derives the same seed and therefore the same
// pick, and the pick rolls over at UTC midnight. Not cryptographically
// secure, and not meant to be.
package dailypick

import "time"

// DateSeed derives the seed for t's UTC calendar date.
func DateSeed(t time.Time) uint32 {
	t = t.UTC()
	return uint32(t.Day()) + uint32(t.Month())*12 + uint32(t.Year())*384
}

// Mix advances a 32-bit xorshift state. Zero is a fixed point, but
// DateSeed never produces zero for a valid date.
func Mix(seed uint32) uint32 {
	seed ^= seed << 13
	seed ^= seed >> 17
	seed ^= seed << 5
	return seed
}

// Pick maps seed onto an index of a list of length n.
// Returns -1 when the list is empty.
func Pick(seed uint32, n int) int {
	if n <= 0 {
		return -1
	}
	return int(Mix(seed) % uint32(n))
}

// PickOne returns the item Pick selects for seed, or false for an
// empty list.
func PickOne[T any](seed uint32, items []T) (T, bool) {
	idx := Pick(seed, len(items))
	if idx < 0 {
		var zero T
		return zero, false
	}
	return items[idx], true
}
