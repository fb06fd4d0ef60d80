package collections

import "math/bits"

// fastModMultiplier returns the reciprocal multiplier for divisor, letting
// fastMod compute value % divisor without a hardware division. Must be
// recomputed whenever the bucket array is reallocated.
//
// Requires divisor > 1 (bucket arrays are prime-sized, so never 0 or 1).
func fastModMultiplier(divisor uint32) uint64 {
	return ^uint64(0)/uint64(divisor) + 1
}

// fastMod computes value % divisor using the multiplier produced by
// fastModMultiplier: the high 64 bits of value*multiplier are the quotient,
// and the remainder falls out of one multiply and one subtract.
//
// Exact for all 32-bit value/divisor pairs (Lemire, "Faster remainders when
// the divisor is a constant").
func fastMod(value, divisor uint32, multiplier uint64) uint32 {
	quotient, _ := bits.Mul64(uint64(value), multiplier)
	return value - uint32(quotient)*divisor
}
