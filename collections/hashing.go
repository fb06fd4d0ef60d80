package collections

import "hash/maphash"

// HashFunc hashes a key to a 32-bit code. The bucket arrays never exceed
// 2^31 slots, so 32 bits is all the selection consumes; a custom function
// must satisfy the usual contract that equal keys hash equally.
type HashFunc[K comparable] func(K) uint32

// MakeDefaultHashFunc builds the default hash function for K: seeded
// maphash.Comparable, folded to 32 bits so both halves of the 64-bit state
// contribute.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint32 {
		h := maphash.Comparable(seed, k)
		return uint32(h ^ (h >> 32))
	}
}
