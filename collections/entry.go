package collections

// Storage is two parallel arrays: entries own every key and value, buckets
// and chain links refer to entries by index only. A bucket slot holds a
// 1-based entry index (0 = empty bucket); an entry's next field is tagged by
// sign and is only ever read through the accessors below.
type entry[K comparable, V any] struct {
	hashCode uint32

	// next >= -1: entry is live. -1 ends the bucket chain, >= 0 is the
	// index of the next entry in the chain.
	// next <= freeListMark: entry is free; the next free index is
	// recovered as freeListMark - next.
	next int32

	key   K
	value V
}

const (
	// endOfChain terminates a live bucket chain.
	endOfChain int32 = -1

	// freeListMark is the top of the free-list encoding range. It skips -2
	// so a free link can never be confused with a live one.
	freeListMark int32 = -3
)

func (e *entry[K, V]) isFree() bool {
	return e.next < endOfChain
}

// freeNext returns the index of the next free entry, or -1 at the end of the
// free list. Only meaningful when isFree.
func (e *entry[K, V]) freeNext() int32 {
	return freeListMark - e.next
}

// setFree pushes the entry onto a free list whose current head is
// nextFree (-1 for an empty list).
func (e *entry[K, V]) setFree(nextFree int32) {
	e.next = freeListMark - nextFree
}

// KeyValue is a single dictionary mapping, as produced by CopyTo.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}
