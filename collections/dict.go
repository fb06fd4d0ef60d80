package collections

import "hash/maphash"

// ValueDictionary is a hash dictionary over flat arrays: entries are stored
// in one contiguous slice and buckets chain into it by index, with removed
// slots recycled through an intrusive free list. Capacity is always prime
// and grows by reallocating both arrays, never in place.
//
// The zero value is an empty dictionary ready for use; backing storage is
// allocated on the first insert or an explicit EnsureCapacity.
//
// ValueDictionary performs no internal synchronization. A single logical
// mutator is assumed at a time; callers that share an instance across
// goroutines route every access through the same mutex (see the Sync
// variants). Unsynchronized concurrent mutation can corrupt a chain, which
// lookups detect and surface as a panic.
type ValueDictionary[K comparable, V any] struct {
	buckets []int32
	entries []entry[K, V]

	// count is the high-water mark of ever-used entry slots, live plus
	// free; it only moves back down on Clear or TrimExcess.
	count     int
	freeList  int32
	freeCount int

	fastMult uint64
	hashFunc HashFunc[K]
}

type Option[K comparable, V any] func(d *ValueDictionary[K, V])

// WithHashFunc overrides the default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(d *ValueDictionary[K, V]) {
		d.hashFunc = f
	}
}

// New returns a dictionary with room for at least capacity entries before
// the first growth. A capacity of 0 defers all allocation to the first
// insert.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *ValueDictionary[K, V] {
	var d ValueDictionary[K, V]

	for _, opt := range opts {
		opt(&d)
	}
	d.ensureHash()

	if capacity > 0 {
		d.initialize(getPrime(capacity))
	}

	return &d
}

func (d *ValueDictionary[K, V]) ensureHash() {
	if d.hashFunc == nil {
		d.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}
}

// initialize allocates backing storage. capacity must come from the prime
// table.
func (d *ValueDictionary[K, V]) initialize(capacity int) {
	d.buckets = make([]int32, capacity)
	d.entries = make([]entry[K, V], capacity)
	d.freeList = endOfChain
	d.fastMult = fastModMultiplier(uint32(capacity))
}

func (d *ValueDictionary[K, V]) bucketIndex(hashCode uint32) int {
	if useFastMod {
		return int(fastMod(hashCode, uint32(len(d.buckets)), d.fastMult))
	}
	return int(hashCode % uint32(len(d.buckets)))
}

// findEntry walks the key's bucket chain comparing hash then equality.
// It returns the matching entry's index (or -1) and the index of its chain
// predecessor (-1 when the match heads the bucket), which makes removal an
// O(1) relink. The walk is bounded by the table size: exceeding it means a
// chain cycled, which only unsynchronized concurrent mutation can cause.
func (d *ValueDictionary[K, V]) findEntry(key K) (index, prev int32) {
	if len(d.buckets) == 0 {
		return -1, -1
	}

	hashCode := d.hashFunc(key)
	prev = -1
	collisions := 0

	for i := d.buckets[d.bucketIndex(hashCode)] - 1; i >= 0; i = d.entries[i].next {
		e := &d.entries[i]
		if e.hashCode == hashCode && e.key == key {
			return i, prev
		}

		prev = i
		collisions++
		if collisions > len(d.entries) {
			panic(corruptedChainMsg)
		}
	}

	return -1, -1
}

// getOrAddEntry returns the index of key's entry, inserting a fresh one at
// the head of its bucket chain if absent. A fresh entry's value is left
// zeroed for the caller to fill in place.
func (d *ValueDictionary[K, V]) getOrAddEntry(key K) (int32, bool) {
	d.ensureHash()
	if d.buckets == nil {
		d.initialize(getPrime(0))
	}

	if i, _ := d.findEntry(key); i >= 0 {
		return i, true
	}

	var index int32
	if d.freeCount > 0 {
		index = d.freeList
		d.freeList = d.entries[index].freeNext()
		d.freeCount--
	} else {
		if d.count == len(d.entries) {
			d.resize(expandPrime(d.count))
		}
		index = int32(d.count)
		d.count++
	}

	hashCode := d.hashFunc(key)
	bucket := &d.buckets[d.bucketIndex(hashCode)]

	e := &d.entries[index]
	e.hashCode = hashCode
	e.next = *bucket - 1 // bucket slots are 1-based; empty becomes endOfChain
	e.key = key
	*bucket = index + 1

	return index, false
}

// resize reallocates both arrays at newCapacity, copies the used prefix
// verbatim (free slots included; their links are capacity-independent) and
// relinks every live entry into its new bucket. Allocation happens before
// any state is touched, so a failed allocation leaves the dictionary in its
// prior valid state.
func (d *ValueDictionary[K, V]) resize(newCapacity int) {
	newBuckets := make([]int32, newCapacity)
	newEntries := make([]entry[K, V], newCapacity)
	copy(newEntries, d.entries[:d.count])

	d.buckets = newBuckets
	d.entries = newEntries
	d.fastMult = fastModMultiplier(uint32(newCapacity))

	for i := range int32(d.count) {
		e := &d.entries[i]
		if e.isFree() {
			continue
		}

		bucket := &d.buckets[d.bucketIndex(e.hashCode)]
		e.next = *bucket - 1
		*bucket = i + 1
	}
}

// Add inserts a new mapping. If the key is already present it returns
// ErrDuplicateKey and the stored value is left unchanged.
func (d *ValueDictionary[K, V]) Add(key K, value V) error {
	index, existed := d.getOrAddEntry(key)
	if existed {
		return ErrDuplicateKey
	}

	d.entries[index].value = value
	return nil
}

// TryAdd inserts a new mapping and reports whether it was inserted. An
// existing mapping is left unchanged.
func (d *ValueDictionary[K, V]) TryAdd(key K, value V) bool {
	return d.Add(key, value) == nil
}

// Set inserts or overwrites the mapping for key.
func (d *ValueDictionary[K, V]) Set(key K, value V) {
	index, _ := d.getOrAddEntry(key)
	d.entries[index].value = value
}

// Get returns the value mapped to key and whether it was present.
func (d *ValueDictionary[K, V]) Get(key K) (V, bool) {
	if i, _ := d.findEntry(key); i >= 0 {
		return d.entries[i].value, true
	}

	var zero V
	return zero, false
}

// ContainsKey reports whether key is present.
func (d *ValueDictionary[K, V]) ContainsKey(key K) bool {
	i, _ := d.findEntry(key)
	return i >= 0
}

// GetValueRef returns a pointer to key's stored value, or nil if absent.
// The pointer is invalidated by any operation that can reallocate storage
// (insert, EnsureCapacity, TrimExcess, Clear).
func (d *ValueDictionary[K, V]) GetValueRef(key K) *V {
	if i, _ := d.findEntry(key); i >= 0 {
		return &d.entries[i].value
	}
	return nil
}

// GetOrAddValueRef returns a pointer to key's stored value, inserting a
// zeroed entry if absent, and reports whether the key already existed. The
// caller fills the value through the pointer, with the same invalidation
// rule as GetValueRef.
func (d *ValueDictionary[K, V]) GetOrAddValueRef(key K) (*V, bool) {
	index, existed := d.getOrAddEntry(key)
	return &d.entries[index].value, existed
}

// LoadAndDelete removes key's mapping, returning the removed value and
// whether it was present. The recycled slot's key and value are cleared so
// it cannot keep unrelated data reachable.
func (d *ValueDictionary[K, V]) LoadAndDelete(key K) (V, bool) {
	var zero V

	index, prev := d.findEntry(key)
	if index < 0 {
		return zero, false
	}

	e := &d.entries[index]
	if prev < 0 {
		d.buckets[d.bucketIndex(e.hashCode)] = e.next + 1
	} else {
		d.entries[prev].next = e.next
	}

	value := e.value
	var zeroK K
	e.hashCode = 0
	e.key = zeroK
	e.value = zero
	e.setFree(d.freeList)
	d.freeList = index
	d.freeCount++

	// count stays at its high-water mark; the slot is reused by the next
	// insert or dropped by TrimExcess.
	return value, true
}

// Delete removes key's mapping and reports whether it was present.
func (d *ValueDictionary[K, V]) Delete(key K) bool {
	_, ok := d.LoadAndDelete(key)
	return ok
}

// Clear removes every mapping, keeping the current capacity.
func (d *ValueDictionary[K, V]) Clear() {
	if d.count == 0 {
		return
	}

	clear(d.buckets)
	clear(d.entries[:d.count])
	d.count = 0
	d.freeList = endOfChain
	d.freeCount = 0
}

// EnsureCapacity grows storage so at least capacity entries fit without a
// further reallocation, returning the resulting capacity. A capacity at or
// below the current one is a no-op.
func (d *ValueDictionary[K, V]) EnsureCapacity(capacity int) int {
	if capacity < 0 {
		panic("collections: negative capacity")
	}
	if len(d.entries) >= capacity {
		return len(d.entries)
	}

	d.ensureHash()
	newCapacity := getPrime(capacity)
	if d.buckets == nil {
		d.initialize(newCapacity)
	} else {
		d.resize(newCapacity)
	}

	return newCapacity
}

// TrimExcess reallocates storage down to the live entry count when the live
// count has fallen below capacity*threshold, dropping all free-list slack.
// Live mappings are never removed. threshold must be in (0, 1]; 1 trims
// whenever there is any slack at all.
func (d *ValueDictionary[K, V]) TrimExcess(threshold float64) {
	if threshold <= 0 || threshold > 1 {
		panic("collections: threshold must be in (0, 1]")
	}

	capacity := len(d.entries)
	if capacity == 0 {
		return
	}

	live := d.count - d.freeCount
	if float64(live) >= float64(capacity)*threshold {
		return
	}

	newCapacity := getPrime(live)
	if newCapacity >= capacity {
		return
	}

	// Compacting rebuild: live entries are repacked into a fresh, smaller
	// allocation and the free list is discarded wholesale.
	oldEntries := d.entries
	oldCount := d.count

	d.initialize(newCapacity)
	d.count = 0
	d.freeCount = 0

	for i := range oldCount {
		old := &oldEntries[i]
		if old.isFree() {
			continue
		}

		bucket := &d.buckets[d.bucketIndex(old.hashCode)]
		d.entries[d.count] = entry[K, V]{
			hashCode: old.hashCode,
			next:     *bucket - 1,
			key:      old.key,
			value:    old.value,
		}
		*bucket = int32(d.count) + 1
		d.count++
	}
}

// Count returns the number of live mappings.
func (d *ValueDictionary[K, V]) Count() int {
	return d.count - d.freeCount
}

// Capacity returns the number of entry slots currently allocated.
func (d *ValueDictionary[K, V]) Capacity() int {
	return len(d.entries)
}
