package collections

import "iter"

// All returns an iterator over every live mapping, in entry-slot order:
// insertion order until a removal or reallocation has recycled or
// repacked slots. No ordering is guaranteed. The dictionary must not be
// mutated during iteration.
func (d *ValueDictionary[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range d.count {
			e := &d.entries[i]
			if e.isFree() {
				continue
			}
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Keys returns an iterator over every live key, with the same ordering and
// mutation caveats as All.
func (d *ValueDictionary[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range d.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over every live value, with the same ordering
// and mutation caveats as All.
func (d *ValueDictionary[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range d.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// CopyTo copies every live mapping into dst in entry-slot order. It returns
// ErrDestinationTooSmall if dst cannot hold Count() pairs.
func (d *ValueDictionary[K, V]) CopyTo(dst []KeyValue[K, V]) error {
	if len(dst) < d.Count() {
		return ErrDestinationTooSmall
	}

	n := 0
	for i := range d.count {
		e := &d.entries[i]
		if e.isFree() {
			continue
		}
		dst[n] = KeyValue[K, V]{Key: e.key, Value: e.value}
		n++
	}

	return nil
}

// ContainsValue reports whether any live mapping holds value. Values are
// not indexed, so this is a linear scan.
func ContainsValue[K comparable, V comparable](d *ValueDictionary[K, V], value V) bool {
	for i := range d.count {
		e := &d.entries[i]
		if !e.isFree() && e.value == value {
			return true
		}
	}

	return false
}
