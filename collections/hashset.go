package collections

import (
	"iter"
	"sync"
)

// ValueHashSet is the keys-only companion to ValueDictionary, sharing its
// storage scheme, growth policy and concurrency contract.
type ValueHashSet[K comparable] struct {
	dict ValueDictionary[K, struct{}]
}

// NewSet returns a set with room for at least capacity keys before the
// first growth.
func NewSet[K comparable](capacity int, opts ...Option[K, struct{}]) *ValueHashSet[K] {
	var s ValueHashSet[K]
	s.dict = *New(capacity, opts...)

	return &s
}

// Add inserts key and reports whether it was newly added.
func (s *ValueHashSet[K]) Add(key K) bool {
	return s.dict.TryAdd(key, struct{}{})
}

// Contains reports whether key is in the set.
func (s *ValueHashSet[K]) Contains(key K) bool {
	return s.dict.ContainsKey(key)
}

// Delete removes key and reports whether it was present.
func (s *ValueHashSet[K]) Delete(key K) bool {
	return s.dict.Delete(key)
}

// Clear removes every key, keeping the current capacity.
func (s *ValueHashSet[K]) Clear() {
	s.dict.Clear()
}

func (s *ValueHashSet[K]) Count() int {
	return s.dict.Count()
}

func (s *ValueHashSet[K]) Capacity() int {
	return s.dict.Capacity()
}

func (s *ValueHashSet[K]) EnsureCapacity(capacity int) int {
	return s.dict.EnsureCapacity(capacity)
}

func (s *ValueHashSet[K]) TrimExcess(threshold float64) {
	s.dict.TrimExcess(threshold)
}

// All returns an iterator over every key, with the ordering and mutation
// caveats of ValueDictionary.All.
func (s *ValueHashSet[K]) All() iter.Seq[K] {
	return s.dict.Keys()
}

// AddSync is Add under mu.
func (s *ValueHashSet[K]) AddSync(mu *sync.Mutex, key K) bool {
	return s.dict.TryAddSync(mu, key, struct{}{})
}

// ContainsSync is Contains under mu.
func (s *ValueHashSet[K]) ContainsSync(mu *sync.Mutex, key K) bool {
	return s.dict.ContainsKeySync(mu, key)
}

// DeleteSync is Delete under mu.
func (s *ValueHashSet[K]) DeleteSync(mu *sync.Mutex, key K) bool {
	return s.dict.DeleteSync(mu, key)
}
