package collections

import "sync"

// Guarded variants for dictionaries shared across goroutines. Each call
// holds the supplied mutex for its full duration and releases it on every
// exit path, panics included. The discipline is the caller's: every access
// that may run concurrently with a mutator, reads included, must route
// through the same mutex, or lookups may observe a torn structure. Lock
// acquisition is a plain mutual-exclusion wait; there are no timeouts and
// no cancellation, and a resize triggered under the lock completes before
// the lock is released.

// AddSync is Add under mu.
func (d *ValueDictionary[K, V]) AddSync(mu *sync.Mutex, key K, value V) error {
	mu.Lock()
	defer mu.Unlock()

	return d.Add(key, value)
}

// TryAddSync is TryAdd under mu.
func (d *ValueDictionary[K, V]) TryAddSync(mu *sync.Mutex, key K, value V) bool {
	mu.Lock()
	defer mu.Unlock()

	return d.TryAdd(key, value)
}

// SetSync is Set under mu.
func (d *ValueDictionary[K, V]) SetSync(mu *sync.Mutex, key K, value V) {
	mu.Lock()
	defer mu.Unlock()

	d.Set(key, value)
}

// GetSync is Get under mu, for readers that may run concurrently with a
// mutator.
func (d *ValueDictionary[K, V]) GetSync(mu *sync.Mutex, key K) (V, bool) {
	mu.Lock()
	defer mu.Unlock()

	return d.Get(key)
}

// ContainsKeySync is ContainsKey under mu.
func (d *ValueDictionary[K, V]) ContainsKeySync(mu *sync.Mutex, key K) bool {
	mu.Lock()
	defer mu.Unlock()

	return d.ContainsKey(key)
}

// DeleteSync is Delete under mu.
func (d *ValueDictionary[K, V]) DeleteSync(mu *sync.Mutex, key K) bool {
	mu.Lock()
	defer mu.Unlock()

	return d.Delete(key)
}

// LoadAndDeleteSync is LoadAndDelete under mu.
func (d *ValueDictionary[K, V]) LoadAndDeleteSync(mu *sync.Mutex, key K) (V, bool) {
	mu.Lock()
	defer mu.Unlock()

	return d.LoadAndDelete(key)
}

// ClearSync is Clear under mu.
func (d *ValueDictionary[K, V]) ClearSync(mu *sync.Mutex) {
	mu.Lock()
	defer mu.Unlock()

	d.Clear()
}

// EnsureCapacitySync is EnsureCapacity under mu.
func (d *ValueDictionary[K, V]) EnsureCapacitySync(mu *sync.Mutex, capacity int) int {
	mu.Lock()
	defer mu.Unlock()

	return d.EnsureCapacity(capacity)
}

// TrimExcessSync is TrimExcess under mu.
func (d *ValueDictionary[K, V]) TrimExcessSync(mu *sync.Mutex, threshold float64) {
	mu.Lock()
	defer mu.Unlock()

	d.TrimExcess(threshold)
}
