package hashtable

import (
	"hash/maphash"
	"slices"
)

type table[K comparable, V any] struct {
	buckets []bucket[K, V]

	// Global insertion order. Holds exactly the keys stored in buckets.
	keys []K

	loadFactorThreshold float64
	originalCapacity    int

	hashFunc HashFunc[K]
}

func (t *table[K, V]) init(c config) {
	t.buckets = make([]bucket[K, V], c.capacity)
	t.keys = nil
	t.loadFactorThreshold = c.loadFactorThreshold
	t.originalCapacity = c.capacity

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}
}

func (t *table[K, V]) capacity() int {
	return len(t.buckets)
}

func (t *table[K, V]) size() int {
	return len(t.keys)
}

func (t *table[K, V]) loadFactor() float64 {
	return float64(t.size()) / float64(t.capacity())
}

func (t *table[K, V]) bucketFor(key K) *bucket[K, V] {
	return &t.buckets[bucketIndex(t.hashFunc(key), t.capacity())]
}

func (t *table[K, V]) get(key K) (V, bool) {
	b := t.bucketFor(key)
	if i := b.find(key); i >= 0 {
		return b.pairs[i].Value, true
	}

	var zero V
	return zero, false
}

// set inserts or updates key. Returns true if the key is new.
func (t *table[K, V]) set(key K, value V) bool {
	if t.bucketFor(key).update(key, value) {
		return false
	}

	// Grow first if the insert would reach the threshold, so the load factor
	// is still below it once the key is in.
	for t.wouldReachThreshold(t.size() + 1) {
		t.resizeAndRehash()
	}

	t.bucketFor(key).add(Pair[K, V]{Key: key, Value: value})
	t.keys = append(t.keys, key)

	return true
}

func (t *table[K, V]) wouldReachThreshold(size int) bool {
	return float64(size)/float64(t.capacity()) >= t.loadFactorThreshold
}

func (t *table[K, V]) delete(key K) bool {
	if !t.bucketFor(key).remove(key) {
		return false
	}

	if i := slices.Index(t.keys, key); i >= 0 {
		t.keys = slices.Delete(t.keys, i, i+1)
	}

	return true
}

// resizeAndRehash doubles the bucket array and rehashes every pair.
// keys and originalCapacity are left as they are.
func (t *table[K, V]) resizeAndRehash() {
	old := t.buckets
	t.buckets = make([]bucket[K, V], 2*len(old))

	// A new bucket j only receives pairs from old bucket j mod len(old), so
	// walking the old buckets in order keeps every chain in insertion order.
	for i := range old {
		for _, p := range old[i].pairs {
			t.bucketFor(p.Key).add(p)
		}
	}
}

// reset drops every pair and goes back to the construction capacity.
func (t *table[K, V]) reset() {
	t.buckets = make([]bucket[K, V], t.originalCapacity)
	t.keys = nil
}

func (t *table[K, V]) stats() Stats {
	s := Stats{
		Size:                t.size(),
		Capacity:            t.capacity(),
		OriginalCapacity:    t.originalCapacity,
		LoadFactor:          t.loadFactor(),
		LoadFactorThreshold: t.loadFactorThreshold,
	}

	for i := range t.buckets {
		n := t.buckets[i].len()
		if n == 0 {
			s.EmptyBuckets++
		}

		s.LongestChain = max(s.LongestChain, n)
	}

	return s
}
