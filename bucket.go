package hashtable

import "slices"

// Pair is a single key-value entry of a table.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// bucket holds every pair whose key reduces to the same slot.
// Pairs stay in insertion order and keys are unique within a bucket.
type bucket[K comparable, V any] struct {
	pairs []Pair[K, V]
}

// find returns the position of key in the bucket, or -1.
func (b *bucket[K, V]) find(key K) int {
	for i := range b.pairs {
		if b.pairs[i].Key == key {
			return i
		}
	}

	return -1
}

// update replaces the value of key in place. Returns false if the key is
// not in the bucket.
func (b *bucket[K, V]) update(key K, value V) bool {
	i := b.find(key)
	if i < 0 {
		return false
	}

	b.pairs[i] = Pair[K, V]{Key: key, Value: value}

	return true
}

func (b *bucket[K, V]) add(p Pair[K, V]) {
	b.pairs = append(b.pairs, p)
}

// remove drops the pair for key, keeping the order of the others.
func (b *bucket[K, V]) remove(key K) bool {
	i := b.find(key)
	if i < 0 {
		return false
	}

	b.pairs = slices.Delete(b.pairs, i, i+1)

	return true
}

func (b *bucket[K, V]) len() int {
	return len(b.pairs)
}
