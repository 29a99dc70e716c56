package hashtable

import "iter"

// FromPairs builds a table by setting each pair in order.
// Unless WithCapacity is given, the table starts with max(len(pairs), 1)
// buckets.
func FromPairs[K comparable, V any](pairs []Pair[K, V], opts ...Option) (*HashTable[K, V], error) {
	opts = append([]Option{WithCapacity(max(len(pairs), 1))}, opts...)

	ht, err := New[K, V](opts...)
	if err != nil {
		return nil, err
	}

	for _, p := range pairs {
		ht.set(p.Key, p.Value)
	}

	return ht, nil
}

// FromMap builds a table from a built-in map. The resulting insertion order
// is the map's iteration order, which Go leaves unspecified.
func FromMap[K comparable, V any](m map[K]V, opts ...Option) (*HashTable[K, V], error) {
	pairs := make([]Pair[K, V], 0, len(m))
	for k, v := range m {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}

	return FromPairs(pairs, opts...)
}

// Collect builds a table from seq, keeping the order of the sequence.
func Collect[K comparable, V any](seq iter.Seq2[K, V], opts ...Option) (*HashTable[K, V], error) {
	var pairs []Pair[K, V]
	for k, v := range seq {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}

	return FromPairs(pairs, opts...)
}

// Equal reports whether a and b hold the same set of entries.
// Capacity, threshold and insertion order are ignored.
func Equal[K, V comparable](a, b *HashTable[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is like Equal, but compares values with eq.
func EqualFunc[K comparable, V1, V2 any](a *HashTable[K, V1], b *HashTable[K, V2], eq func(V1, V2) bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if a.size() != b.size() {
		return false
	}

	for _, key := range a.keys {
		va, _ := a.get(key)

		vb, ok := b.get(key)
		if !ok || !eq(va, vb) {
			return false
		}
	}

	return true
}
