// Package hashtable implements an insertion-ordered hash table with separate
// chaining.
//
// Each bucket is an ordered slice of pairs, and a separate list records the
// global insertion order of keys, so every read view (Keys, Values, Pairs,
// All) returns entries in the order they were first inserted. The table
// doubles its bucket array before an insert whenever the load factor has
// reached the configured threshold.
//
// Keys are compared with == and must be comparable. String keys are hashed
// with xxhash, all other keys with hash/maphash. Values of different dynamic
// types are different keys: in a HashTable[any, V], int(1) and float64(1)
// do not collide. A NaN key can be stored but never found again.
//
// A HashTable is not safe for concurrent use. Guard the whole instance with
// a mutex if it is shared between goroutines.
package hashtable

import (
	"fmt"
	"iter"
)

// HashTable is a key-value mapping that keeps insertion order.
// The zero value is not usable, create one with New or a bulk loader.
type HashTable[K comparable, V any] struct {
	table[K, V]
}

// New returns an empty table with DefaultCapacity buckets and
// DefaultLoadFactorThreshold, unless overridden by opts.
// The error wraps ErrInvalidArgument.
func New[K comparable, V any](opts ...Option) (*HashTable[K, V], error) {
	c, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	var ht HashTable[K, V]
	ht.init(c)

	return &ht, nil
}

// Get returns the value stored for key.
// The error wraps ErrKeyNotFound if the key is absent.
func (ht *HashTable[K, V]) Get(key K) (V, error) {
	v, ok := ht.get(key)
	if !ok {
		return v, fmt.Errorf("%w: %#v", ErrKeyNotFound, key)
	}

	return v, nil
}

// Lookup returns the value stored for key and whether it was found.
func (ht *HashTable[K, V]) Lookup(key K) (V, bool) {
	return ht.get(key)
}

// GetOrDefault returns the value stored for key, or def if it is absent.
func (ht *HashTable[K, V]) GetOrDefault(key K, def V) V {
	if v, ok := ht.get(key); ok {
		return v
	}

	return def
}

// Contains reports whether key is in the table.
func (ht *HashTable[K, V]) Contains(key K) bool {
	_, ok := ht.get(key)
	return ok
}

// Set inserts key or replaces its value. Replacing keeps the key's position
// in the insertion order.
func (ht *HashTable[K, V]) Set(key K, value V) {
	ht.set(key, value)
}

// Delete removes key from the table.
// The error wraps ErrKeyNotFound if the key is absent.
func (ht *HashTable[K, V]) Delete(key K) error {
	if !ht.delete(key) {
		return fmt.Errorf("%w: %#v", ErrKeyNotFound, key)
	}

	return nil
}

// Clear removes every entry and shrinks the table back to the capacity it
// was created with. Returns the receiver.
func (ht *HashTable[K, V]) Clear() *HashTable[K, V] {
	ht.reset()
	return ht
}

// Keys returns a copy of the keys in insertion order.
func (ht *HashTable[K, V]) Keys() []K {
	keys := make([]K, len(ht.keys))
	copy(keys, ht.keys)

	return keys
}

// Values returns the values in key insertion order.
func (ht *HashTable[K, V]) Values() []V {
	values := make([]V, 0, len(ht.keys))
	for _, key := range ht.keys {
		v, _ := ht.get(key)
		values = append(values, v)
	}

	return values
}

// Pairs returns the entries in key insertion order.
func (ht *HashTable[K, V]) Pairs() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, len(ht.keys))
	for key, v := range ht.All() {
		pairs = append(pairs, Pair[K, V]{Key: key, Value: v})
	}

	return pairs
}

// All iterates over the entries in key insertion order.
// The table must not be modified while iterating.
func (ht *HashTable[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, key := range ht.keys {
			v, _ := ht.get(key)
			if !yield(key, v) {
				return
			}
		}
	}
}

func (ht *HashTable[K, V]) Len() int {
	return ht.size()
}

// Capacity returns the current number of buckets.
func (ht *HashTable[K, V]) Capacity() int {
	return ht.capacity()
}

func (ht *HashTable[K, V]) LoadFactor() float64 {
	return ht.loadFactor()
}

func (ht *HashTable[K, V]) LoadFactorThreshold() float64 {
	return ht.loadFactorThreshold
}

func (ht *HashTable[K, V]) Stats() Stats {
	return ht.stats()
}

// Copy returns an independent table with the same entries, capacity and
// load factor threshold.
func (ht *HashTable[K, V]) Copy() *HashTable[K, V] {
	cp, err := FromPairs(
		ht.Pairs(),
		WithCapacity(ht.capacity()),
		WithLoadFactorThreshold(ht.loadFactorThreshold),
	)
	if err != nil {
		// Both options come from a valid table.
		panic(err)
	}

	return cp
}

// Update sets every entry of other on ht, in other's insertion order.
// other is not modified.
func (ht *HashTable[K, V]) Update(other *HashTable[K, V]) {
	if other == nil {
		return
	}

	for _, p := range other.Pairs() {
		ht.set(p.Key, p.Value)
	}
}
