package hashtable

import "fmt"

// HashSet is a set of keys that keeps insertion order.
// It's a HashTable without values and shares its resize policy and options.
type HashSet[K comparable] struct {
	table[K, struct{}]
}

func NewSet[K comparable](opts ...Option) (*HashSet[K], error) {
	c, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	var hs HashSet[K]
	hs.init(c)

	return &hs, nil
}

// Adds a key to the set. Returns whether the key is new.
func (hs *HashSet[K]) Add(key K) bool {
	return hs.set(key, struct{}{})
}

// Checks whether a key is in the set.
func (hs *HashSet[K]) Has(key K) bool {
	_, ok := hs.get(key)
	return ok
}

// Removes a key from the set. The error wraps ErrKeyNotFound.
func (hs *HashSet[K]) Remove(key K) error {
	if !hs.delete(key) {
		return fmt.Errorf("%w: %#v", ErrKeyNotFound, key)
	}

	return nil
}

func (hs *HashSet[K]) Len() int {
	return hs.size()
}

// Returns a copy of the keys in insertion order.
func (hs *HashSet[K]) Keys() []K {
	keys := make([]K, len(hs.keys))
	copy(keys, hs.keys)

	return keys
}

func (hs *HashSet[K]) Capacity() int {
	return hs.capacity()
}

// Removes every key and restores the original capacity.
func (hs *HashSet[K]) Clear() *HashSet[K] {
	hs.reset()
	return hs
}
