package hashtable

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

type HashFunc[K comparable] func(K) uint64

// MakeDefaultHashFunc returns the hash function a table uses for K.
// String keys are hashed with xxhash, so their bucket layout does not depend
// on a seed. Every other comparable key goes through maphash with the given seed.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	var zero K
	if _, ok := any(zero).(string); ok {
		return func(k K) uint64 {
			return xxhash.Sum64String(any(k).(string))
		}
	}

	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// bucketIndex reduces a hash to a slot in [0, capacity).
func bucketIndex(hash uint64, capacity int) int {
	return int(hash % uint64(capacity))
}
