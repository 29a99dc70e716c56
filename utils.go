package hashtable

// CapacityFor returns the smallest capacity that holds n entries without
// resizing under the given load factor threshold.
func CapacityFor(n int, threshold float64) int {
	if n <= 0 || !(threshold > 0) {
		return 1
	}

	c := int(float64(n)/threshold) + 1
	// Float rounding can leave n/c right at the threshold.
	for float64(n)/float64(c) >= threshold {
		c++
	}

	return c
}
