package hashtable

// Stats is a snapshot of the table layout.
type Stats struct {
	Size                int
	Capacity            int
	OriginalCapacity    int
	LoadFactor          float64
	LoadFactorThreshold float64

	// Buckets with no pairs, and the length of the longest chain.
	EmptyBuckets int
	LongestChain int
}
