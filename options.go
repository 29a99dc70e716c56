package hashtable

import "fmt"

const (
	DefaultCapacity            = 8
	DefaultLoadFactorThreshold = 0.6
)

type config struct {
	capacity            int
	loadFactorThreshold float64
}

type Option func(c *config)

// Sets the number of buckets the table starts with. Clear restores it.
func WithCapacity(capacity int) Option {
	return func(c *config) {
		c.capacity = capacity
	}
}

// Sets the load factor at which the table doubles before the next insert.
func WithLoadFactorThreshold(threshold float64) Option {
	return func(c *config) {
		c.loadFactorThreshold = threshold
	}
}

func newConfig(opts ...Option) (config, error) {
	c := config{
		capacity:            DefaultCapacity,
		loadFactorThreshold: DefaultLoadFactorThreshold,
	}

	for _, opt := range opts {
		opt(&c)
	}

	if c.capacity < 1 {
		return c, fmt.Errorf("%w: capacity must be a positive number, got %d", ErrInvalidArgument, c.capacity)
	}

	// Written this way so that NaN is rejected too.
	if !(c.loadFactorThreshold > 0 && c.loadFactorThreshold <= 1) {
		return c, fmt.Errorf("%w: load factor threshold must be in (0, 1], got %v", ErrInvalidArgument, c.loadFactorThreshold)
	}

	return c, nil
}
