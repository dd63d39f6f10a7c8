// Package stability decides whether a working set needs more comparisons.
package stability

import (
	"github.com/okian/ranked/internal/domain/model"
)

// Default convergence configuration constants.
const (
	defaultDeviationThreshold = 65.0
)

// Option applies a configuration option to the Checker.
type Option func(*Checker)

// WithThreshold sets the deviation threshold below which an item counts
// as settled.
func WithThreshold(threshold float64) Option {
	return func(c *Checker) {
		if threshold > 0 {
			c.threshold = threshold
		}
	}
}

// Checker evaluates whether every item's rating is confident enough to
// trust the ordering.
type Checker struct {
	threshold float64
}

// New creates a Checker with configuration options.
func New(opts ...Option) *Checker {
	c := &Checker{
		threshold: defaultDeviationThreshold,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Unstable reports whether any item still needs comparisons. An item is
// unstable only when its deviation strictly exceeds the threshold; a
// deviation exactly at the threshold counts as settled.
func (c *Checker) Unstable(items []*model.Item) bool {
	for _, item := range items {
		if item.Deviation > c.threshold {
			return true
		}
	}
	return false
}

// MaxDeviation returns the largest deviation in the working set, or 0
// for an empty set.
func MaxDeviation(items []*model.Item) float64 {
	max := 0.0
	for _, item := range items {
		if item.Deviation > max {
			max = item.Deviation
		}
	}
	return max
}
