// Package bucket assigns ordinal rank buckets to rated items.
package bucket

import (
	"sort"

	"github.com/okian/ranked/internal/domain/model"
)

// Default bucketing configuration constants.
const (
	defaultBucketCount = 10 // deciles
)

// Option applies a configuration option to the Assigner.
type Option func(*Assigner)

// WithCount sets the number of buckets.
func WithCount(count int) Option {
	return func(a *Assigner) {
		if count > 0 {
			a.count = count
		}
	}
}

// Assigner partitions items into rank buckets by rating.
type Assigner struct {
	count int
}

// New creates an Assigner with configuration options.
func New(opts ...Option) *Assigner {
	a := &Assigner{
		count: defaultBucketCount,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Assign sorts items by rating ascending and writes a 0-based bucket
// onto every item. Bucket 0 holds the lowest-rated items.
//
// The split uses a running counter: each bucket takes len/count items
// plus one carried over before the counter advances. Boundaries are
// therefore approximate rather than exact quantiles; switching to exact
// quantile math would move items that sit on a boundary, so the
// approximation is kept for compatibility with existing files.
func (a *Assigner) Assign(items []*model.Item) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].Rating < items[j].Rating
	})

	perBucket := len(items) / a.count
	current := int64(0)
	inCurrent := 0
	for _, item := range items {
		item.Bucket = current
		inCurrent++
		if inCurrent > perBucket {
			inCurrent = 0
			current++
		}
	}
}
