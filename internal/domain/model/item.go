// Package model contains domain models passed between layers.
package model

// Default values assigned to newly added items.
const (
	DefaultRating    = 1500.0
	DefaultDeviation = 100.0
)

// Item is a single rated entry in the preference file.
// Fields mirror the persisted CSV record.
type Item struct {
	Name      string  // display name; duplicates are treated as distinct items
	Rating    float64 // skill estimate, unbounded
	Deviation float64 // rating uncertainty, never negative
	Bucket    int64   // 0-based decile assigned on save; stale between runs
}

// New returns an item with the default rating and deviation.
func New(name string) *Item {
	return &Item{
		Name:      name,
		Rating:    DefaultRating,
		Deviation: DefaultDeviation,
	}
}
