// Package repository persists rated items and defines the store
// interface and errors.
package repository

import (
	"context"

	"github.com/okian/ranked/internal/domain/model"
)

// Store provides read/write access to the rated items.
type Store interface {
	// Load reads every item from the store.
	// Returns ErrOpen or ErrParse when the store is unreadable.
	Load(ctx context.Context) ([]*model.Item, error)

	// Save atomically replaces the store contents with the given items.
	// A failed save never corrupts the previous contents.
	Save(ctx context.Context, items []*model.Item) error

	// Append adds a single item to the end of the store, creating it if
	// it does not exist yet.
	Append(ctx context.Context, item *model.Item) error
}
