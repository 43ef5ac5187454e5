// Package store provides an interface for product storage operations.
package store

import "context"

// Product represents a product entity in the store.
type Product struct {
	ID    int64
	Name  string
	Price int64 // Price in cents
}

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductStore interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*Product, error)

	// FindAll returns all available products in insertion order.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)

	// Create adds a new product to the system and assigns its identifier.
	// Identifiers are taken from a monotonically increasing sequence and are
	// never reused, even after deletions.
	Create(ctx context.Context, name string, price int64) (*Product, error)

	// Update replaces the name and price of the product with the given ID,
	// keeping its position in the collection. Updating a non-existent ID is
	// a no-op, not an error.
	Update(ctx context.Context, id int64, name string, price int64) error

	// DeleteByID removes a product by its ID, preserving the relative order
	// of the remaining products. Deleting a non-existent ID is a no-op, not
	// an error.
	DeleteByID(ctx context.Context, id int64) error
}
