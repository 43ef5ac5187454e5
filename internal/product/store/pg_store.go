package store

import (
	"context"
	stderrors "errors"
	"fmt"

	perrors "github.com/gtechsltn/products-api/internal/product/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgStore implements ProductStore using PostgreSQL as the data store.
// The BIGSERIAL primary key plays the role of the monotonic ID sequence, and
// ordering by ID yields insertion order.
type PgStore struct {
	db *pgxpool.Pool
}

// NewPgStore creates a new instance of ProductStore using a PostgreSQL connection pool.
func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{db: dbp}
}

// FindByID retrieves a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) FindByID(ctx context.Context, id int64) (*Product, error) {
	var product Product
	err := p.db.QueryRow(ctx,
		`SELECT id, name, price FROM products WHERE id = $1`, id,
	).Scan(&product.ID, &product.Name, &product.Price)
	if err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return &product, nil
}

// FindAll retrieves all available products ordered by ID (insertion order).
// It returns a slice of products, which may be empty if no products exist.
func (p *PgStore) FindAll(ctx context.Context) ([]Product, error) {
	rows, err := p.db.Query(ctx, `SELECT id, name, price FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to find all products: %w", err)
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		var product Product
		if err := rows.Scan(&product.ID, &product.Name, &product.Price); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read product rows: %w", err)
	}
	return products, nil
}

// Create adds a new product to the system.
// Returns an error if the product cannot be created.
func (p *PgStore) Create(ctx context.Context, name string, price int64) (*Product, error) {
	var product Product
	err := p.db.QueryRow(ctx,
		`INSERT INTO products (name, price) VALUES ($1, $2) RETURNING id, name, price`,
		name, price,
	).Scan(&product.ID, &product.Name, &product.Price)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

// Update modifies an existing product's name and price.
// Updating a non-existent ID is a no-op, not an error.
func (p *PgStore) Update(ctx context.Context, id int64, name string, price int64) error {
	_, err := p.db.Exec(ctx,
		`UPDATE products SET name = $2, price = $3 WHERE id = $1`,
		id, name, price,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// DeleteByID removes a product by its unique identifier.
// Deleting a non-existent ID is a no-op, not an error.
func (p *PgStore) DeleteByID(ctx context.Context, id int64) error {
	_, err := p.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product by ID: %w", err)
	}
	return nil
}
