// Package service provides the implementation of product-related business logic.
package service

import (
	"context"
	"fmt"

	"github.com/gtechsltn/products-api/internal/product/store"
)

// ProductService defines the methods for managing products.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*ProductDto, error)

	// FindAll returns all available products in insertion order.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]ProductDto, error)

	// Create adds a new product to the system. The store assigns the ID;
	// any ID supplied by the caller is ignored.
	Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error)

	// Update replaces the name and price of the product with the given ID.
	// An absent ID is a no-op, not an error.
	Update(ctx context.Context, id int64, product ProductUpdateDto) error

	// DeleteByID removes a product by its ID.
	// An absent ID is a no-op, not an error.
	DeleteByID(ctx context.Context, id int64) error
}

// service implements ProductService and provides methods to manage products.
type service struct {
	repository store.ProductStore
}

// NewService creates a new instance of ProductService with the provided repository.
func NewService(repo store.ProductStore) ProductService {
	return &service{
		repository: repo,
	}
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// ProductCreateDto carries the client-supplied fields of a new product.
// There is no ID field: identifiers are assigned by the store.
type ProductCreateDto struct {
	Name  string `json:"name" validate:"required,max=100"`
	Price int64  `json:"price" validate:"min=0"`
}

// ProductUpdateDto carries the replacement fields for an existing product.
type ProductUpdateDto struct {
	Name  string `json:"name" validate:"required,max=100"`
	Price int64  `json:"price" validate:"min=0"`
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
func (s *service) FindByID(ctx context.Context, id int64) (*ProductDto, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %d: %w", id, err)
	}
	return toDto(product), nil
}

// FindAll retrieves a list of all products and returns them as ProductDTOs.
func (s *service) FindAll(ctx context.Context) ([]ProductDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	productDTOs := make([]ProductDto, len(products))
	for i := range products {
		productDTOs[i] = *toDto(&products[i])
	}
	return productDTOs, nil
}

// Create creates a new product and returns it as a ProductDto.
func (s *service) Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error) {
	p, err := s.repository.Create(ctx, product.Name, product.Price)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return toDto(p), nil
}

// Update replaces the name and price of the product with the given ID.
func (s *service) Update(ctx context.Context, id int64, product ProductUpdateDto) error {
	if err := s.repository.Update(ctx, id, product.Name, product.Price); err != nil {
		return fmt.Errorf("failed to update product %d: %w", id, err)
	}
	return nil
}

// DeleteByID deletes a product by its ID.
func (s *service) DeleteByID(ctx context.Context, id int64) error {
	if err := s.repository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return nil
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	return &ProductDto{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.Price,
	}
}
