package store

import (
	"context"
	"sync"

	"github.com/gtechsltn/products-api/internal/product/errors"
)

// inMemory implements ProductStore using an ordered in-memory collection.
// A slice keeps insertion order, a map indexes positions by product ID.
type inMemory struct {
	mu     sync.RWMutex
	items  []Product
	index  map[int64]int
	nextID int64
}

// NewInMemoryStore creates a new instance of ProductStore backed by process memory.
func NewInMemoryStore() ProductStore {
	return &inMemory{
		items:  make([]Product, 0),
		index:  make(map[int64]int),
		nextID: 1,
	}
}

// FindByID retrieves a product by its ID.
func (s *inMemory) FindByID(_ context.Context, id int64) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		return nil, errors.ErrProductNotFound
	}
	p := s.items[pos]
	return &p, nil
}

// FindAll retrieves a snapshot of all products in insertion order.
func (s *inMemory) FindAll(_ context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Product, len(s.items))
	copy(list, s.items)
	return list, nil
}

// Create creates a new product and returns it. The ID comes from a counter
// that is never decremented, so IDs are unique for the lifetime of the store
// even when products are deleted in between.
func (s *inMemory) Create(_ context.Context, name string, price int64) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := Product{
		ID:    s.nextID,
		Name:  name,
		Price: price,
	}
	s.nextID++
	s.index[product.ID] = len(s.items)
	s.items = append(s.items, product)

	return &product, nil
}

// Update mutates the matching product in place, keeping its position.
// An absent ID leaves the store unchanged.
func (s *inMemory) Update(_ context.Context, id int64, name string, price int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return nil
	}
	s.items[pos].Name = name
	s.items[pos].Price = price
	return nil
}

// DeleteByID deletes a product by its ID, preserving the relative order of
// the remaining products. An absent ID leaves the store unchanged.
func (s *inMemory) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return nil
	}
	s.items = append(s.items[:pos], s.items[pos+1:]...)
	delete(s.index, id)
	// positions after the removed element shifted left by one
	for i := pos; i < len(s.items); i++ {
		s.index[s.items[i].ID] = i
	}
	return nil
}
