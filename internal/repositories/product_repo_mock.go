package repositories

import (
	"fmt"
	"sync"

	"dvstore/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product // keyed by name
	names    []string                  // insertion order
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetAll returns all products in insertion order.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, name := range r.names {
		productList = append(productList, r.products[name])
	}
	return productList, nil
}

// GetByName returns a product by its name.
func (r *MockProductRepository) GetByName(name string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[name]
	if !ok {
		return nil, fmt.Errorf("product %s not found", name)
	}
	return &product, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.Name]; ok {
		return fmt.Errorf("product %s already exists", product.Name)
	}
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.Name] = *product
	r.names = append(r.names, product.Name)
	return nil
}

// UpdateStock sets the remaining stock for the named product.
func (r *MockProductRepository) UpdateStock(name string, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[name]
	if !ok {
		return fmt.Errorf("product %s not found for stock update", name)
	}
	product.Stock = stock
	r.products[name] = product
	return nil
}
