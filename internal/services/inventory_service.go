package services

import (
	"fmt"
	"log"
	"sync"

	"dvstore/internal/models"
	"dvstore/internal/repositories"
)

// InventoryService handles business logic for the stock ledger.
//
// The sell path is serialised with a mutex: the ledger assumes a single
// writer, and the HTTP server is concurrent.
type InventoryService struct {
	repo repositories.ProductRepository
	mu   sync.Mutex
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(repo repositories.ProductRepository) *InventoryService {
	return &InventoryService{
		repo: repo,
	}
}

// Seed populates an empty catalog with every product at full stock.
// Called once at startup; a non-empty catalog is left alone.
func (s *InventoryService) Seed() error {
	products, err := s.repo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}
	if len(products) > 0 {
		return nil
	}
	for _, name := range models.CatalogNames {
		p := &models.Product{
			Name:  name,
			Price: models.UnitPrice,
			Stock: models.MaxStock,
		}
		if err := s.repo.Create(p); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", name, err)
		}
		log.Printf("Seeded product: %s (stock: %d)", name, models.MaxStock)
	}
	return nil
}

// List returns the current catalog with remaining stock.
func (s *InventoryService) List() ([]models.Product, error) {
	return s.repo.GetAll()
}

// Sell removes qty units of the named product and persists the new
// stock, returning the product as sold (price and name for the order
// record). It fails closed: when qty exceeds the remaining stock
// nothing is modified. A sale that drives the stock to zero resets it
// to MaxStock with no record of the depletion.
func (s *InventoryService) Sell(name string, qty int) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.repo.GetByName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: product %s", ErrNotFound, name)
	}
	if product.Stock < qty {
		return nil, fmt.Errorf("%w: product %s (requested: %d, available: %d)",
			ErrInsufficientStock, name, qty, product.Stock)
	}

	remaining := product.Stock - qty
	if remaining <= 0 {
		remaining = models.MaxStock
	}
	if err := s.repo.UpdateStock(name, remaining); err != nil {
		return nil, fmt.Errorf("failed to persist stock for %s: %w", name, err)
	}
	product.Stock = remaining
	return product, nil
}
