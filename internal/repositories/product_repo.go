package repositories

import (
	"dvstore/internal/models"
)

// ProductRepository defines the interface for product data access.
// Products are identified by name; the catalog is fixed at seed time.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByName(name string) (*models.Product, error)
	Create(product *models.Product) error
	UpdateStock(name string, stock int) error
}
