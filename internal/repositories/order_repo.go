package repositories

import (
	"dvstore/internal/models"
)

// OrderRepository defines the interface for order data access.
// CreateWithDetail must write the summary and its line item as a single
// commit: a summary must never be persisted without its detail.
type OrderRepository interface {
	CreateWithDetail(order *models.Order, detail *models.OrderDetail) error
	GetAll() ([]models.Order, error)
	GetAllDetails() ([]models.OrderDetail, error)
	GetDetailsByOrderID(orderID int) ([]models.OrderDetail, error)
}
