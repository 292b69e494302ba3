package repositories

import (
	"fmt"
	"sync"

	"dvstore/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders  []models.Order
	details []models.OrderDetail
	mu      sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{}
}

// CreateWithDetail appends the summary and its line item together under
// one lock, mirroring the transactional contract of the GORM
// implementation.
func (r *MockOrderRepository) CreateWithDetail(order *models.Order, detail *models.OrderDetail) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if detail.OrderID != order.OrderID {
		return fmt.Errorf("detail order ID %d does not match summary order ID %d", detail.OrderID, order.OrderID)
	}
	r.orders = append(r.orders, *order)
	r.details = append(r.details, *detail)
	return nil
}

// GetAll returns all order summaries in insertion order.
func (r *MockOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]models.Order, len(r.orders))
	copy(orders, r.orders)
	return orders, nil
}

// GetAllDetails returns all order line items in insertion order.
func (r *MockOrderRepository) GetAllDetails() ([]models.OrderDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	details := make([]models.OrderDetail, len(r.details))
	copy(details, r.details)
	return details, nil
}

// GetDetailsByOrderID returns the line items recorded under an order ID.
func (r *MockOrderRepository) GetDetailsByOrderID(orderID int) ([]models.OrderDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var details []models.OrderDetail
	for _, d := range r.details {
		if d.OrderID == orderID {
			details = append(details, d)
		}
	}
	return details, nil
}
