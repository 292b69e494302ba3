package repositories

import (
	"fmt"

	"dvstore/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// CreateWithDetail writes the order summary and its line item in one
// transaction so an interrupted write never leaves a summary without a
// detail.
func (r *GORMOrderRepository) CreateWithDetail(order *models.Order, detail *models.OrderDetail) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order summary: %w", err)
		}
		if err := tx.Create(detail).Error; err != nil {
			return fmt.Errorf("failed to create order detail: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record order %d: %w", order.OrderID, err)
	}
	return nil
}

// GetAll retrieves all order summaries, oldest first.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Order("created_at").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// GetAllDetails retrieves all order line items, oldest first.
func (r *GORMOrderRepository) GetAllDetails() ([]models.OrderDetail, error) {
	var details []models.OrderDetail
	if err := r.db.Order("created_at").Find(&details).Error; err != nil {
		return nil, fmt.Errorf("failed to get all order details: %w", err)
	}
	return details, nil
}

// GetDetailsByOrderID retrieves the line items recorded under an order
// ID. Order IDs are not unique, so this can return rows from more than
// one purchase.
func (r *GORMOrderRepository) GetDetailsByOrderID(orderID int) ([]models.OrderDetail, error) {
	var details []models.OrderDetail
	if err := r.db.Where("order_id = ?", orderID).Find(&details).Error; err != nil {
		return nil, fmt.Errorf("failed to get details for order %d: %w", orderID, err)
	}
	return details, nil
}
