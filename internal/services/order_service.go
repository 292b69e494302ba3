package services

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"time"

	"dvstore/internal/models"
	"dvstore/internal/repositories"
	"dvstore/pkg/rabbitmq"
)

// OrderService handles business logic related to placing and listing
// orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	inventory *InventoryService
	mqClient  *rabbitmq.Client // nil when messaging is disabled
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, inventory *InventoryService, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		inventory: inventory,
		mqClient:  mqClient,
	}
}

// PlaceOrder sells qty units of the named product and records the
// purchase: one summary row and one line-item row, written in a single
// commit. The returned order carries the 6-digit order ID; IDs are not
// unique and collisions are not detected.
func (s *OrderService) PlaceOrder(email, product string, qty int, address, payment string) (*models.Order, *models.OrderDetail, error) {
	if address == "" {
		return nil, nil, fmt.Errorf("%w: address required", ErrValidation)
	}

	sold, err := s.inventory.Sell(product, qty)
	if err != nil {
		return nil, nil, err
	}

	order := &models.Order{
		Email:   email,
		OrderID: 100000 + rand.Intn(900000),
		Payment: payment,
		Address: address,
		Date:    time.Now(),
	}
	detail := &models.OrderDetail{
		OrderID:  order.OrderID,
		Item:     sold.Name,
		Quantity: qty,
		Total:    float64(qty) * sold.Price,
	}

	if err := s.orderRepo.CreateWithDetail(order, detail); err != nil {
		return nil, nil, fmt.Errorf("failed to record order: %w", err)
	}

	s.publishOrderCreated(order, detail)
	return order, detail, nil
}

// GetAllOrders retrieves all order summaries.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetAllDetails retrieves all order line items.
func (s *OrderService) GetAllDetails() ([]models.OrderDetail, error) {
	return s.orderRepo.GetAllDetails()
}

// publishOrderCreated emits an order.created event, best-effort: a
// publish failure is logged and never fails the order.
func (s *OrderService) publishOrderCreated(order *models.Order, detail *models.OrderDetail) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return
	}

	event := map[string]interface{}{
		"order_id": order.OrderID,
		"email":    order.Email,
		"item":     detail.Item,
		"quantity": detail.Quantity,
		"total":    detail.Total,
		"payment":  order.Payment,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order event to JSON: %v", err)
		return
	}
	if err := s.mqClient.PublishOrderCreated(body); err != nil {
		log.Printf("Warning: Failed to publish order created event for order %d: %v", order.OrderID, err)
		return
	}
	log.Printf("Successfully published order created event for order %d", order.OrderID)
}
