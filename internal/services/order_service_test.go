package services_test

import (
	"testing"

	"dvstore/internal/models"
	"dvstore/internal/repositories"
	"dvstore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderService(t *testing.T) (*services.OrderService, *repositories.MockOrderRepository, *repositories.MockProductRepository) {
	t.Helper()
	inventory, productRepo := newSeededInventory(t)
	orderRepo := repositories.NewMockOrderRepository()
	// nil MQ client: publishing is skipped, never required for an order
	svc := services.NewOrderService(orderRepo, inventory, nil)
	return svc, orderRepo, productRepo
}

func TestOrderService_PlaceOrder(t *testing.T) {
	svc, orderRepo, productRepo := newOrderService(t)

	order, detail, err := svc.PlaceOrder("a@b.com", "Coke", 5, "12 Main St", "Cash")
	require.NoError(t, err)

	assert.Equal(t, "a@b.com", order.Email)
	assert.GreaterOrEqual(t, order.OrderID, 100000)
	assert.LessOrEqual(t, order.OrderID, 999999)
	assert.Equal(t, "Cash", order.Payment)
	assert.Equal(t, "12 Main St", order.Address)
	assert.False(t, order.Date.IsZero())

	assert.Equal(t, order.OrderID, detail.OrderID)
	assert.Equal(t, "Coke", detail.Item)
	assert.Equal(t, 5, detail.Quantity)
	assert.Equal(t, 5*models.UnitPrice, detail.Total)

	// The sale went through the ledger
	product, err := productRepo.GetByName("Coke")
	assert.NoError(t, err)
	assert.Equal(t, 55, product.Stock)

	// Both rows are persisted together
	orders, err := orderRepo.GetAll()
	assert.NoError(t, err)
	require.Len(t, orders, 1)
	details, err := orderRepo.GetDetailsByOrderID(order.OrderID)
	assert.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, detail.Total, details[0].Total)
}

func TestOrderService_PlaceOrder_AddressRequired(t *testing.T) {
	svc, orderRepo, productRepo := newOrderService(t)

	_, _, err := svc.PlaceOrder("a@b.com", "Coke", 5, "", "Cash")
	assert.ErrorIs(t, err, services.ErrValidation)

	// Nothing was sold or recorded
	product, err := productRepo.GetByName("Coke")
	assert.NoError(t, err)
	assert.Equal(t, models.MaxStock, product.Stock)
	orders, err := orderRepo.GetAll()
	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_PlaceOrder_InsufficientStock(t *testing.T) {
	svc, orderRepo, _ := newOrderService(t)

	_, _, err := svc.PlaceOrder("a@b.com", "Coke", models.MaxStock+1, "12 Main St", "Cash")
	assert.ErrorIs(t, err, services.ErrInsufficientStock)

	orders, err := orderRepo.GetAll()
	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_PlaceOrder_ExhaustingStockWrapsAround(t *testing.T) {
	svc, orderRepo, productRepo := newOrderService(t)

	_, detail, err := svc.PlaceOrder("a@b.com", "Sprite", models.MaxStock, "12 Main St", "UPI")
	require.NoError(t, err)
	assert.Equal(t, float64(models.MaxStock)*models.UnitPrice, detail.Total)

	// The depleted product is back at full stock with no restock record
	product, err := productRepo.GetByName("Sprite")
	assert.NoError(t, err)
	assert.Equal(t, models.MaxStock, product.Stock)

	orders, err := orderRepo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderService_Listings(t *testing.T) {
	svc, _, _ := newOrderService(t)

	_, _, err := svc.PlaceOrder("a@b.com", "Coke", 1, "12 Main St", "Card")
	require.NoError(t, err)
	_, _, err = svc.PlaceOrder("c@d.com", "Monster", 2, "34 Side St", "Cash")
	require.NoError(t, err)

	orders, err := svc.GetAllOrders()
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, "a@b.com", orders[0].Email)
	assert.Equal(t, "c@d.com", orders[1].Email)

	details, err := svc.GetAllDetails()
	assert.NoError(t, err)
	assert.Len(t, details, 2)
	assert.Equal(t, "Coke", details[0].Item)
	assert.Equal(t, "Monster", details[1].Item)
}
