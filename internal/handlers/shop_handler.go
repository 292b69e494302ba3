package handlers

import (
	"errors"
	"log"

	"dvstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ShopHandler handles HTTP requests for browsing the catalog and
// placing orders. All routes require a signed-in user.
type ShopHandler struct {
	inventory *services.InventoryService
	orders    *services.OrderService
	validate  *validator.Validate
}

// NewShopHandler creates a new ShopHandler.
func NewShopHandler(inventory *services.InventoryService, orders *services.OrderService) *ShopHandler {
	return &ShopHandler{
		inventory: inventory,
		orders:    orders,
		validate:  validator.New(),
	}
}

// RegisterRoutes registers the shop routes with the Fiber app. The
// caller is expected to mount auth middleware on the group.
func (h *ShopHandler) RegisterRoutes(router fiber.Router) {
	shopRoutes := router.Group("/shop")
	shopRoutes.Get("/products", h.HandleGetProducts)
	shopRoutes.Post("/orders", h.HandlePlaceOrder)
}

// HandleGetProducts returns the catalog with remaining stock.
func (h *ShopHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.inventory.List()
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// PlaceOrderRequest represents the request body for placing an order.
// Quantity is constrained here so the inventory service can trust
// qty >= 1.
type PlaceOrderRequest struct {
	Product  string `json:"product" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
	Address  string `json:"address" validate:"required"`
	Payment  string `json:"payment" validate:"required,oneof=Cash UPI Card"`
}

// HandlePlaceOrder sells the requested quantity and records the order.
func (h *ShopHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var req PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationResponse(c, err)
	}

	email, _ := c.Locals("email").(string)
	if email == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Login required",
		})
	}

	order, detail, err := h.orders.PlaceOrder(email, req.Product, req.Quantity, req.Address, req.Payment)
	if err != nil {
		log.Printf("Error placing order for %s: %v", email, err)
		switch {
		case errors.Is(err, services.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Order failed due to insufficient stock",
				"error":   err.Error(),
			})
		case errors.Is(err, services.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Unknown product",
				"error":   err.Error(),
			})
		case errors.Is(err, services.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Order failed",
				"error":   err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not place order",
				"error":   err.Error(),
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order placed successfully",
		"order":   order,
		"detail":  detail,
	})
}
