package handlers

import (
	"log"

	"dvstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles admin login and the read-only inventory and
// order listings.
type AdminHandler struct {
	admin     *services.AdminService
	inventory *services.InventoryService
	orders    *services.OrderService
	validate  *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(admin *services.AdminService, inventory *services.InventoryService, orders *services.OrderService) *AdminHandler {
	return &AdminHandler{
		admin:     admin,
		inventory: inventory,
		orders:    orders,
		validate:  validator.New(),
	}
}

// RegisterLoginRoute registers the unauthenticated admin login route.
func (h *AdminHandler) RegisterLoginRoute(router fiber.Router) {
	router.Post("/admin/login", h.HandleLogin)
}

// RegisterRoutes registers the protected admin routes. The caller is
// expected to mount admin middleware on the group.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/inventory", h.HandleGetInventory)
	router.Get("/orders", h.HandleGetOrders)
}

// AdminLoginRequest represents the request body for admin login.
type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin authenticates an administrator and issues an admin JWT.
func (h *AdminHandler) HandleLogin(c *fiber.Ctx) error {
	var req AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing admin login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationResponse(c, err)
	}

	token, err := h.admin.Login(req.Username, req.Password)
	if err != nil {
		log.Printf("Error during admin login for %s: %v", req.Username, err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid admin credentials",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Admin logged in",
		"token":   token,
	})
}

// HandleGetInventory returns the full catalog with remaining stock.
func (h *AdminHandler) HandleGetInventory(c *fiber.Ctx) error {
	products, err := h.inventory.List()
	if err != nil {
		log.Printf("Error listing inventory: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve inventory",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleGetOrders returns every order summary with its line items.
func (h *AdminHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.orders.GetAllOrders()
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	details, err := h.orders.GetAllDetails()
	if err != nil {
		log.Printf("Error listing order details: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order details",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"orders":  orders,
		"details": details,
	})
}
