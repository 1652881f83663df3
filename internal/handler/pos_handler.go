package handler

import (
	"strconv"

	"go-restaurant-pos/internal/repository"
	"go-restaurant-pos/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type POSHandler struct {
	service service.POSService
}

func NewPOSHandler(s service.POSService) *POSHandler {
	return &POSHandler{service: s}
}

// terminalID identifies the cart owner. The header is what a POS terminal
// sends; without it the cart is keyed per user, so a user's cart follows
// them across requests from the same login.
func terminalID(c *fiber.Ctx) string {
	if id := c.Get("X-Terminal-ID"); id != "" {
		return id
	}
	return getUserID(c)
}

// GetCategories returns active categories in display order
// GET /api/v1/pos/categories
func (h *POSHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetCategories()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch categories"})
	}
	return c.JSON(categories)
}

// GetProducts returns the sellable catalog
// GET /api/v1/pos/products?category_id=&search=
func (h *POSHandler) GetProducts(c *fiber.Ctx) error {
	filter := repository.ProductFilter{
		Search:       c.Query("search"),
		SellableOnly: true,
	}
	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
		}
		filter.CategoryID = &id
	}

	products, err := h.service.GetProducts(filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch products"})
	}
	return c.JSON(products)
}

// GetCart returns the terminal's current cart
// GET /api/v1/pos/cart
func (h *POSHandler) GetCart(c *fiber.Ctx) error {
	return c.JSON(h.service.GetCart(terminalID(c)))
}

// AddToCart adds one unit of a product to the cart
// POST /api/v1/pos/cart/items
func (h *POSHandler) AddToCart(c *fiber.Ctx) error {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	view, err := h.service.AddToCart(terminalID(c), productID)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(view)
}

// UpdateCartItem sets a line's quantity; zero or negative removes it
// PUT /api/v1/pos/cart/items/:productId
func (h *POSHandler) UpdateCartItem(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("productId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	view, err := h.service.UpdateCartQuantity(terminalID(c), productID, req.Quantity)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(view)
}

// RemoveCartItem deletes a line from the cart
// DELETE /api/v1/pos/cart/items/:productId
func (h *POSHandler) RemoveCartItem(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("productId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	view, err := h.service.RemoveFromCart(terminalID(c), productID)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(view)
}

// Checkout turns the cart into an order, items, payment and receipt
// POST /api/v1/pos/checkout
func (h *POSHandler) Checkout(c *fiber.Ctx) error {
	var req service.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	result, err := h.service.Checkout(terminalID(c), &req, getUserID(c), getUserName(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Order completed", "data": result})
}

// GetRecentOrders returns the latest orders for the order-history panel
// GET /api/v1/pos/orders?limit=20
func (h *POSHandler) GetRecentOrders(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	orders, err := h.service.GetRecentOrders(limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch orders"})
	}
	return c.JSON(orders)
}
