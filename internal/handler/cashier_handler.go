package handler

import (
	"errors"
	"strconv"

	"go-restaurant-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CashierHandler struct {
	service service.CashierService
}

func NewCashierHandler(s service.CashierService) *CashierHandler {
	return &CashierHandler{service: s}
}

// OpenShift starts a cashier shift with an opening float
// POST /api/v1/cashier/shifts/open
func (h *CashierHandler) OpenShift(c *fiber.Ctx) error {
	var req service.OpenShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	shift, err := h.service.OpenShift(&req, getUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrNegativeBalance) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to open shift"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Shift opened", "data": shift})
}

// CloseShift ends the open shift with a counted closing balance
// POST /api/v1/cashier/shifts/close
func (h *CashierHandler) CloseShift(c *fiber.Ctx) error {
	var req service.CloseShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	shift, err := h.service.CloseShift(&req, getUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoOpenShift):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrNegativeBalance):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to close shift"})
	}

	return c.JSON(fiber.Map{"message": "Shift closed", "data": shift})
}

// CurrentShift returns the open shift, or null when none is open
// GET /api/v1/cashier/shifts/current
func (h *CashierHandler) CurrentShift(c *fiber.Ctx) error {
	shift, err := h.service.CurrentShift()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch shift"})
	}
	return c.JSON(fiber.Map{"data": shift})
}

// GetShiftHistory lists recent shifts, newest first
// GET /api/v1/cashier/shifts?limit=
func (h *CashierHandler) GetShiftHistory(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	shifts, err := h.service.GetShiftHistory(limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch shifts"})
	}
	return c.JSON(shifts)
}

// GetShift returns one shift by its ID
// GET /api/v1/cashier/shifts/:id
func (h *CashierHandler) GetShift(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid shift ID"})
	}

	shift, err := h.service.GetShift(id)
	if err != nil {
		if errors.Is(err, service.ErrShiftNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch shift"})
	}
	return c.JSON(shift)
}

// ProcessPayment records a payment against an existing order
// POST /api/v1/cashier/payments
func (h *CashierHandler) ProcessPayment(c *fiber.Ctx) error {
	var req service.ProcessPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	payment, err := h.service.ProcessPayment(&req, getUserID(c), getUserName(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidMethod), errors.Is(err, service.ErrInvalidPayAmount):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to process payment"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Payment recorded", "data": payment})
}

// GetRecentPayments lists recent payments, newest first
// GET /api/v1/cashier/payments?limit=
func (h *CashierHandler) GetRecentPayments(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	payments, err := h.service.GetRecentPayments(limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}
	return c.JSON(payments)
}

// GetOrderPayments lists the payments recorded against one order
// GET /api/v1/cashier/orders/:id/payments
func (h *CashierHandler) GetOrderPayments(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	payments, err := h.service.GetOrderPayments(id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}
	return c.JSON(payments)
}

// GetDailySummary totals today's completed payments by method
// GET /api/v1/cashier/payments/summary
func (h *CashierHandler) GetDailySummary(c *fiber.Ctx) error {
	summary, err := h.service.GetDailySummary()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch summary"})
	}
	return c.JSON(summary)
}

// GetRecentReceipts lists recent receipts, newest first
// GET /api/v1/cashier/receipts?limit=
func (h *CashierHandler) GetRecentReceipts(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	receipts, err := h.service.GetRecentReceipts(limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch receipts"})
	}
	return c.JSON(receipts)
}

// PrintReceipt renders a receipt as plain text and marks it printed
// POST /api/v1/cashier/receipts/:id/print
func (h *CashierHandler) PrintReceipt(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid receipt ID"})
	}

	text, err := h.service.PrintReceipt(id, getUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReceiptNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrReceiptPrinted):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to print receipt"})
	}

	return c.JSON(fiber.Map{"message": "Receipt printed", "data": text})
}
