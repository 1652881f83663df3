package handler

import (
	"go-restaurant-pos/internal/model"
	"go-restaurant-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AccountingHandler struct {
	service service.AccountingService
}

func NewAccountingHandler(s service.AccountingService) *AccountingHandler {
	return &AccountingHandler{service: s}
}

// GetOverview returns the month-to-date accounting dashboard
// GET /api/v1/accounting/overview
func (h *AccountingHandler) GetOverview(c *fiber.Ctx) error {
	overview, err := h.service.GetOverview()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch accounting overview"})
	}
	return c.JSON(overview)
}

// RecordExpense books an expense entry
// POST /api/v1/accounting/expenses
func (h *AccountingHandler) RecordExpense(c *fiber.Ctx) error {
	var expense model.Expense
	if err := c.BodyParser(&expense); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.RecordExpense(&expense, getUserID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Expense recorded", "data": expense})
}

// RecordRevenue books a revenue entry outside of POS sales
// POST /api/v1/accounting/revenues
func (h *AccountingHandler) RecordRevenue(c *fiber.Ctx) error {
	var revenue model.Revenue
	if err := c.BodyParser(&revenue); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.RecordRevenue(&revenue, getUserID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Revenue recorded", "data": revenue})
}

// CreatePayable opens an accounts payable ledger entry
// POST /api/v1/accounting/payables
func (h *AccountingHandler) CreatePayable(c *fiber.Ctx) error {
	var payable model.AccountsPayable
	if err := c.BodyParser(&payable); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreatePayable(&payable, getUserID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Payable created", "data": payable})
}

// CreateReceivable opens an accounts receivable ledger entry
// POST /api/v1/accounting/receivables
func (h *AccountingHandler) CreateReceivable(c *fiber.Ctx) error {
	var receivable model.AccountsReceivable
	if err := c.BodyParser(&receivable); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateReceivable(&receivable, getUserID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Receivable created", "data": receivable})
}
