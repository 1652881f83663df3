package handler

import (
	"errors"
	"strconv"
	"time"

	"go-restaurant-pos/internal/model"
	"go-restaurant-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type HRMHandler struct {
	service service.HRMService
}

func NewHRMHandler(s service.HRMService) *HRMHandler {
	return &HRMHandler{service: s}
}

// GetEmployees lists all employees
// GET /api/v1/hrm/employees
func (h *HRMHandler) GetEmployees(c *fiber.Ctx) error {
	employees, err := h.service.GetEmployees()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch employees"})
	}
	return c.JSON(employees)
}

// CreateEmployee registers a new employee
// POST /api/v1/hrm/employees
func (h *HRMHandler) CreateEmployee(c *fiber.Ctx) error {
	var employee model.Employee
	if err := c.BodyParser(&employee); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateEmployee(&employee, getUserID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Employee created", "data": employee})
}

// UpdateEmployee replaces an employee's editable fields
// PUT /api/v1/hrm/employees/:id
func (h *HRMHandler) UpdateEmployee(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid employee ID"})
	}

	var employee model.Employee
	if err := c.BodyParser(&employee); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateEmployee(id, &employee, getUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Employee updated", "data": updated})
}

// DeleteEmployee soft-deletes an employee
// DELETE /api/v1/hrm/employees/:id
func (h *HRMHandler) DeleteEmployee(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid employee ID"})
	}

	if err := h.service.DeleteEmployee(id, getUserID(c)); err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete employee"})
	}

	return c.JSON(fiber.Map{"message": "Employee deleted"})
}

// CheckIn opens an attendance record for today
// POST /api/v1/hrm/attendances/check-in
func (h *HRMHandler) CheckIn(c *fiber.Ctx) error {
	var req struct {
		EmployeeID string `json:"employee_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	employeeID, err := parseUUID(req.EmployeeID)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid employee ID"})
	}

	attendance, err := h.service.CheckIn(employeeID, getUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmployeeNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrAlreadyCheckedIn):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to check in"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Checked in", "data": attendance})
}

// CheckOut closes the employee's open attendance record
// POST /api/v1/hrm/attendances/check-out
func (h *HRMHandler) CheckOut(c *fiber.Ctx) error {
	var req struct {
		EmployeeID string `json:"employee_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	employeeID, err := parseUUID(req.EmployeeID)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid employee ID"})
	}

	attendance, err := h.service.CheckOut(employeeID, getUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrNotCheckedIn) {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to check out"})
	}

	return c.JSON(fiber.Map{"message": "Checked out", "data": attendance})
}

// GetTodayAttendances lists attendance records since local midnight
// GET /api/v1/hrm/attendances/today
func (h *HRMHandler) GetTodayAttendances(c *fiber.Ctx) error {
	attendances, err := h.service.GetTodayAttendances()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendances"})
	}
	return c.JSON(attendances)
}

// CreatePayroll records a payroll entry; net salary is derived server-side
// POST /api/v1/hrm/payrolls
func (h *HRMHandler) CreatePayroll(c *fiber.Ctx) error {
	var req service.CreatePayrollRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	payroll, err := h.service.CreatePayroll(&req, getUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Payroll created", "data": payroll})
}

// MarkPayrollPaid flips a pending payroll to paid
// POST /api/v1/hrm/payrolls/:id/pay
func (h *HRMHandler) MarkPayrollPaid(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid payroll ID"})
	}

	payroll, err := h.service.MarkPayrollPaid(id, getUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPayrollNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrPayrollAlreadyPaid):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to mark payroll paid"})
	}

	return c.JSON(fiber.Map{"message": "Payroll paid", "data": payroll})
}

// GetPayrolls lists a month's payrolls with totals; defaults to the current month
// GET /api/v1/hrm/payrolls?month=&year=
func (h *HRMHandler) GetPayrolls(c *fiber.Ctx) error {
	now := time.Now()
	month, _ := strconv.Atoi(c.Query("month", strconv.Itoa(int(now.Month()))))
	year, _ := strconv.Atoi(c.Query("year", strconv.Itoa(now.Year())))

	payrolls, summary, err := h.service.GetPayrolls(month, year)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payrolls"})
	}

	return c.JSON(fiber.Map{"payrolls": payrolls, "summary": summary})
}
