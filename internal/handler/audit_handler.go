package handler

import (
	"strconv"

	"go-restaurant-pos/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// AuditHandler reads the audit log directly; entries are written by the
// services, never through this handler.
type AuditHandler struct {
	auditRepo repository.AuditRepository
}

func NewAuditHandler(auditRepo repository.AuditRepository) *AuditHandler {
	return &AuditHandler{auditRepo: auditRepo}
}

// GetAuditLogs lists recent audit entries, newest first
// GET /api/v1/audit/logs?system=&action=&limit=
func (h *AuditHandler) GetAuditLogs(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "100"))

	logs, err := h.auditRepo.Find(repository.AuditFilter{
		System: c.Query("system"),
		Action: c.Query("action"),
		Limit:  limit,
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch audit logs"})
	}

	return c.JSON(logs)
}
