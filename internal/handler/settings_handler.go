package handler

import (
	"errors"

	"go-restaurant-pos/internal/model"
	"go-restaurant-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	service service.SettingsService
}

func NewSettingsHandler(s service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: s}
}

// GetSettings lists all system settings grouped by category on the client
// GET /api/v1/settings
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.service.GetSettings()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch settings"})
	}
	return c.JSON(settings)
}

// UpdateSetting changes a single setting's value
// PUT /api/v1/settings/:id
func (h *SettingsHandler) UpdateSetting(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid setting ID"})
	}

	var req struct {
		Value string `json:"value"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.UpdateSetting(id, req.Value, getUserID(c)); err != nil {
		if errors.Is(err, service.ErrSettingNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update setting"})
	}

	return c.JSON(fiber.Map{"message": "Setting updated"})
}

// GetMenuItems returns the sidebar menu for the caller's UI
// GET /api/v1/settings/menu
func (h *SettingsHandler) GetMenuItems(c *fiber.Ctx) error {
	items, err := h.service.GetMenuItems()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch menu"})
	}
	return c.JSON(items)
}

// CreateMenuItem pins a product onto the POS menu layout
// POST /api/v1/settings/menu
func (h *SettingsHandler) CreateMenuItem(c *fiber.Ctx) error {
	var req model.MenuItem
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateMenuItem(&req, getUserID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Menu item created", "data": req})
}

// DeleteMenuItem removes a product from the POS menu layout
// DELETE /api/v1/settings/menu/:id
func (h *SettingsHandler) DeleteMenuItem(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid menu item ID"})
	}

	if err := h.service.DeleteMenuItem(id, getUserID(c)); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete menu item"})
	}
	return c.JSON(fiber.Map{"message": "Menu item deleted"})
}

// GetSystemStatus reports database connectivity for the status page
// GET /api/v1/settings/status
func (h *SettingsHandler) GetSystemStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"database": h.service.CheckDatabase()})
}
