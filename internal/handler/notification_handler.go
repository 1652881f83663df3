package handler

import (
	"strconv"

	"go-restaurant-pos/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationHandler(repo repository.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notificationRepo: repo}
}

// GetNotifications lists the caller's notifications, newest first
// GET /api/v1/notifications?limit=
func (h *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	userID, err := parseUUID(getUserID(c))
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	limit, _ := strconv.Atoi(c.Query("limit", "50"))

	notifications, err := h.notificationRepo.FindForUser(userID, limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch notifications"})
	}

	return c.JSON(notifications)
}

// MarkNotificationRead flags a notification as read
// POST /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkNotificationRead(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid notification ID"})
	}

	if err := h.notificationRepo.MarkRead(id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to mark notification read"})
	}

	return c.JSON(fiber.Map{"message": "Notification read"})
}
