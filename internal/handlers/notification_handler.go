package handlers

import (
	"Stash/internal/services"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	notificationService services.NotificationService
}

func NewNotificationHandler(notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) ListNotifications(c *fiber.Ctx) error {
	user := CurrentUser(c)

	unreadOnly := c.Query("unread") == "true"
	limit := 50
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	notifications, err := h.notificationService.List(user.ID, unreadOnly, limit)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(notifications)
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	count, err := h.notificationService.UnreadCount(CurrentUser(c).ID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"unread": count})
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	var req struct {
		IDs []uuid.UUID `json:"ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if len(req.IDs) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "ids is required"})
	}

	updated, err := h.notificationService.MarkRead(CurrentUser(c).ID, req.IDs)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"updated": updated})
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	updated, err := h.notificationService.MarkAllRead(CurrentUser(c).ID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"updated": updated})
}
