package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"facilitrack/internal/middleware"
	"facilitrack/internal/service/notification"
)

type NotificationHandler struct {
	notifService notification.Service
}

func NewNotificationHandler(notifService notification.Service) *NotificationHandler {
	return &NotificationHandler{notifService: notifService}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)
	unreadOnly := c.Query("unread_only") == "true"

	result, err := h.notifService.List(c.Context(), middleware.GetCurrentUserID(c), unreadOnly, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	count, err := h.notifService.UnreadCount(c.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"count": count})
}

func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("invalid notification ID")
	}

	if err := h.notifService.MarkAsRead(c.Context(), middleware.GetCurrentUserID(c), id); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *NotificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	if err := h.notifService.MarkAllAsRead(c.Context(), middleware.GetCurrentUserID(c)); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("invalid notification ID")
	}

	if err := h.notifService.Delete(c.Context(), middleware.GetCurrentUserID(c), id); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
