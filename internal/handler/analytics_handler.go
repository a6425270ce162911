package handler

import (
	"github.com/gofiber/fiber/v2"

	"facilitrack/internal/middleware"
	"facilitrack/internal/service/analytics"
)

type AnalyticsHandler struct {
	analyticsService analytics.Service
}

func NewAnalyticsHandler(analyticsService analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.analyticsService.GetSummary(c.Context(), middleware.GetOrgID(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(summary)
}
