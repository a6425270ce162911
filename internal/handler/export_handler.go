package handler

import (
	"github.com/gofiber/fiber/v2"

	"facilitrack/internal/middleware"
	"facilitrack/internal/service/export"
)

type ExportHandler struct {
	exportService export.Service
}

func NewExportHandler(exportService export.Service) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

func (h *ExportHandler) ExportReadings(c *fiber.Ctx) error {
	result, err := h.exportService.ExportReadings(c.Context(), middleware.GetOrgID(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
