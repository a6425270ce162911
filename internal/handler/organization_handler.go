package handler

import (
	"github.com/gofiber/fiber/v2"

	"facilitrack/internal/middleware"
	"facilitrack/internal/service/organization"
)

type OrganizationHandler struct {
	orgService organization.Service
}

func NewOrganizationHandler(orgService organization.Service) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

func (h *OrganizationHandler) Get(c *fiber.Ctx) error {
	org, err := h.orgService.Get(c.Context(), middleware.GetOrgID(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(org)
}

func (h *OrganizationHandler) RotateInviteCode(c *fiber.Ctx) error {
	org, err := h.orgService.RotateInviteCode(c.Context(), middleware.GetOrgID(c), middleware.GetCurrentUserID(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(org)
}
