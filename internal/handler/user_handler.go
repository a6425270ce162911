package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"facilitrack/internal/domain"
	"facilitrack/internal/middleware"
	"facilitrack/internal/service/user"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) ListStaff(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	result, err := h.userService.ListStaff(c.Context(), middleware.GetOrgID(c), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *UserHandler) ChangeRole(c *fiber.Ctx) error {
	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("invalid user ID")
	}

	var input domain.ChangeRoleInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("invalid request body")
	}

	if err := h.userService.ChangeRole(c.Context(), middleware.GetOrgID(c), middleware.GetCurrentUserID(c), targetID, input.Role); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "role updated"})
}

func (h *UserHandler) SetActive(c *fiber.Ctx) error {
	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("invalid user ID")
	}

	var input domain.SetActiveInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("invalid request body")
	}

	if err := h.userService.SetActive(c.Context(), middleware.GetOrgID(c), middleware.GetCurrentUserID(c), targetID, input.IsActive); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "user updated"})
}
