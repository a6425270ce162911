package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"facilitrack/internal/domain"
	"facilitrack/internal/middleware"
	"facilitrack/internal/service/category"
)

type CategoryHandler struct {
	categoryService category.Service
}

func NewCategoryHandler(categoryService category.Service) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	buildingID, err := uuid.Parse(c.Params("buildingId"))
	if err != nil {
		return middleware.BadRequest("invalid building ID")
	}

	var input domain.CreateCategoryInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("invalid request body")
	}
	if input.Name == "" {
		return middleware.BadRequest("name is required")
	}

	cat, err := h.categoryService.Create(c.Context(), middleware.GetOrgID(c), buildingID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(cat)
}

func (h *CategoryHandler) ListByBuilding(c *fiber.Ctx) error {
	buildingID, err := uuid.Parse(c.Params("buildingId"))
	if err != nil {
		return middleware.BadRequest("invalid building ID")
	}

	params := getPaginationParams(c)

	result, err := h.categoryService.ListByBuilding(c.Context(), middleware.GetOrgID(c), buildingID, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("invalid category ID")
	}

	cat, err := h.categoryService.GetByID(c.Context(), middleware.GetOrgID(c), id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(cat)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("invalid category ID")
	}

	var input domain.UpdateCategoryInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("invalid request body")
	}

	cat, err := h.categoryService.Update(c.Context(), middleware.GetOrgID(c), id, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(cat)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("invalid category ID")
	}

	if err := h.categoryService.Delete(c.Context(), middleware.GetOrgID(c), id); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
