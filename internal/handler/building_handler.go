package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"facilitrack/internal/domain"
	"facilitrack/internal/middleware"
	"facilitrack/internal/service/building"
)

type BuildingHandler struct {
	buildingService building.Service
}

func NewBuildingHandler(buildingService building.Service) *BuildingHandler {
	return &BuildingHandler{buildingService: buildingService}
}

func (h *BuildingHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateBuildingInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("invalid request body")
	}
	if input.Name == "" {
		return middleware.BadRequest("name is required")
	}

	b, err := h.buildingService.Create(c.Context(), middleware.GetOrgID(c), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(b)
}

func (h *BuildingHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	result, err := h.buildingService.List(c.Context(), middleware.GetOrgID(c), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *BuildingHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("invalid building ID")
	}

	b, err := h.buildingService.GetByID(c.Context(), middleware.GetOrgID(c), id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(b)
}

func (h *BuildingHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("invalid building ID")
	}

	var input domain.UpdateBuildingInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("invalid request body")
	}

	b, err := h.buildingService.Update(c.Context(), middleware.GetOrgID(c), id, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(b)
}

func (h *BuildingHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("invalid building ID")
	}

	if err := h.buildingService.Delete(c.Context(), middleware.GetOrgID(c), id); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
