package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"facilitrack/internal/domain"
	"facilitrack/internal/middleware"
	"facilitrack/internal/service/reading"
)

type ReadingHandler struct {
	readingService reading.Service
}

func NewReadingHandler(readingService reading.Service) *ReadingHandler {
	return &ReadingHandler{readingService: readingService}
}

func (h *ReadingHandler) Submit(c *fiber.Ctx) error {
	var input domain.SubmitReadingInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("invalid request body")
	}
	if input.TaskID == uuid.Nil {
		return middleware.BadRequest("task_id is required")
	}

	r, err := h.readingService.Submit(c.Context(), middleware.GetOrgID(c), middleware.GetCurrentUserID(c), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(r)
}

func (h *ReadingHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	var status *domain.ReadingStatus
	if s := c.Query("status"); s != "" {
		st := domain.ReadingStatus(s)
		status = &st
	}

	result, err := h.readingService.List(c.Context(), middleware.GetOrgID(c), status, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *ReadingHandler) ListPending(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	status := domain.ReadingPending
	result, err := h.readingService.List(c.Context(), middleware.GetOrgID(c), &status, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *ReadingHandler) MyHistory(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	result, err := h.readingService.HistoryFor(c.Context(), middleware.GetOrgID(c), middleware.GetCurrentUserID(c), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// ApprovedByCategory serves the approved history of one equipment category
// in one building, newest first.
func (h *ReadingHandler) ApprovedByCategory(c *fiber.Ctx) error {
	buildingID, err := uuid.Parse(c.Params("buildingId"))
	if err != nil {
		return middleware.BadRequest("invalid building ID")
	}
	categoryID, err := uuid.Parse(c.Params("categoryId"))
	if err != nil {
		return middleware.BadRequest("invalid category ID")
	}

	params := getPaginationParams(c)

	result, err := h.readingService.ApprovedByCategory(c.Context(), middleware.GetOrgID(c), buildingID, categoryID, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *ReadingHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("invalid reading ID")
	}

	r, err := h.readingService.GetByID(c.Context(), middleware.GetOrgID(c), id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(r)
}

func (h *ReadingHandler) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("invalid reading ID")
	}

	var input domain.ReviewReadingInput
	_ = c.BodyParser(&input)

	if err := h.readingService.Approve(c.Context(), middleware.GetOrgID(c), middleware.GetCurrentUserID(c), id, input.Comment); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "reading approved"})
}

func (h *ReadingHandler) Reject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("invalid reading ID")
	}

	var input domain.ReviewReadingInput
	_ = c.BodyParser(&input)

	if err := h.readingService.Reject(c.Context(), middleware.GetOrgID(c), middleware.GetCurrentUserID(c), id, input.Comment); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "reading rejected"})
}

func (h *ReadingHandler) ListComments(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("invalid reading ID")
	}

	comments, err := h.readingService.ListComments(c.Context(), middleware.GetOrgID(c), id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": comments})
}

func (h *ReadingHandler) AddComment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("invalid reading ID")
	}

	var input domain.CreateReadingCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("invalid request body")
	}

	comment, err := h.readingService.AddComment(c.Context(), middleware.GetOrgID(c), middleware.GetCurrentUserID(c), id, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}
