package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"facilitrack/internal/domain"
	"facilitrack/internal/middleware"
	"facilitrack/internal/service/task"
)

type TaskHandler struct {
	taskService task.Service
}

func NewTaskHandler(taskService task.Service) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateTaskInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("invalid request body")
	}
	if input.Name == "" {
		return middleware.BadRequest("name is required")
	}

	t, err := h.taskService.Create(c.Context(), middleware.GetOrgID(c), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(t)
}

func (h *TaskHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	result, err := h.taskService.List(c.Context(), middleware.GetOrgID(c), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// AvailableForReading returns only the caller's assigned active tasks whose
// submission window contains the current time.
func (h *TaskHandler) AvailableForReading(c *fiber.Ctx) error {
	tasks, err := h.taskService.AvailableForReading(c.Context(), middleware.GetOrgID(c), middleware.GetCurrentUserID(c), time.Now())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": tasks})
}

func (h *TaskHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("invalid task ID")
	}

	t, err := h.taskService.GetByID(c.Context(), middleware.GetOrgID(c), id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(t)
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("invalid task ID")
	}

	var input domain.UpdateTaskInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("invalid request body")
	}

	t, err := h.taskService.Update(c.Context(), middleware.GetOrgID(c), id, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(t)
}

func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("invalid task ID")
	}

	if err := h.taskService.Delete(c.Context(), middleware.GetOrgID(c), id); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *TaskHandler) Assign(c *fiber.Ctx) error {
	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("invalid task ID")
	}

	var input domain.AssignTaskInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("invalid request body")
	}

	if err := h.taskService.Assign(c.Context(), middleware.GetOrgID(c), taskID, input.UserID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "task assigned"})
}

func (h *TaskHandler) Unassign(c *fiber.Ctx) error {
	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("invalid task ID")
	}

	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return middleware.BadRequest("invalid user ID")
	}

	if err := h.taskService.Unassign(c.Context(), middleware.GetOrgID(c), taskID, userID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
