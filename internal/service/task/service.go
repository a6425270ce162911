package task

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"facilitrack/internal/domain"
	"facilitrack/internal/repository"
	"facilitrack/internal/service/notification"
)

type Service interface {
	Create(ctx context.Context, orgID uuid.UUID, input domain.CreateTaskInput) (*domain.Task, error)
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Task, error)
	List(ctx context.Context, orgID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Task], error)
	Update(ctx context.Context, orgID, id uuid.UUID, input domain.UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, orgID, id uuid.UUID) error
	Assign(ctx context.Context, orgID, taskID, userID uuid.UUID) error
	Unassign(ctx context.Context, orgID, taskID, userID uuid.UUID) error
	// AvailableForReading recomputes the open-window filter on every call;
	// nothing is cached or scheduled.
	AvailableForReading(ctx context.Context, orgID, userID uuid.UUID, now time.Time) ([]domain.Task, error)
}

type service struct {
	taskRepo     repository.TaskRepository
	buildingRepo repository.BuildingRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
	notifSvc     notification.Service
}

func NewService(
	taskRepo repository.TaskRepository,
	buildingRepo repository.BuildingRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
	notifSvc notification.Service,
) Service {
	return &service{
		taskRepo:     taskRepo,
		buildingRepo: buildingRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		notifSvc:     notifSvc,
	}
}

func (s *service) Create(ctx context.Context, orgID uuid.UUID, input domain.CreateTaskInput) (*domain.Task, error) {
	if _, err := s.buildingRepo.GetByID(ctx, orgID, input.BuildingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("building not found")
		}
		return nil, err
	}

	category, err := s.categoryRepo.GetByID(ctx, orgID, input.CategoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("category not found")
	}
	if err != nil {
		return nil, err
	}
	if category.BuildingID != input.BuildingID {
		return nil, domain.BadRequest("category does not belong to the given building")
	}

	task := &domain.Task{
		ID:             uuid.New(),
		OrganizationID: orgID,
		BuildingID:     input.BuildingID,
		CategoryID:     input.CategoryID,
		Name:           input.Name,
		Description:    input.Description,
		Frequency:      input.Frequency,
		ScheduledTime:  input.ScheduledTime,
		IsActive:       true,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	task.Category = category
	return task, nil
}

func (s *service) GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, orgID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("task not found")
	}
	if err != nil {
		return nil, err
	}

	if assignees, err := s.taskRepo.ListAssignees(ctx, task.ID); err == nil {
		task.Assignees = assignees
	}
	if category, err := s.categoryRepo.GetByID(ctx, orgID, task.CategoryID); err == nil {
		task.Category = category
	}

	return task, nil
}

func (s *service) List(ctx context.Context, orgID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Task], error) {
	params.Validate()

	tasks, total, err := s.taskRepo.List(ctx, orgID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Task]{}, err
	}

	return domain.NewPaginatedResponse(tasks, params.Page, params.Limit, total), nil
}

func (s *service) Update(ctx context.Context, orgID, id uuid.UUID, input domain.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, orgID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("task not found")
	}
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		task.Name = *input.Name
	}
	if input.Description != nil {
		task.Description = input.Description
	}
	if input.Frequency != nil {
		task.Frequency = *input.Frequency
	}
	if input.ScheduledTime != nil {
		task.ScheduledTime = *input.ScheduledTime
	}
	if input.IsActive != nil {
		task.IsActive = *input.IsActive
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *service) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	rows, err := s.taskRepo.Delete(ctx, orgID, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFound("task not found")
	}
	return nil
}

func (s *service) Assign(ctx context.Context, orgID, taskID, userID uuid.UUID) error {
	task, err := s.taskRepo.GetByID(ctx, orgID, taskID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFound("task not found")
	}
	if err != nil {
		return err
	}

	assignee, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && assignee.OrganizationID != orgID) {
		return domain.NotFound("user not found")
	}
	if err != nil {
		return err
	}
	if !assignee.IsActive {
		return domain.BadRequest("user is deactivated")
	}

	if err := s.taskRepo.Assign(ctx, taskID, userID); err != nil {
		return err
	}

	_ = s.notifSvc.NotifyTaskAssigned(ctx, task, assignee)
	return nil
}

func (s *service) Unassign(ctx context.Context, orgID, taskID, userID uuid.UUID) error {
	if _, err := s.taskRepo.GetByID(ctx, orgID, taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFound("task not found")
		}
		return err
	}

	rows, err := s.taskRepo.Unassign(ctx, taskID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFound("assignment not found")
	}
	return nil
}

func (s *service) AvailableForReading(ctx context.Context, orgID, userID uuid.UUID, now time.Time) ([]domain.Task, error) {
	tasks, err := s.taskRepo.ListActiveAssignedTo(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	available := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.IsOpenAt(now) {
			available = append(available, t)
		}
	}
	return available, nil
}
