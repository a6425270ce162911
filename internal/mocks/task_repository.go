package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"facilitrack/internal/domain"
)

type TaskRepository struct {
	mock.Mock
}

func (m *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *TaskRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Task, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *TaskRepository) List(ctx context.Context, orgID uuid.UUID, params domain.PaginationParams) ([]domain.Task, int64, error) {
	args := m.Called(ctx, orgID, params)
	return args.Get(0).([]domain.Task), args.Get(1).(int64), args.Error(2)
}

func (m *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *TaskRepository) Delete(ctx context.Context, orgID, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, orgID, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TaskRepository) Assign(ctx context.Context, taskID, userID uuid.UUID) error {
	args := m.Called(ctx, taskID, userID)
	return args.Error(0)
}

func (m *TaskRepository) Unassign(ctx context.Context, taskID, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, taskID, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TaskRepository) IsAssigned(ctx context.Context, taskID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, taskID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *TaskRepository) ListAssignees(ctx context.Context, taskID uuid.UUID) ([]domain.User, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *TaskRepository) ListActiveAssignedTo(ctx context.Context, orgID, userID uuid.UUID) ([]domain.Task, error) {
	args := m.Called(ctx, orgID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *TaskRepository) CountActive(ctx context.Context, orgID uuid.UUID) (int64, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(int64), args.Error(1)
}
