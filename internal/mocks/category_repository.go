package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"facilitrack/internal/domain"
)

type CategoryRepository struct {
	mock.Mock
}

func (m *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *CategoryRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Category, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *CategoryRepository) ListByBuilding(ctx context.Context, orgID, buildingID uuid.UUID, params domain.PaginationParams) ([]domain.Category, int64, error) {
	args := m.Called(ctx, orgID, buildingID, params)
	return args.Get(0).([]domain.Category), args.Get(1).(int64), args.Error(2)
}

func (m *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *CategoryRepository) Delete(ctx context.Context, orgID, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, orgID, id)
	return args.Get(0).(int64), args.Error(1)
}
