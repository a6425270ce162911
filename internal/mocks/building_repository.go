package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"facilitrack/internal/domain"
)

type BuildingRepository struct {
	mock.Mock
}

func (m *BuildingRepository) Create(ctx context.Context, building *domain.Building) error {
	args := m.Called(ctx, building)
	return args.Error(0)
}

func (m *BuildingRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Building, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Building), args.Error(1)
}

func (m *BuildingRepository) List(ctx context.Context, orgID uuid.UUID, params domain.PaginationParams) ([]domain.Building, int64, error) {
	args := m.Called(ctx, orgID, params)
	return args.Get(0).([]domain.Building), args.Get(1).(int64), args.Error(2)
}

func (m *BuildingRepository) Update(ctx context.Context, building *domain.Building) error {
	args := m.Called(ctx, building)
	return args.Error(0)
}

func (m *BuildingRepository) Delete(ctx context.Context, orgID, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, orgID, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *BuildingRepository) Count(ctx context.Context, orgID uuid.UUID) (int64, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(int64), args.Error(1)
}
