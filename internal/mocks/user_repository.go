package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"facilitrack/internal/domain"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID, params domain.PaginationParams) ([]domain.User, int64, error) {
	args := m.Called(ctx, orgID, params)
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

func (m *UserRepository) GetByOrgAndRoles(ctx context.Context, orgID uuid.UUID, roles []domain.Role) ([]domain.User, error) {
	args := m.Called(ctx, orgID, roles)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *UserRepository) UpdateRole(ctx context.Context, orgID, id uuid.UUID, role domain.Role) (int64, error) {
	args := m.Called(ctx, orgID, id, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *UserRepository) SetActive(ctx context.Context, orgID, id uuid.UUID, active bool) (int64, error) {
	args := m.Called(ctx, orgID, id, active)
	return args.Get(0).(int64), args.Error(1)
}
