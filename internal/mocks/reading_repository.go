package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"facilitrack/internal/domain"
)

type ReadingRepository struct {
	mock.Mock
}

func (m *ReadingRepository) CreateWithNotifications(ctx context.Context, reading *domain.Reading, notifs []domain.Notification) error {
	args := m.Called(ctx, reading, notifs)
	return args.Error(0)
}

func (m *ReadingRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Reading, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reading), args.Error(1)
}

func (m *ReadingRepository) List(ctx context.Context, orgID uuid.UUID, status *domain.ReadingStatus, params domain.PaginationParams) ([]domain.Reading, int64, error) {
	args := m.Called(ctx, orgID, status, params)
	return args.Get(0).([]domain.Reading), args.Get(1).(int64), args.Error(2)
}

func (m *ReadingRepository) ListBySubmitter(ctx context.Context, orgID, userID uuid.UUID, params domain.PaginationParams) ([]domain.Reading, int64, error) {
	args := m.Called(ctx, orgID, userID, params)
	return args.Get(0).([]domain.Reading), args.Get(1).(int64), args.Error(2)
}

func (m *ReadingRepository) ListApprovedByCategory(ctx context.Context, orgID, buildingID, categoryID uuid.UUID, params domain.PaginationParams) ([]domain.Reading, int64, error) {
	args := m.Called(ctx, orgID, buildingID, categoryID, params)
	return args.Get(0).([]domain.Reading), args.Get(1).(int64), args.Error(2)
}

func (m *ReadingRepository) ListForExport(ctx context.Context, orgID uuid.UUID) ([]domain.Reading, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reading), args.Error(1)
}

func (m *ReadingRepository) Decide(ctx context.Context, orgID, id uuid.UUID, status domain.ReadingStatus, reviewerID uuid.UUID, approvedAt *time.Time, comment *domain.ReadingComment) (int64, error) {
	args := m.Called(ctx, orgID, id, status, reviewerID, approvedAt, comment)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ReadingRepository) CountAll(ctx context.Context, orgID uuid.UUID) (int64, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ReadingRepository) CountByStatus(ctx context.Context, orgID uuid.UUID, status domain.ReadingStatus) (int64, error) {
	args := m.Called(ctx, orgID, status)
	return args.Get(0).(int64), args.Error(1)
}
