package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"facilitrack/internal/domain"
)

type ReadingCommentRepository struct {
	mock.Mock
}

func (m *ReadingCommentRepository) Create(ctx context.Context, comment *domain.ReadingComment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *ReadingCommentRepository) ListByReading(ctx context.Context, readingID uuid.UUID) ([]domain.ReadingComment, error) {
	args := m.Called(ctx, readingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReadingComment), args.Error(1)
}
