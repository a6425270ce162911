package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"facilitrack/internal/domain"
)

type ReadingCommentRepository interface {
	Create(ctx context.Context, comment *domain.ReadingComment) error
	ListByReading(ctx context.Context, readingID uuid.UUID) ([]domain.ReadingComment, error)
}

type readingCommentRepository struct {
	db *sqlx.DB
}

func NewReadingCommentRepository(db *sqlx.DB) ReadingCommentRepository {
	return &readingCommentRepository{db: db}
}

func (r *readingCommentRepository) Create(ctx context.Context, comment *domain.ReadingComment) error {
	query := `
		INSERT INTO reading_comments (id, reading_id, user_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		comment.ID, comment.ReadingID, comment.UserID, comment.Content,
	).Scan(&comment.CreatedAt)
}

func (r *readingCommentRepository) ListByReading(ctx context.Context, readingID uuid.UUID) ([]domain.ReadingComment, error) {
	var comments []domain.ReadingComment
	query := `
		SELECT * FROM reading_comments
		WHERE reading_id = $1
		ORDER BY created_at`
	err := r.db.SelectContext(ctx, &comments, query, readingID)
	return comments, err
}
