package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"facilitrack/internal/domain"
)

type ReadingRepository interface {
	// CreateWithNotifications inserts the reading and its submission
	// fan-out batch in a single transaction, so a reading can never exist
	// without its reviewer notifications.
	CreateWithNotifications(ctx context.Context, reading *domain.Reading, notifs []domain.Notification) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Reading, error)
	List(ctx context.Context, orgID uuid.UUID, status *domain.ReadingStatus, params domain.PaginationParams) ([]domain.Reading, int64, error)
	ListBySubmitter(ctx context.Context, orgID, userID uuid.UUID, params domain.PaginationParams) ([]domain.Reading, int64, error)
	ListApprovedByCategory(ctx context.Context, orgID, buildingID, categoryID uuid.UUID, params domain.PaginationParams) ([]domain.Reading, int64, error)
	ListForExport(ctx context.Context, orgID uuid.UUID) ([]domain.Reading, error)
	// Decide transitions the reading out of PENDING and optionally appends
	// a decision comment, all in one transaction. Returns 0 rows when the
	// reading was already decided (or raced another decision).
	Decide(ctx context.Context, orgID, id uuid.UUID, status domain.ReadingStatus, reviewerID uuid.UUID, approvedAt *time.Time, comment *domain.ReadingComment) (int64, error)
	CountAll(ctx context.Context, orgID uuid.UUID) (int64, error)
	CountByStatus(ctx context.Context, orgID uuid.UUID, status domain.ReadingStatus) (int64, error)
}

type readingRepository struct {
	db *sqlx.DB
}

func NewReadingRepository(db *sqlx.DB) ReadingRepository {
	return &readingRepository{db: db}
}

const insertNotificationQuery = `
	INSERT INTO notifications (id, user_id, organization_id, type, title, message, task_id, reading_id)
	VALUES (:id, :user_id, :organization_id, :type, :title, :message, :task_id, :reading_id)`

func (r *readingRepository) CreateWithNotifications(ctx context.Context, reading *domain.Reading, notifs []domain.Notification) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO readings (id, organization_id, task_id, building_id, category_id, value, notes, status, submitted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING submitted_at, created_at, updated_at`

	if err := tx.QueryRowxContext(ctx, query,
		reading.ID, reading.OrganizationID, reading.TaskID, reading.BuildingID,
		reading.CategoryID, reading.Value, reading.Notes, reading.Status, reading.SubmittedBy,
	).Scan(&reading.SubmittedAt, &reading.CreatedAt, &reading.UpdatedAt); err != nil {
		return err
	}

	if len(notifs) > 0 {
		if _, err := tx.NamedExecContext(ctx, insertNotificationQuery, notifs); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *readingRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Reading, error) {
	var reading domain.Reading
	query := `SELECT * FROM readings WHERE id = $1 AND organization_id = $2`
	err := r.db.GetContext(ctx, &reading, query, id, orgID)
	return &reading, err
}

func (r *readingRepository) List(ctx context.Context, orgID uuid.UUID, status *domain.ReadingStatus, params domain.PaginationParams) ([]domain.Reading, int64, error) {
	params.Validate()

	var total int64
	var readings []domain.Reading

	if status != nil {
		countQuery := `SELECT COUNT(*) FROM readings WHERE organization_id = $1 AND status = $2`
		if err := r.db.GetContext(ctx, &total, countQuery, orgID, *status); err != nil {
			return nil, 0, err
		}

		query := `
			SELECT * FROM readings
			WHERE organization_id = $1 AND status = $2
			ORDER BY submitted_at DESC
			LIMIT $3 OFFSET $4`
		err := r.db.SelectContext(ctx, &readings, query, orgID, *status, params.Limit, params.Offset())
		return readings, total, err
	}

	countQuery := `SELECT COUNT(*) FROM readings WHERE organization_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, orgID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM readings
		WHERE organization_id = $1
		ORDER BY submitted_at DESC
		LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &readings, query, orgID, params.Limit, params.Offset())
	return readings, total, err
}

func (r *readingRepository) ListBySubmitter(ctx context.Context, orgID, userID uuid.UUID, params domain.PaginationParams) ([]domain.Reading, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM readings WHERE organization_id = $1 AND submitted_by = $2`
	if err := r.db.GetContext(ctx, &total, countQuery, orgID, userID); err != nil {
		return nil, 0, err
	}

	var readings []domain.Reading
	query := `
		SELECT * FROM readings
		WHERE organization_id = $1 AND submitted_by = $2
		ORDER BY submitted_at DESC
		LIMIT $3 OFFSET $4`
	err := r.db.SelectContext(ctx, &readings, query, orgID, userID, params.Limit, params.Offset())
	return readings, total, err
}

func (r *readingRepository) ListApprovedByCategory(ctx context.Context, orgID, buildingID, categoryID uuid.UUID, params domain.PaginationParams) ([]domain.Reading, int64, error) {
	params.Validate()

	var total int64
	countQuery := `
		SELECT COUNT(*) FROM readings
		WHERE organization_id = $1 AND building_id = $2 AND category_id = $3 AND status = 'APPROVED'`
	if err := r.db.GetContext(ctx, &total, countQuery, orgID, buildingID, categoryID); err != nil {
		return nil, 0, err
	}

	var readings []domain.Reading
	query := `
		SELECT * FROM readings
		WHERE organization_id = $1 AND building_id = $2 AND category_id = $3 AND status = 'APPROVED'
		ORDER BY submitted_at DESC
		LIMIT $4 OFFSET $5`
	err := r.db.SelectContext(ctx, &readings, query, orgID, buildingID, categoryID, params.Limit, params.Offset())
	return readings, total, err
}

func (r *readingRepository) ListForExport(ctx context.Context, orgID uuid.UUID) ([]domain.Reading, error) {
	var readings []domain.Reading
	query := `
		SELECT * FROM readings
		WHERE organization_id = $1
		ORDER BY submitted_at`
	err := r.db.SelectContext(ctx, &readings, query, orgID)
	return readings, err
}

func (r *readingRepository) Decide(ctx context.Context, orgID, id uuid.UUID, status domain.ReadingStatus, reviewerID uuid.UUID, approvedAt *time.Time, comment *domain.ReadingComment) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		UPDATE readings
		SET status = $3, reviewed_by = $4, approved_at = $5, updated_at = NOW()
		WHERE id = $1 AND organization_id = $2 AND status = 'PENDING'`

	res, err := tx.ExecContext(ctx, query, id, orgID, status, reviewerID, approvedAt)
	if err != nil {
		return 0, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		return 0, tx.Commit()
	}

	if comment != nil {
		commentQuery := `
			INSERT INTO reading_comments (id, reading_id, user_id, content)
			VALUES ($1, $2, $3, $4)
			RETURNING created_at`
		if err := tx.QueryRowxContext(ctx, commentQuery,
			comment.ID, comment.ReadingID, comment.UserID, comment.Content,
		).Scan(&comment.CreatedAt); err != nil {
			return 0, err
		}
	}

	return rows, tx.Commit()
}

func (r *readingRepository) CountAll(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM readings WHERE organization_id = $1`
	err := r.db.GetContext(ctx, &count, query, orgID)
	return count, err
}

func (r *readingRepository) CountByStatus(ctx context.Context, orgID uuid.UUID, status domain.ReadingStatus) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM readings WHERE organization_id = $1 AND status = $2`
	err := r.db.GetContext(ctx, &count, query, orgID, status)
	return count, err
}
