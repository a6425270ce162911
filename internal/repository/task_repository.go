package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"facilitrack/internal/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Task, error)
	List(ctx context.Context, orgID uuid.UUID, params domain.PaginationParams) ([]domain.Task, int64, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, orgID, id uuid.UUID) (int64, error)
	Assign(ctx context.Context, taskID, userID uuid.UUID) error
	Unassign(ctx context.Context, taskID, userID uuid.UUID) (int64, error)
	IsAssigned(ctx context.Context, taskID, userID uuid.UUID) (bool, error)
	ListAssignees(ctx context.Context, taskID uuid.UUID) ([]domain.User, error)
	ListActiveAssignedTo(ctx context.Context, orgID, userID uuid.UUID) ([]domain.Task, error)
	CountActive(ctx context.Context, orgID uuid.UUID) (int64, error)
}

type taskRepository struct {
	db *sqlx.DB
}

func NewTaskRepository(db *sqlx.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (id, organization_id, building_id, category_id, name, description, frequency, scheduled_time, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		task.ID, task.OrganizationID, task.BuildingID, task.CategoryID,
		task.Name, task.Description, task.Frequency, task.ScheduledTime, task.IsActive,
	).Scan(&task.CreatedAt, &task.UpdatedAt)
}

func (r *taskRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Task, error) {
	var task domain.Task
	query := `SELECT * FROM tasks WHERE id = $1 AND organization_id = $2`
	err := r.db.GetContext(ctx, &task, query, id, orgID)
	return &task, err
}

func (r *taskRepository) List(ctx context.Context, orgID uuid.UUID, params domain.PaginationParams) ([]domain.Task, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM tasks WHERE organization_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, orgID); err != nil {
		return nil, 0, err
	}

	var tasks []domain.Task
	query := `
		SELECT * FROM tasks
		WHERE organization_id = $1
		ORDER BY scheduled_time, name
		LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &tasks, query, orgID, params.Limit, params.Offset())
	return tasks, total, err
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	query := `
		UPDATE tasks
		SET name = $3, description = $4, frequency = $5, scheduled_time = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1 AND organization_id = $2
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		task.ID, task.OrganizationID,
		task.Name, task.Description, task.Frequency, task.ScheduledTime, task.IsActive,
	).Scan(&task.UpdatedAt)
}

func (r *taskRepository) Delete(ctx context.Context, orgID, id uuid.UUID) (int64, error) {
	query := `DELETE FROM tasks WHERE id = $1 AND organization_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, orgID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *taskRepository) Assign(ctx context.Context, taskID, userID uuid.UUID) error {
	query := `
		INSERT INTO task_assignments (task_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (task_id, user_id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query, taskID, userID)
	return err
}

func (r *taskRepository) Unassign(ctx context.Context, taskID, userID uuid.UUID) (int64, error) {
	query := `DELETE FROM task_assignments WHERE task_id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, taskID, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *taskRepository) IsAssigned(ctx context.Context, taskID, userID uuid.UUID) (bool, error) {
	var assigned bool
	query := `SELECT EXISTS(SELECT 1 FROM task_assignments WHERE task_id = $1 AND user_id = $2)`
	err := r.db.GetContext(ctx, &assigned, query, taskID, userID)
	return assigned, err
}

func (r *taskRepository) ListAssignees(ctx context.Context, taskID uuid.UUID) ([]domain.User, error) {
	var users []domain.User
	query := `
		SELECT u.* FROM users u
		JOIN task_assignments ta ON ta.user_id = u.id
		WHERE ta.task_id = $1
		ORDER BY u.full_name`
	err := r.db.SelectContext(ctx, &users, query, taskID)
	return users, err
}

func (r *taskRepository) ListActiveAssignedTo(ctx context.Context, orgID, userID uuid.UUID) ([]domain.Task, error) {
	var tasks []domain.Task
	query := `
		SELECT t.* FROM tasks t
		JOIN task_assignments ta ON ta.task_id = t.id
		WHERE t.organization_id = $1 AND ta.user_id = $2 AND t.is_active = true
		ORDER BY t.scheduled_time`
	err := r.db.SelectContext(ctx, &tasks, query, orgID, userID)
	return tasks, err
}

func (r *taskRepository) CountActive(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM tasks WHERE organization_id = $1 AND is_active = true`
	err := r.db.GetContext(ctx, &count, query, orgID)
	return count, err
}
