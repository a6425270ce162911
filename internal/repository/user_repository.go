package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"facilitrack/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID, params domain.PaginationParams) ([]domain.User, int64, error)
	GetByOrgAndRoles(ctx context.Context, orgID uuid.UUID, roles []domain.Role) ([]domain.User, error)
	UpdateRole(ctx context.Context, orgID, id uuid.UUID, role domain.Role) (int64, error)
	SetActive(ctx context.Context, orgID, id uuid.UUID, active bool) (int64, error)
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, organization_id, email, password_hash, full_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		user.ID, user.OrganizationID, user.Email, user.PasswordHash,
		user.FullName, user.Role, user.IsActive,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	query := `SELECT * FROM users WHERE id = $1`
	err := r.db.GetContext(ctx, &user, query, id)
	return &user, err
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	query := `SELECT * FROM users WHERE email = $1`
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	err := r.db.GetContext(ctx, &exists, query, email)
	return exists, err
}

func (r *userRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID, params domain.PaginationParams) ([]domain.User, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM users WHERE organization_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, orgID); err != nil {
		return nil, 0, err
	}

	var users []domain.User
	query := `
		SELECT * FROM users
		WHERE organization_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &users, query, orgID, params.Limit, params.Offset())
	return users, total, err
}

func (r *userRepository) GetByOrgAndRoles(ctx context.Context, orgID uuid.UUID, roles []domain.Role) ([]domain.User, error) {
	if len(roles) == 0 {
		return []domain.User{}, nil
	}

	roleStrings := make([]string, len(roles))
	for i, role := range roles {
		roleStrings[i] = string(role)
	}

	var users []domain.User
	query := `
		SELECT * FROM users
		WHERE organization_id = $1 AND role = ANY($2) AND is_active = true
		ORDER BY created_at`
	err := r.db.SelectContext(ctx, &users, query, orgID, pq.Array(roleStrings))
	return users, err
}

func (r *userRepository) UpdateRole(ctx context.Context, orgID, id uuid.UUID, role domain.Role) (int64, error) {
	query := `UPDATE users SET role = $3, updated_at = NOW() WHERE id = $2 AND organization_id = $1`
	res, err := r.db.ExecContext(ctx, query, orgID, id, role)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *userRepository) SetActive(ctx context.Context, orgID, id uuid.UUID, active bool) (int64, error) {
	query := `UPDATE users SET is_active = $3, updated_at = NOW() WHERE id = $2 AND organization_id = $1`
	res, err := r.db.ExecContext(ctx, query, orgID, id, active)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
