package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"facilitrack/internal/domain"
)

type OrganizationRepository interface {
	Create(ctx context.Context, org *domain.Organization) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Organization, error)
	GetByInviteCode(ctx context.Context, code string) (*domain.Organization, error)
	UpdateInviteCode(ctx context.Context, id uuid.UUID, code string) error
}

type organizationRepository struct {
	db *sqlx.DB
}

func NewOrganizationRepository(db *sqlx.DB) OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	query := `
		INSERT INTO organizations (id, name, invite_code)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		org.ID, org.Name, org.InviteCode,
	).Scan(&org.CreatedAt, &org.UpdatedAt)
}

func (r *organizationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Organization, error) {
	var org domain.Organization
	query := `SELECT * FROM organizations WHERE id = $1`
	err := r.db.GetContext(ctx, &org, query, id)
	return &org, err
}

func (r *organizationRepository) GetByInviteCode(ctx context.Context, code string) (*domain.Organization, error) {
	var org domain.Organization
	query := `SELECT * FROM organizations WHERE invite_code = $1`
	err := r.db.GetContext(ctx, &org, query, code)
	return &org, err
}

func (r *organizationRepository) UpdateInviteCode(ctx context.Context, id uuid.UUID, code string) error {
	query := `UPDATE organizations SET invite_code = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, code)
	return err
}
