package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"facilitrack/internal/domain"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Category, error)
	ListByBuilding(ctx context.Context, orgID, buildingID uuid.UUID, params domain.PaginationParams) ([]domain.Category, int64, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, orgID, id uuid.UUID) (int64, error)
}

type categoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	query := `
		INSERT INTO categories (id, organization_id, building_id, name, unit, min_value, max_value)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		category.ID, category.OrganizationID, category.BuildingID,
		category.Name, category.Unit, category.MinValue, category.MaxValue,
	).Scan(&category.CreatedAt, &category.UpdatedAt)
}

func (r *categoryRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Category, error) {
	var category domain.Category
	query := `SELECT * FROM categories WHERE id = $1 AND organization_id = $2`
	err := r.db.GetContext(ctx, &category, query, id, orgID)
	return &category, err
}

func (r *categoryRepository) ListByBuilding(ctx context.Context, orgID, buildingID uuid.UUID, params domain.PaginationParams) ([]domain.Category, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM categories WHERE organization_id = $1 AND building_id = $2`
	if err := r.db.GetContext(ctx, &total, countQuery, orgID, buildingID); err != nil {
		return nil, 0, err
	}

	var categories []domain.Category
	query := `
		SELECT * FROM categories
		WHERE organization_id = $1 AND building_id = $2
		ORDER BY name
		LIMIT $3 OFFSET $4`
	err := r.db.SelectContext(ctx, &categories, query, orgID, buildingID, params.Limit, params.Offset())
	return categories, total, err
}

func (r *categoryRepository) Update(ctx context.Context, category *domain.Category) error {
	query := `
		UPDATE categories
		SET name = $3, unit = $4, min_value = $5, max_value = $6, updated_at = NOW()
		WHERE id = $1 AND organization_id = $2
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		category.ID, category.OrganizationID,
		category.Name, category.Unit, category.MinValue, category.MaxValue,
	).Scan(&category.UpdatedAt)
}

func (r *categoryRepository) Delete(ctx context.Context, orgID, id uuid.UUID) (int64, error) {
	query := `DELETE FROM categories WHERE id = $1 AND organization_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, orgID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
