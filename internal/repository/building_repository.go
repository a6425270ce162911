package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"facilitrack/internal/domain"
)

type BuildingRepository interface {
	Create(ctx context.Context, building *domain.Building) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Building, error)
	List(ctx context.Context, orgID uuid.UUID, params domain.PaginationParams) ([]domain.Building, int64, error)
	Update(ctx context.Context, building *domain.Building) error
	Delete(ctx context.Context, orgID, id uuid.UUID) (int64, error)
	Count(ctx context.Context, orgID uuid.UUID) (int64, error)
}

type buildingRepository struct {
	db *sqlx.DB
}

func NewBuildingRepository(db *sqlx.DB) BuildingRepository {
	return &buildingRepository{db: db}
}

func (r *buildingRepository) Create(ctx context.Context, building *domain.Building) error {
	query := `
		INSERT INTO buildings (id, organization_id, name, address)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		building.ID, building.OrganizationID, building.Name, building.Address,
	).Scan(&building.CreatedAt, &building.UpdatedAt)
}

func (r *buildingRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Building, error) {
	var building domain.Building
	query := `SELECT * FROM buildings WHERE id = $1 AND organization_id = $2`
	err := r.db.GetContext(ctx, &building, query, id, orgID)
	return &building, err
}

func (r *buildingRepository) List(ctx context.Context, orgID uuid.UUID, params domain.PaginationParams) ([]domain.Building, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM buildings WHERE organization_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, orgID); err != nil {
		return nil, 0, err
	}

	var buildings []domain.Building
	query := `
		SELECT * FROM buildings
		WHERE organization_id = $1
		ORDER BY name
		LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &buildings, query, orgID, params.Limit, params.Offset())
	return buildings, total, err
}

func (r *buildingRepository) Update(ctx context.Context, building *domain.Building) error {
	query := `
		UPDATE buildings
		SET name = $3, address = $4, updated_at = NOW()
		WHERE id = $1 AND organization_id = $2
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		building.ID, building.OrganizationID, building.Name, building.Address,
	).Scan(&building.UpdatedAt)
}

func (r *buildingRepository) Delete(ctx context.Context, orgID, id uuid.UUID) (int64, error) {
	query := `DELETE FROM buildings WHERE id = $1 AND organization_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, orgID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *buildingRepository) Count(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM buildings WHERE organization_id = $1`
	err := r.db.GetContext(ctx, &count, query, orgID)
	return count, err
}
