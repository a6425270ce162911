package category

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"facilitrack/internal/domain"
	"facilitrack/internal/repository"
)

type Service interface {
	Create(ctx context.Context, orgID, buildingID uuid.UUID, input domain.CreateCategoryInput) (*domain.Category, error)
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Category, error)
	ListByBuilding(ctx context.Context, orgID, buildingID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Category], error)
	Update(ctx context.Context, orgID, id uuid.UUID, input domain.UpdateCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

type service struct {
	categoryRepo repository.CategoryRepository
	buildingRepo repository.BuildingRepository
}

func NewService(categoryRepo repository.CategoryRepository, buildingRepo repository.BuildingRepository) Service {
	return &service{
		categoryRepo: categoryRepo,
		buildingRepo: buildingRepo,
	}
}

func (s *service) Create(ctx context.Context, orgID, buildingID uuid.UUID, input domain.CreateCategoryInput) (*domain.Category, error) {
	if _, err := s.buildingRepo.GetByID(ctx, orgID, buildingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("building not found")
		}
		return nil, err
	}

	if err := validateRange(input.MinValue, input.MaxValue); err != nil {
		return nil, err
	}

	category := &domain.Category{
		ID:             uuid.New(),
		OrganizationID: orgID,
		BuildingID:     buildingID,
		Name:           input.Name,
		Unit:           input.Unit,
		MinValue:       input.MinValue,
		MaxValue:       input.MaxValue,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func validateRange(min, max *float64) error {
	if min != nil && max != nil && *min > *max {
		return domain.Validation("min_value must not exceed max_value")
	}
	return nil
}

func (s *service) GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, orgID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("category not found")
	}
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *service) ListByBuilding(ctx context.Context, orgID, buildingID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Category], error) {
	params.Validate()

	if _, err := s.buildingRepo.GetByID(ctx, orgID, buildingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.PaginatedResponse[domain.Category]{}, domain.NotFound("building not found")
		}
		return domain.PaginatedResponse[domain.Category]{}, err
	}

	categories, total, err := s.categoryRepo.ListByBuilding(ctx, orgID, buildingID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Category]{}, err
	}

	return domain.NewPaginatedResponse(categories, params.Page, params.Limit, total), nil
}

func (s *service) Update(ctx context.Context, orgID, id uuid.UUID, input domain.UpdateCategoryInput) (*domain.Category, error) {
	category, err := s.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Unit != nil {
		category.Unit = input.Unit
	}
	if input.MinValue != nil {
		category.MinValue = input.MinValue
	}
	if input.MaxValue != nil {
		category.MaxValue = input.MaxValue
	}

	if err := validateRange(category.MinValue, category.MaxValue); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *service) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	rows, err := s.categoryRepo.Delete(ctx, orgID, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFound("category not found")
	}
	return nil
}
