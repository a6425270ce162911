package building

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"facilitrack/internal/domain"
	"facilitrack/internal/repository"
)

type Service interface {
	Create(ctx context.Context, orgID uuid.UUID, input domain.CreateBuildingInput) (*domain.Building, error)
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Building, error)
	List(ctx context.Context, orgID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Building], error)
	Update(ctx context.Context, orgID, id uuid.UUID, input domain.UpdateBuildingInput) (*domain.Building, error)
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

type service struct {
	buildingRepo repository.BuildingRepository
}

func NewService(buildingRepo repository.BuildingRepository) Service {
	return &service{buildingRepo: buildingRepo}
}

func (s *service) Create(ctx context.Context, orgID uuid.UUID, input domain.CreateBuildingInput) (*domain.Building, error) {
	building := &domain.Building{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Name:           input.Name,
		Address:        input.Address,
	}

	if err := s.buildingRepo.Create(ctx, building); err != nil {
		return nil, err
	}
	return building, nil
}

func (s *service) GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Building, error) {
	building, err := s.buildingRepo.GetByID(ctx, orgID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("building not found")
	}
	if err != nil {
		return nil, err
	}
	return building, nil
}

func (s *service) List(ctx context.Context, orgID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Building], error) {
	params.Validate()

	buildings, total, err := s.buildingRepo.List(ctx, orgID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Building]{}, err
	}

	return domain.NewPaginatedResponse(buildings, params.Page, params.Limit, total), nil
}

func (s *service) Update(ctx context.Context, orgID, id uuid.UUID, input domain.UpdateBuildingInput) (*domain.Building, error) {
	building, err := s.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		building.Name = *input.Name
	}
	if input.Address != nil {
		building.Address = input.Address
	}

	if err := s.buildingRepo.Update(ctx, building); err != nil {
		return nil, err
	}
	return building, nil
}

func (s *service) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	rows, err := s.buildingRepo.Delete(ctx, orgID, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFound("building not found")
	}
	return nil
}
