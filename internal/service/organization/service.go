package organization

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"facilitrack/internal/domain"
	"facilitrack/internal/repository"
	"facilitrack/internal/service/auth"
	"facilitrack/internal/service/authz"
)

type Service interface {
	Get(ctx context.Context, orgID uuid.UUID) (*domain.Organization, error)
	// RotateInviteCode replaces the invite code, invalidating the old one
	// for future registrations.
	RotateInviteCode(ctx context.Context, orgID, actorID uuid.UUID) (*domain.Organization, error)
}

type service struct {
	orgRepo  repository.OrganizationRepository
	authzSvc authz.Service
}

func NewService(orgRepo repository.OrganizationRepository, authzSvc authz.Service) Service {
	return &service{
		orgRepo:  orgRepo,
		authzSvc: authzSvc,
	}
}

func (s *service) Get(ctx context.Context, orgID uuid.UUID) (*domain.Organization, error) {
	org, err := s.orgRepo.GetByID(ctx, orgID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("organization not found")
	}
	if err != nil {
		return nil, err
	}
	return org, nil
}

func (s *service) RotateInviteCode(ctx context.Context, orgID, actorID uuid.UUID) (*domain.Organization, error) {
	if _, err := s.authzSvc.Authorize(ctx, actorID, []domain.Role{domain.RoleAdmin}, orgID); err != nil {
		return nil, err
	}

	code, err := auth.NewInviteCode()
	if err != nil {
		return nil, err
	}

	if err := s.orgRepo.UpdateInviteCode(ctx, orgID, code); err != nil {
		return nil, err
	}

	return s.Get(ctx, orgID)
}
