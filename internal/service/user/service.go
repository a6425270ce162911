package user

import (
	"context"

	"github.com/google/uuid"

	"facilitrack/internal/domain"
	"facilitrack/internal/repository"
	"facilitrack/internal/service/authz"
)

type Service interface {
	ListStaff(ctx context.Context, orgID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.User], error)
	ChangeRole(ctx context.Context, orgID, actorID, targetID uuid.UUID, role domain.Role) error
	SetActive(ctx context.Context, orgID, actorID, targetID uuid.UUID, active bool) error
}

type service struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	authzSvc    authz.Service
}

func NewService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, authzSvc authz.Service) Service {
	return &service{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		authzSvc:    authzSvc,
	}
}

func (s *service) ListStaff(ctx context.Context, orgID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.User], error) {
	params.Validate()

	users, total, err := s.userRepo.ListByOrganization(ctx, orgID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.User]{}, err
	}

	return domain.NewPaginatedResponse(users, params.Page, params.Limit, total), nil
}

func (s *service) ChangeRole(ctx context.Context, orgID, actorID, targetID uuid.UUID, role domain.Role) error {
	if _, err := s.authzSvc.Authorize(ctx, actorID, []domain.Role{domain.RoleAdmin}, orgID); err != nil {
		return err
	}

	if !role.IsValid() {
		return domain.Validation("invalid role")
	}
	if actorID == targetID {
		return domain.BadRequest("you cannot change your own role")
	}

	rows, err := s.userRepo.UpdateRole(ctx, orgID, targetID, role)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFound("user not found")
	}
	return nil
}

func (s *service) SetActive(ctx context.Context, orgID, actorID, targetID uuid.UUID, active bool) error {
	if _, err := s.authzSvc.Authorize(ctx, actorID, []domain.Role{domain.RoleAdmin}, orgID); err != nil {
		return err
	}

	if actorID == targetID {
		return domain.BadRequest("you cannot deactivate your own account")
	}

	rows, err := s.userRepo.SetActive(ctx, orgID, targetID, active)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFound("user not found")
	}

	// Deactivation also revokes refresh sessions, so the account cannot
	// mint new access tokens.
	if !active {
		if err := s.sessionRepo.DeleteByUser(ctx, targetID); err != nil {
			return err
		}
	}
	return nil
}
