package authz

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"facilitrack/internal/domain"
	"facilitrack/internal/repository"
)

// Service is the single authorization policy point. The actor's role and
// organization are re-read from the store on every privileged call instead
// of trusted from token claims, so a role change or deactivation takes
// effect immediately at the cost of one extra lookup.
type Service interface {
	Authorize(ctx context.Context, actorID uuid.UUID, requiredRoles []domain.Role, targetOrgID uuid.UUID) (*domain.User, error)
}

type service struct {
	userRepo repository.UserRepository
}

func NewService(userRepo repository.UserRepository) Service {
	return &service{userRepo: userRepo}
}

// Authorize returns the freshly loaded actor when it is active, belongs to
// targetOrgID, and its role is in requiredRoles. An empty role set admits
// any role.
func (s *service) Authorize(ctx context.Context, actorID uuid.UUID, requiredRoles []domain.Role, targetOrgID uuid.UUID) (*domain.User, error) {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.Authentication("account not found")
	}
	if err != nil {
		return nil, err
	}

	if !actor.IsActive {
		return nil, domain.Authorization("account is deactivated")
	}

	if actor.OrganizationID != targetOrgID {
		return nil, domain.Authorization("resource belongs to another organization")
	}

	if len(requiredRoles) > 0 {
		allowed := false
		for _, role := range requiredRoles {
			if actor.Role == role {
				allowed = true
				break
			}
		}
		if !allowed {
			return nil, domain.Authorization("insufficient permissions for this operation")
		}
	}

	return actor, nil
}
