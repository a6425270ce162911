package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `json:"id" db:"id"`
	OrganizationID uuid.UUID `json:"organization_id" db:"organization_id"`
	Email          string    `json:"email" db:"email"`
	PasswordHash   string    `json:"-" db:"password_hash"`
	FullName       string    `json:"full_name" db:"full_name"`
	Role           Role      `json:"role" db:"role"`
	IsActive       bool      `json:"is_active" db:"is_active"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleSupervisor Role = "SUPERVISOR"
	RoleTechnician Role = "TECHNICIAN"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSupervisor, RoleTechnician:
		return true
	default:
		return false
	}
}

// HasRole reports whether the user's role satisfies the required one.
// ADMIN covers SUPERVISOR, SUPERVISOR covers TECHNICIAN.
func (u *User) HasRole(required Role) bool {
	switch required {
	case RoleAdmin:
		return u.Role == RoleAdmin
	case RoleSupervisor:
		return u.Role == RoleAdmin || u.Role == RoleSupervisor
	case RoleTechnician:
		return u.Role.IsValid()
	default:
		return false
	}
}

// ReviewerRoles are the roles that receive submission fan-out and may
// decide readings.
func ReviewerRoles() []Role {
	return []Role{RoleAdmin, RoleSupervisor}
}

type RegisterInput struct {
	InviteCode string `json:"invite_code" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	FullName   string `json:"full_name" validate:"required,min=2"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangeRoleInput struct {
	Role Role `json:"role" validate:"required,oneof=ADMIN SUPERVISOR TECHNICIAN"`
}

type SetActiveInput struct {
	IsActive bool `json:"is_active"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type Session struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	TokenHash string    `json:"-" db:"token_hash"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
