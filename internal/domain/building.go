package domain

import (
	"time"

	"github.com/google/uuid"
)

type Building struct {
	ID             uuid.UUID `json:"id" db:"id"`
	OrganizationID uuid.UUID `json:"organization_id" db:"organization_id"`
	Name           string    `json:"name" db:"name"`
	Address        *string   `json:"address,omitempty" db:"address"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

type CreateBuildingInput struct {
	Name    string  `json:"name" validate:"required,min=1"`
	Address *string `json:"address,omitempty"`
}

type UpdateBuildingInput struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Address *string `json:"address,omitempty"`
}
