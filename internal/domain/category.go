package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category is an equipment class inside a building. MinValue/MaxValue, when
// set, bound every reading submitted against the category's tasks.
type Category struct {
	ID             uuid.UUID `json:"id" db:"id"`
	OrganizationID uuid.UUID `json:"organization_id" db:"organization_id"`
	BuildingID     uuid.UUID `json:"building_id" db:"building_id"`
	Name           string    `json:"name" db:"name"`
	Unit           *string   `json:"unit,omitempty" db:"unit"`
	MinValue       *float64  `json:"min_value,omitempty" db:"min_value"`
	MaxValue       *float64  `json:"max_value,omitempty" db:"max_value"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

type CreateCategoryInput struct {
	Name     string   `json:"name" validate:"required,min=1"`
	Unit     *string  `json:"unit,omitempty"`
	MinValue *float64 `json:"min_value,omitempty"`
	MaxValue *float64 `json:"max_value,omitempty"`
}

type UpdateCategoryInput struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Unit     *string  `json:"unit,omitempty"`
	MinValue *float64 `json:"min_value,omitempty"`
	MaxValue *float64 `json:"max_value,omitempty"`
}
