package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reading is one measurement submitted against a Task. BuildingID,
// CategoryID and OrganizationID are denormalized from the task at
// submission time and never re-derived afterwards.
type Reading struct {
	ID             uuid.UUID     `json:"id" db:"id"`
	OrganizationID uuid.UUID     `json:"organization_id" db:"organization_id"`
	TaskID         uuid.UUID     `json:"task_id" db:"task_id"`
	BuildingID     uuid.UUID     `json:"building_id" db:"building_id"`
	CategoryID     uuid.UUID     `json:"category_id" db:"category_id"`
	Value          float64       `json:"value" db:"value"`
	Notes          *string       `json:"notes,omitempty" db:"notes"`
	Status         ReadingStatus `json:"status" db:"status"`
	SubmittedBy    uuid.UUID     `json:"submitted_by" db:"submitted_by"`
	SubmittedAt    time.Time     `json:"submitted_at" db:"submitted_at"`
	ReviewedBy     *uuid.UUID    `json:"reviewed_by,omitempty" db:"reviewed_by"`
	ApprovedAt     *time.Time    `json:"approved_at,omitempty" db:"approved_at"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at" db:"updated_at"`

	Submitter *User     `json:"submitter,omitempty" db:"-"`
	Task      *Task     `json:"task,omitempty" db:"-"`
	Category  *Category `json:"category,omitempty" db:"-"`
}

type ReadingStatus string

const (
	ReadingPending  ReadingStatus = "PENDING"
	ReadingApproved ReadingStatus = "APPROVED"
	ReadingRejected ReadingStatus = "REJECTED"
)

type SubmitReadingInput struct {
	TaskID uuid.UUID `json:"task_id" validate:"required"`
	Value  float64   `json:"value" validate:"required"`
	Notes  *string   `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type ReviewReadingInput struct {
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=500"`
}

// ReadingComment is append-only, ordered by creation time.
type ReadingComment struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ReadingID uuid.UUID `json:"reading_id" db:"reading_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	Author *User `json:"author,omitempty" db:"-"`
}

type CreateReadingCommentInput struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}
