package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is a recurring checkpoint on a building's equipment category. An
// assigned technician may submit a reading during the task's daily window,
// which opens at ScheduledTime and lasts SubmissionWindow.
type Task struct {
	ID             uuid.UUID     `json:"id" db:"id"`
	OrganizationID uuid.UUID     `json:"organization_id" db:"organization_id"`
	BuildingID     uuid.UUID     `json:"building_id" db:"building_id"`
	CategoryID     uuid.UUID     `json:"category_id" db:"category_id"`
	Name           string        `json:"name" db:"name"`
	Description    *string       `json:"description,omitempty" db:"description"`
	Frequency      TaskFrequency `json:"frequency" db:"frequency"`
	ScheduledTime  TimeOfDay     `json:"scheduled_time" db:"scheduled_time"`
	IsActive       bool          `json:"is_active" db:"is_active"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at" db:"updated_at"`

	Assignees []User    `json:"assignees,omitempty" db:"-"`
	Category  *Category `json:"category,omitempty" db:"-"`
}

type TaskFrequency string

const (
	FrequencyDaily  TaskFrequency = "DAILY"
	FrequencyWeekly TaskFrequency = "WEEKLY"
)

// SubmissionWindow is how long a task stays open after its scheduled time.
const SubmissionWindow = 10 * time.Minute

// IsOpenAt reports whether the task accepts submissions at the given
// wall-clock instant.
func (t *Task) IsOpenAt(now time.Time) bool {
	return t.IsActive && t.ScheduledTime.WindowContains(now, SubmissionWindow)
}

type CreateTaskInput struct {
	BuildingID    uuid.UUID     `json:"building_id" validate:"required"`
	CategoryID    uuid.UUID     `json:"category_id" validate:"required"`
	Name          string        `json:"name" validate:"required,min=1"`
	Description   *string       `json:"description,omitempty"`
	Frequency     TaskFrequency `json:"frequency" validate:"required,oneof=DAILY WEEKLY"`
	ScheduledTime TimeOfDay     `json:"scheduled_time" validate:"required"`
}

type UpdateTaskInput struct {
	Name          *string        `json:"name,omitempty" validate:"omitempty,min=1"`
	Description   *string        `json:"description,omitempty"`
	Frequency     *TaskFrequency `json:"frequency,omitempty" validate:"omitempty,oneof=DAILY WEEKLY"`
	ScheduledTime *TimeOfDay     `json:"scheduled_time,omitempty"`
	IsActive      *bool          `json:"is_active,omitempty"`
}

type AssignTaskInput struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}
