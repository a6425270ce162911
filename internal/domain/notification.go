package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification belongs to exactly one recipient and is only ever mutated
// by that recipient.
type Notification struct {
	ID             uuid.UUID        `json:"id" db:"id"`
	UserID         uuid.UUID        `json:"user_id" db:"user_id"`
	OrganizationID uuid.UUID        `json:"organization_id" db:"organization_id"`
	Type           NotificationType `json:"type" db:"type"`
	Title          string           `json:"title" db:"title"`
	Message        string           `json:"message" db:"message"`
	TaskID         *uuid.UUID       `json:"task_id,omitempty" db:"task_id"`
	ReadingID      *uuid.UUID       `json:"reading_id,omitempty" db:"reading_id"`
	IsRead         bool             `json:"is_read" db:"is_read"`
	ReadAt         *time.Time       `json:"read_at,omitempty" db:"read_at"`
	CreatedAt      time.Time        `json:"created_at" db:"created_at"`
}

type NotificationType string

const (
	NotifReadingSubmitted NotificationType = "READING_SUBMITTED"
	NotifReadingApproved  NotificationType = "READING_APPROVED"
	NotifReadingRejected  NotificationType = "READING_REJECTED"
	NotifTaskCommented    NotificationType = "TASK_COMMENTED"
	NotifTaskAssigned     NotificationType = "TASK_ASSIGNED"
)
