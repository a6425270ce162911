package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Organization   OrganizationRepository
	User           UserRepository
	Session        SessionRepository
	Building       BuildingRepository
	Category       CategoryRepository
	Task           TaskRepository
	Reading        ReadingRepository
	ReadingComment ReadingCommentRepository
	Notification   NotificationRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Organization:   NewOrganizationRepository(db),
		User:           NewUserRepository(db),
		Session:        NewSessionRepository(db),
		Building:       NewBuildingRepository(db),
		Category:       NewCategoryRepository(db),
		Task:           NewTaskRepository(db),
		Reading:        NewReadingRepository(db),
		ReadingComment: NewReadingCommentRepository(db),
		Notification:   NewNotificationRepository(db),
	}
}
