package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"facilitrack/internal/domain"
	"facilitrack/internal/repository"
	"facilitrack/internal/service/email"
)

type Service interface {
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkAsRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// BuildReadingSubmitted builds the reviewer fan-out batch for a new
	// submission. The reading workflow persists it atomically with the
	// reading itself.
	BuildReadingSubmitted(recipients []domain.User, reading *domain.Reading, task *domain.Task, submitter *domain.User) []domain.Notification
	NotifyReadingDecided(ctx context.Context, reading *domain.Reading, task *domain.Task, reviewer *domain.User, status domain.ReadingStatus, comment *string) error
	NotifyReadingCommented(ctx context.Context, reading *domain.Reading, author *domain.User, preview string) error
	NotifyTaskAssigned(ctx context.Context, task *domain.Task, assignee *domain.User) error
}

type service struct {
	notifRepo repository.NotificationRepository
	userRepo  repository.UserRepository
	emailSvc  email.Service
	logger    zerolog.Logger
}

func NewService(notifRepo repository.NotificationRepository, userRepo repository.UserRepository, emailSvc email.Service, logger zerolog.Logger) Service {
	return &service{
		notifRepo: notifRepo,
		userRepo:  userRepo,
		emailSvc:  emailSvc,
		logger:    logger,
	}
}

func (s *service) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	params.Validate()

	notifications, total, err := s.notifRepo.ListByUser(ctx, userID, unreadOnly, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Notification]{}, err
	}

	return domain.NewPaginatedResponse(notifications, params.Page, params.Limit, total), nil
}

func (s *service) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}

func (s *service) MarkAsRead(ctx context.Context, userID, id uuid.UUID) error {
	rows, err := s.notifRepo.MarkAsRead(ctx, userID, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFound("notification not found")
	}
	return nil
}

func (s *service) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.notifRepo.MarkAllAsRead(ctx, userID)
}

func (s *service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	rows, err := s.notifRepo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFound("notification not found")
	}
	return nil
}

func (s *service) BuildReadingSubmitted(recipients []domain.User, reading *domain.Reading, task *domain.Task, submitter *domain.User) []domain.Notification {
	submitterName := "A technician"
	if submitter != nil {
		submitterName = submitter.FullName
	}

	notifs := make([]domain.Notification, 0, len(recipients))
	for _, recipient := range recipients {
		notifs = append(notifs, domain.Notification{
			ID:             uuid.New(),
			UserID:         recipient.ID,
			OrganizationID: reading.OrganizationID,
			Type:           domain.NotifReadingSubmitted,
			Title:          "New Reading Submitted",
			Message:        fmt.Sprintf("%s submitted a reading of %g for %s", submitterName, reading.Value, task.Name),
			TaskID:         &reading.TaskID,
			ReadingID:      &reading.ID,
		})
	}
	return notifs
}

func (s *service) NotifyReadingDecided(ctx context.Context, reading *domain.Reading, task *domain.Task, reviewer *domain.User, status domain.ReadingStatus, comment *string) error {
	taskName := "your task"
	if task != nil {
		taskName = task.Name
	}

	notifType := domain.NotifReadingApproved
	title := "Reading Approved"
	message := fmt.Sprintf("%s approved your reading for %s", reviewer.FullName, taskName)
	if status == domain.ReadingRejected {
		notifType = domain.NotifReadingRejected
		title = "Reading Rejected"
		message = fmt.Sprintf("%s rejected your reading for %s", reviewer.FullName, taskName)
	}

	if comment != nil && *comment != "" {
		message += ": " + *comment
	}

	notif := &domain.Notification{
		ID:             uuid.New(),
		UserID:         reading.SubmittedBy,
		OrganizationID: reading.OrganizationID,
		Type:           notifType,
		Title:          title,
		Message:        message,
		TaskID:         &reading.TaskID,
		ReadingID:      &reading.ID,
	}

	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	if s.emailSvc != nil {
		submitter, err := s.userRepo.GetByID(ctx, reading.SubmittedBy)
		if err == nil && submitter.Email != "" {
			go func(toEmail, name, taskName string) {
				ctx := context.Background()
				if err := s.emailSvc.SendReadingDecisionEmail(ctx, toEmail, name, taskName, status, comment); err != nil {
					s.logger.Warn().Err(err).Str("email", toEmail).Msg("failed to send decision email")
				}
			}(submitter.Email, submitter.FullName, taskName)
		}
	}

	return nil
}

func (s *service) NotifyReadingCommented(ctx context.Context, reading *domain.Reading, author *domain.User, preview string) error {
	notif := &domain.Notification{
		ID:             uuid.New(),
		UserID:         reading.SubmittedBy,
		OrganizationID: reading.OrganizationID,
		Type:           domain.NotifTaskCommented,
		Title:          "New Comment on Your Reading",
		Message:        fmt.Sprintf("%s commented: %s", author.FullName, preview),
		TaskID:         &reading.TaskID,
		ReadingID:      &reading.ID,
	}

	return s.notifRepo.Create(ctx, notif)
}

func (s *service) NotifyTaskAssigned(ctx context.Context, task *domain.Task, assignee *domain.User) error {
	notif := &domain.Notification{
		ID:             uuid.New(),
		UserID:         assignee.ID,
		OrganizationID: task.OrganizationID,
		Type:           domain.NotifTaskAssigned,
		Title:          "New Task Assignment",
		Message:        fmt.Sprintf("You were assigned to %s (scheduled %s)", task.Name, task.ScheduledTime),
		TaskID:         &task.ID,
	}

	return s.notifRepo.Create(ctx, notif)
}
