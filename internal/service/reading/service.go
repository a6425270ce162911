package reading

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"facilitrack/internal/domain"
	"facilitrack/internal/repository"
	"facilitrack/internal/service/analytics"
	"facilitrack/internal/service/authz"
	"facilitrack/internal/service/notification"
)

// Service is the reading workflow state machine: PENDING readings are
// created by submission only, and leave PENDING exactly once, via approve
// or reject.
type Service interface {
	Submit(ctx context.Context, orgID, userID uuid.UUID, input domain.SubmitReadingInput) (*domain.Reading, error)
	Approve(ctx context.Context, orgID, reviewerID, readingID uuid.UUID, comment *string) error
	Reject(ctx context.Context, orgID, reviewerID, readingID uuid.UUID, comment *string) error
	AddComment(ctx context.Context, orgID, userID, readingID uuid.UUID, input domain.CreateReadingCommentInput) (*domain.ReadingComment, error)
	ListComments(ctx context.Context, orgID, readingID uuid.UUID) ([]domain.ReadingComment, error)
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Reading, error)
	List(ctx context.Context, orgID uuid.UUID, status *domain.ReadingStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.Reading], error)
	HistoryFor(ctx context.Context, orgID, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Reading], error)
	ApprovedByCategory(ctx context.Context, orgID, buildingID, categoryID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Reading], error)
}

type service struct {
	readingRepo  repository.ReadingRepository
	commentRepo  repository.ReadingCommentRepository
	taskRepo     repository.TaskRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
	authzSvc     authz.Service
	notifSvc     notification.Service
	redis        *redis.Client
	logger       zerolog.Logger
	now          func() time.Time
}

func NewService(
	readingRepo repository.ReadingRepository,
	commentRepo repository.ReadingCommentRepository,
	taskRepo repository.TaskRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
	authzSvc authz.Service,
	notifSvc notification.Service,
	redisClient *redis.Client,
	logger zerolog.Logger,
	now func() time.Time,
) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		readingRepo:  readingRepo,
		commentRepo:  commentRepo,
		taskRepo:     taskRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		authzSvc:     authzSvc,
		notifSvc:     notifSvc,
		redis:        redisClient,
		logger:       logger,
		now:          now,
	}
}

func (s *service) Submit(ctx context.Context, orgID, userID uuid.UUID, input domain.SubmitReadingInput) (*domain.Reading, error) {
	task, err := s.taskRepo.GetByID(ctx, orgID, input.TaskID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("task not found")
	}
	if err != nil {
		return nil, err
	}
	if !task.IsActive {
		return nil, domain.BadRequest("task is not active")
	}

	assigned, err := s.taskRepo.IsAssigned(ctx, task.ID, userID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, domain.Authorization("you are not assigned to this task")
	}

	if !task.ScheduledTime.WindowContains(s.now(), domain.SubmissionWindow) {
		return nil, domain.BadRequest(fmt.Sprintf("task is outside its submission window (opens at %s)", task.ScheduledTime))
	}

	category, err := s.categoryRepo.GetByID(ctx, orgID, task.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := validateBounds(input.Value, category); err != nil {
		return nil, err
	}

	reading := &domain.Reading{
		ID:             uuid.New(),
		OrganizationID: task.OrganizationID,
		TaskID:         task.ID,
		BuildingID:     task.BuildingID,
		CategoryID:     task.CategoryID,
		Value:          input.Value,
		Notes:          input.Notes,
		Status:         domain.ReadingPending,
		SubmittedBy:    userID,
	}

	recipients, err := s.userRepo.GetByOrgAndRoles(ctx, orgID, domain.ReviewerRoles())
	if err != nil {
		return nil, err
	}

	submitter, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	notifs := s.notifSvc.BuildReadingSubmitted(recipients, reading, task, submitter)

	if err := s.readingRepo.CreateWithNotifications(ctx, reading, notifs); err != nil {
		return nil, err
	}

	s.invalidateAnalytics(ctx, orgID)

	reading.Task = task
	reading.Category = category
	reading.Submitter = submitter
	return reading, nil
}

// validateBounds enforces the category's range invariant. Violations are
// always an error result, never a value returned alongside success.
func validateBounds(value float64, category *domain.Category) error {
	if category.MinValue != nil && value < *category.MinValue {
		return domain.BadRequest(fmt.Sprintf("value %g is below minimum (%g)", value, *category.MinValue))
	}
	if category.MaxValue != nil && value > *category.MaxValue {
		return domain.BadRequest(fmt.Sprintf("value %g is above maximum (%g)", value, *category.MaxValue))
	}
	return nil
}

func (s *service) Approve(ctx context.Context, orgID, reviewerID, readingID uuid.UUID, comment *string) error {
	return s.decide(ctx, orgID, reviewerID, readingID, domain.ReadingApproved, comment)
}

func (s *service) Reject(ctx context.Context, orgID, reviewerID, readingID uuid.UUID, comment *string) error {
	return s.decide(ctx, orgID, reviewerID, readingID, domain.ReadingRejected, comment)
}

func (s *service) decide(ctx context.Context, orgID, reviewerID, readingID uuid.UUID, status domain.ReadingStatus, comment *string) error {
	reviewer, err := s.authzSvc.Authorize(ctx, reviewerID, domain.ReviewerRoles(), orgID)
	if err != nil {
		return err
	}

	reading, err := s.readingRepo.GetByID(ctx, orgID, readingID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFound("reading not found")
	}
	if err != nil {
		return err
	}
	if reading.Status != domain.ReadingPending {
		return domain.Conflict("reading has already been decided")
	}

	var approvedAt *time.Time
	if status == domain.ReadingApproved {
		t := s.now()
		approvedAt = &t
	}

	var decisionComment *domain.ReadingComment
	if comment != nil && strings.TrimSpace(*comment) != "" {
		decisionComment = &domain.ReadingComment{
			ID:        uuid.New(),
			ReadingID: reading.ID,
			UserID:    reviewerID,
			Content:   *comment,
		}
	}

	rows, err := s.readingRepo.Decide(ctx, orgID, readingID, status, reviewerID, approvedAt, decisionComment)
	if err != nil {
		return err
	}
	if rows == 0 {
		// Another reviewer got there first.
		return domain.Conflict("reading has already been decided")
	}

	task, err := s.taskRepo.GetByID(ctx, orgID, reading.TaskID)
	if err != nil {
		task = nil
	}

	// The transition is already committed at this point; a failed
	// notification must not undo a successful decision.
	if err := s.notifSvc.NotifyReadingDecided(ctx, reading, task, reviewer, status, comment); err != nil {
		s.logger.Warn().Err(err).
			Str("reading_id", readingID.String()).
			Msg("failed to notify submitter of decision")
	}

	s.invalidateAnalytics(ctx, orgID)
	return nil
}

// commentPreviewLen bounds the notification preview of a comment.
const commentPreviewLen = 50

func commentPreview(content string) string {
	runes := []rune(content)
	if len(runes) <= commentPreviewLen {
		return content
	}
	return string(runes[:commentPreviewLen]) + "..."
}

func (s *service) AddComment(ctx context.Context, orgID, userID, readingID uuid.UUID, input domain.CreateReadingCommentInput) (*domain.ReadingComment, error) {
	author, err := s.authzSvc.Authorize(ctx, userID, nil, orgID)
	if err != nil {
		return nil, err
	}

	reading, err := s.readingRepo.GetByID(ctx, orgID, readingID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("reading not found")
	}
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Content) == "" {
		return nil, domain.Validation("comment content is required")
	}

	comment := &domain.ReadingComment{
		ID:        uuid.New(),
		ReadingID: reading.ID,
		UserID:    userID,
		Content:   input.Content,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	if userID != reading.SubmittedBy {
		if err := s.notifSvc.NotifyReadingCommented(ctx, reading, author, commentPreview(input.Content)); err != nil {
			return nil, err
		}
	}

	comment.Author = author
	return comment, nil
}

func (s *service) ListComments(ctx context.Context, orgID, readingID uuid.UUID) ([]domain.ReadingComment, error) {
	if _, err := s.readingRepo.GetByID(ctx, orgID, readingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("reading not found")
		}
		return nil, err
	}

	comments, err := s.commentRepo.ListByReading(ctx, readingID)
	if err != nil {
		return nil, err
	}

	for i := range comments {
		if author, err := s.userRepo.GetByID(ctx, comments[i].UserID); err == nil {
			comments[i].Author = author
		}
	}
	return comments, nil
}

func (s *service) GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Reading, error) {
	reading, err := s.readingRepo.GetByID(ctx, orgID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("reading not found")
	}
	if err != nil {
		return nil, err
	}

	s.attachSummaries(ctx, reading)
	return reading, nil
}

func (s *service) List(ctx context.Context, orgID uuid.UUID, status *domain.ReadingStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.Reading], error) {
	params.Validate()

	readings, total, err := s.readingRepo.List(ctx, orgID, status, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Reading]{}, err
	}

	for i := range readings {
		s.attachSummaries(ctx, &readings[i])
	}

	return domain.NewPaginatedResponse(readings, params.Page, params.Limit, total), nil
}

func (s *service) HistoryFor(ctx context.Context, orgID, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Reading], error) {
	params.Validate()

	readings, total, err := s.readingRepo.ListBySubmitter(ctx, orgID, userID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Reading]{}, err
	}

	return domain.NewPaginatedResponse(readings, params.Page, params.Limit, total), nil
}

func (s *service) ApprovedByCategory(ctx context.Context, orgID, buildingID, categoryID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Reading], error) {
	params.Validate()

	readings, total, err := s.readingRepo.ListApprovedByCategory(ctx, orgID, buildingID, categoryID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Reading]{}, err
	}

	return domain.NewPaginatedResponse(readings, params.Page, params.Limit, total), nil
}

func (s *service) attachSummaries(ctx context.Context, reading *domain.Reading) {
	if submitter, err := s.userRepo.GetByID(ctx, reading.SubmittedBy); err == nil {
		reading.Submitter = submitter
	}
	if task, err := s.taskRepo.GetByID(ctx, reading.OrganizationID, reading.TaskID); err == nil {
		reading.Task = task
	}
	if category, err := s.categoryRepo.GetByID(ctx, reading.OrganizationID, reading.CategoryID); err == nil {
		reading.Category = category
	}
}

func (s *service) invalidateAnalytics(ctx context.Context, orgID uuid.UUID) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, analytics.CacheKey(orgID)).Err()
	}
}
