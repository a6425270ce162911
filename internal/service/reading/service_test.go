package reading_test

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"facilitrack/internal/domain"
	"facilitrack/internal/mocks"
	"facilitrack/internal/service/authz"
	"facilitrack/internal/service/notification"
	"facilitrack/internal/service/reading"
)

type fixture struct {
	readingRepo *mocks.ReadingRepository
	commentRepo *mocks.ReadingCommentRepository
	taskRepo    *mocks.TaskRepository
	catRepo     *mocks.CategoryRepository
	userRepo    *mocks.UserRepository
	notifRepo   *mocks.NotificationRepository
	svc         reading.Service
}

func newFixture(now time.Time) *fixture {
	f := &fixture{
		readingRepo: new(mocks.ReadingRepository),
		commentRepo: new(mocks.ReadingCommentRepository),
		taskRepo:    new(mocks.TaskRepository),
		catRepo:     new(mocks.CategoryRepository),
		userRepo:    new(mocks.UserRepository),
		notifRepo:   new(mocks.NotificationRepository),
	}

	authzSvc := authz.NewService(f.userRepo)
	notifSvc := notification.NewService(f.notifRepo, f.userRepo, nil, zerolog.Nop())

	f.svc = reading.NewService(
		f.readingRepo, f.commentRepo, f.taskRepo, f.catRepo, f.userRepo,
		authzSvc, notifSvc, nil, zerolog.Nop(),
		func() time.Time { return now },
	)
	return f
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(s string) *string     { return &s }

var (
	orgID        = uuid.New()
	technicianID = uuid.New()
)

func makeTask(categoryID uuid.UUID) *domain.Task {
	return &domain.Task{
		ID:             uuid.New(),
		OrganizationID: orgID,
		BuildingID:     uuid.New(),
		CategoryID:     categoryID,
		Name:           "Chiller pressure check",
		Frequency:      domain.FrequencyDaily,
		ScheduledTime:  domain.TimeOfDay{Hour: 9, Minute: 0},
		IsActive:       true,
	}
}

func makeCategory(id uuid.UUID) *domain.Category {
	return &domain.Category{
		ID:             id,
		OrganizationID: orgID,
		Name:           "Pressure",
		MinValue:       floatPtr(10),
		MaxValue:       floatPtr(100),
	}
}

func makeTechnician() *domain.User {
	return &domain.User{
		ID:             technicianID,
		OrganizationID: orgID,
		Email:          "tech@example.com",
		FullName:       "Terry Tech",
		Role:           domain.RoleTechnician,
		IsActive:       true,
	}
}

func inWindow() time.Time {
	return time.Date(2026, 3, 14, 9, 4, 0, 0, time.UTC)
}

func TestSubmit_CreatesReadingWithReviewerFanOut(t *testing.T) {
	f := newFixture(inWindow())
	ctx := context.Background()

	categoryID := uuid.New()
	task := makeTask(categoryID)
	reviewers := []domain.User{
		{ID: uuid.New(), OrganizationID: orgID, Role: domain.RoleAdmin, IsActive: true},
		{ID: uuid.New(), OrganizationID: orgID, Role: domain.RoleSupervisor, IsActive: true},
	}

	f.taskRepo.On("GetByID", ctx, orgID, task.ID).Return(task, nil)
	f.taskRepo.On("IsAssigned", ctx, task.ID, technicianID).Return(true, nil)
	f.catRepo.On("GetByID", ctx, orgID, categoryID).Return(makeCategory(categoryID), nil)
	f.userRepo.On("GetByOrgAndRoles", ctx, orgID, domain.ReviewerRoles()).Return(reviewers, nil)
	f.userRepo.On("GetByID", ctx, technicianID).Return(makeTechnician(), nil)

	f.readingRepo.On("CreateWithNotifications", ctx,
		mock.MatchedBy(func(r *domain.Reading) bool {
			return r.Status == domain.ReadingPending &&
				r.OrganizationID == orgID &&
				r.TaskID == task.ID &&
				r.BuildingID == task.BuildingID &&
				r.CategoryID == task.CategoryID &&
				r.SubmittedBy == technicianID
		}),
		mock.MatchedBy(func(notifs []domain.Notification) bool {
			if len(notifs) != len(reviewers) {
				return false
			}
			seen := map[uuid.UUID]bool{}
			for _, n := range notifs {
				if n.Type != domain.NotifReadingSubmitted {
					return false
				}
				seen[n.UserID] = true
			}
			return seen[reviewers[0].ID] && seen[reviewers[1].ID]
		}),
	).Return(nil).Once()

	r, err := f.svc.Submit(ctx, orgID, technicianID, domain.SubmitReadingInput{TaskID: task.ID, Value: 42})

	require.NoError(t, err)
	assert.Equal(t, domain.ReadingPending, r.Status)
	assert.Equal(t, 42.0, r.Value)
	f.readingRepo.AssertExpectations(t)
}

func TestSubmit_RejectsValueOutsideBounds(t *testing.T) {
	f := newFixture(inWindow())
	ctx := context.Background()

	categoryID := uuid.New()
	task := makeTask(categoryID)

	f.taskRepo.On("GetByID", ctx, orgID, task.ID).Return(task, nil)
	f.taskRepo.On("IsAssigned", ctx, task.ID, technicianID).Return(true, nil)
	f.catRepo.On("GetByID", ctx, orgID, categoryID).Return(makeCategory(categoryID), nil)

	for _, value := range []float64{9.5, 100.5} {
		r, err := f.svc.Submit(ctx, orgID, technicianID, domain.SubmitReadingInput{TaskID: task.ID, Value: value})

		require.Error(t, err)
		assert.Nil(t, r)
		var appErr *domain.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Status)
	}

	f.readingRepo.AssertNotCalled(t, "CreateWithNotifications", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmit_RejectsOutsideWindow(t *testing.T) {
	f := newFixture(time.Date(2026, 3, 14, 9, 15, 0, 0, time.UTC))
	ctx := context.Background()

	categoryID := uuid.New()
	task := makeTask(categoryID)

	f.taskRepo.On("GetByID", ctx, orgID, task.ID).Return(task, nil)
	f.taskRepo.On("IsAssigned", ctx, task.ID, technicianID).Return(true, nil)

	r, err := f.svc.Submit(ctx, orgID, technicianID, domain.SubmitReadingInput{TaskID: task.ID, Value: 42})

	require.Error(t, err)
	assert.Nil(t, r)
	assert.Contains(t, err.Error(), "submission window")
	f.readingRepo.AssertNotCalled(t, "CreateWithNotifications", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmit_RejectsUnassignedTechnician(t *testing.T) {
	f := newFixture(inWindow())
	ctx := context.Background()

	task := makeTask(uuid.New())

	f.taskRepo.On("GetByID", ctx, orgID, task.ID).Return(task, nil)
	f.taskRepo.On("IsAssigned", ctx, task.ID, technicianID).Return(false, nil)

	r, err := f.svc.Submit(ctx, orgID, technicianID, domain.SubmitReadingInput{TaskID: task.ID, Value: 42})

	require.Error(t, err)
	assert.Nil(t, r)
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Status)
}

func TestSubmit_TaskFromAnotherOrgIsNotFound(t *testing.T) {
	f := newFixture(inWindow())
	ctx := context.Background()

	taskID := uuid.New()
	f.taskRepo.On("GetByID", ctx, orgID, taskID).Return(nil, sql.ErrNoRows)

	r, err := f.svc.Submit(ctx, orgID, technicianID, domain.SubmitReadingInput{TaskID: taskID, Value: 42})

	require.Error(t, err)
	assert.Nil(t, r)
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}

func TestSubmit_InactiveTask(t *testing.T) {
	f := newFixture(inWindow())
	ctx := context.Background()

	task := makeTask(uuid.New())
	task.IsActive = false

	f.taskRepo.On("GetByID", ctx, orgID, task.ID).Return(task, nil)

	_, err := f.svc.Submit(ctx, orgID, technicianID, domain.SubmitReadingInput{TaskID: task.ID, Value: 42})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not active")
}

func makeReviewer(role domain.Role) *domain.User {
	return &domain.User{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Email:          "boss@example.com",
		FullName:       "Sam Super",
		Role:           role,
		IsActive:       true,
	}
}

func makePendingReading(taskID uuid.UUID) *domain.Reading {
	return &domain.Reading{
		ID:             uuid.New(),
		OrganizationID: orgID,
		TaskID:         taskID,
		BuildingID:     uuid.New(),
		CategoryID:     uuid.New(),
		Value:          42,
		Status:         domain.ReadingPending,
		SubmittedBy:    technicianID,
	}
}

func TestApprove_TransitionsAndNotifiesSubmitter(t *testing.T) {
	f := newFixture(inWindow())
	ctx := context.Background()

	reviewer := makeReviewer(domain.RoleSupervisor)
	task := makeTask(uuid.New())
	r := makePendingReading(task.ID)

	f.userRepo.On("GetByID", ctx, reviewer.ID).Return(reviewer, nil)
	f.readingRepo.On("GetByID", ctx, orgID, r.ID).Return(r, nil)
	f.readingRepo.On("Decide", ctx, orgID, r.ID, domain.ReadingApproved, reviewer.ID,
		mock.MatchedBy(func(at *time.Time) bool { return at != nil }),
		mock.MatchedBy(func(c *domain.ReadingComment) bool { return c != nil && c.Content == "looks good" }),
	).Return(int64(1), nil).Once()
	f.taskRepo.On("GetByID", ctx, orgID, task.ID).Return(task, nil)
	f.userRepo.On("GetByID", ctx, technicianID).Return(makeTechnician(), nil).Maybe()

	f.notifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == technicianID &&
			n.Type == domain.NotifReadingApproved &&
			strings.Contains(n.Message, "looks good")
	})).Return(nil).Once()

	err := f.svc.Approve(ctx, orgID, reviewer.ID, r.ID, strPtr("looks good"))

	require.NoError(t, err)
	f.readingRepo.AssertExpectations(t)
	f.notifRepo.AssertExpectations(t)
}

func TestApprove_NotificationFailureStillSucceeds(t *testing.T) {
	f := newFixture(inWindow())
	ctx := context.Background()

	reviewer := makeReviewer(domain.RoleSupervisor)
	task := makeTask(uuid.New())
	r := makePendingReading(task.ID)

	f.userRepo.On("GetByID", ctx, reviewer.ID).Return(reviewer, nil)
	f.readingRepo.On("GetByID", ctx, orgID, r.ID).Return(r, nil)
	f.readingRepo.On("Decide", ctx, orgID, r.ID, domain.ReadingApproved, reviewer.ID,
		mock.Anything, mock.Anything,
	).Return(int64(1), nil).Once()
	f.taskRepo.On("GetByID", ctx, orgID, task.ID).Return(task, nil)
	f.userRepo.On("GetByID", ctx, technicianID).Return(makeTechnician(), nil).Maybe()

	f.notifRepo.On("Create", ctx, mock.Anything).Return(errors.New("insert failed")).Once()

	err := f.svc.Approve(ctx, orgID, reviewer.ID, r.ID, nil)

	require.NoError(t, err)
	f.readingRepo.AssertExpectations(t)
	f.notifRepo.AssertExpectations(t)
}

func TestReject_WithoutApprovalTimestamp(t *testing.T) {
	f := newFixture(inWindow())
	ctx := context.Background()

	reviewer := makeReviewer(domain.RoleAdmin)
	task := makeTask(uuid.New())
	r := makePendingReading(task.ID)

	f.userRepo.On("GetByID", ctx, reviewer.ID).Return(reviewer, nil)
	f.readingRepo.On("GetByID", ctx, orgID, r.ID).Return(r, nil)
	f.readingRepo.On("Decide", ctx, orgID, r.ID, domain.ReadingRejected, reviewer.ID,
		(*time.Time)(nil), (*domain.ReadingComment)(nil),
	).Return(int64(1), nil).Once()
	f.taskRepo.On("GetByID", ctx, orgID, task.ID).Return(task, nil)
	f.userRepo.On("GetByID", ctx, technicianID).Return(makeTechnician(), nil).Maybe()

	f.notifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.Type == domain.NotifReadingRejected && n.UserID == technicianID
	})).Return(nil).Once()

	err := f.svc.Reject(ctx, orgID, reviewer.ID, r.ID, nil)

	require.NoError(t, err)
	f.readingRepo.AssertExpectations(t)
}

func TestDecide_TechnicianIsForbidden(t *testing.T) {
	f := newFixture(inWindow())
	ctx := context.Background()

	f.userRepo.On("GetByID", ctx, technicianID).Return(makeTechnician(), nil)

	err := f.svc.Approve(ctx, orgID, technicianID, uuid.New(), nil)

	require.Error(t, err)
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Status)
	f.readingRepo.AssertNotCalled(t, "Decide", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDecide_AlreadyDecidedConflicts(t *testing.T) {
	f := newFixture(inWindow())
	ctx := context.Background()

	reviewer := makeReviewer(domain.RoleSupervisor)
	r := makePendingReading(uuid.New())
	r.Status = domain.ReadingApproved

	f.userRepo.On("GetByID", ctx, reviewer.ID).Return(reviewer, nil)
	f.readingRepo.On("GetByID", ctx, orgID, r.ID).Return(r, nil)

	err := f.svc.Reject(ctx, orgID, reviewer.ID, r.ID, nil)

	require.Error(t, err)
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Status)
	f.readingRepo.AssertNotCalled(t, "Decide", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDecide_LostRaceConflicts(t *testing.T) {
	f := newFixture(inWindow())
	ctx := context.Background()

	reviewer := makeReviewer(domain.RoleSupervisor)
	r := makePendingReading(uuid.New())

	f.userRepo.On("GetByID", ctx, reviewer.ID).Return(reviewer, nil)
	f.readingRepo.On("GetByID", ctx, orgID, r.ID).Return(r, nil)
	f.readingRepo.On("Decide", ctx, orgID, r.ID, domain.ReadingApproved, reviewer.ID,
		mock.Anything, mock.Anything,
	).Return(int64(0), nil).Once()

	err := f.svc.Approve(ctx, orgID, reviewer.ID, r.ID, nil)

	require.Error(t, err)
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Status)
	f.notifRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddComment_NotifiesSubmitterWithPreview(t *testing.T) {
	f := newFixture(inWindow())
	ctx := context.Background()

	reviewer := makeReviewer(domain.RoleSupervisor)
	r := makePendingReading(uuid.New())
	longComment := strings.Repeat("a", 80)

	f.userRepo.On("GetByID", ctx, reviewer.ID).Return(reviewer, nil)
	f.readingRepo.On("GetByID", ctx, orgID, r.ID).Return(r, nil)
	f.commentRepo.On("Create", ctx, mock.MatchedBy(func(c *domain.ReadingComment) bool {
		return c.ReadingID == r.ID && c.UserID == reviewer.ID && c.Content == longComment
	})).Return(nil).Once()
	f.notifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == technicianID &&
			strings.Contains(n.Message, strings.Repeat("a", 50)+"...") &&
			!strings.Contains(n.Message, strings.Repeat("a", 51))
	})).Return(nil).Once()

	comment, err := f.svc.AddComment(ctx, orgID, reviewer.ID, r.ID, domain.CreateReadingCommentInput{Content: longComment})

	require.NoError(t, err)
	assert.Equal(t, longComment, comment.Content)
	f.notifRepo.AssertExpectations(t)
}

func TestAddComment_OwnReadingSkipsNotification(t *testing.T) {
	f := newFixture(inWindow())
	ctx := context.Background()

	r := makePendingReading(uuid.New())

	f.userRepo.On("GetByID", ctx, technicianID).Return(makeTechnician(), nil)
	f.readingRepo.On("GetByID", ctx, orgID, r.ID).Return(r, nil)
	f.commentRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

	_, err := f.svc.AddComment(ctx, orgID, technicianID, r.ID, domain.CreateReadingCommentInput{Content: "noted"})

	require.NoError(t, err)
	f.notifRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddComment_BlankContentRejected(t *testing.T) {
	f := newFixture(inWindow())
	ctx := context.Background()

	r := makePendingReading(uuid.New())

	f.userRepo.On("GetByID", ctx, technicianID).Return(makeTechnician(), nil)
	f.readingRepo.On("GetByID", ctx, orgID, r.ID).Return(r, nil)

	_, err := f.svc.AddComment(ctx, orgID, technicianID, r.ID, domain.CreateReadingCommentInput{Content: "   "})

	require.Error(t, err)
	f.commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
