package notification_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facilitrack/internal/domain"
	"facilitrack/internal/mocks"
	"facilitrack/internal/service/notification"
)

func newService(notifRepo *mocks.NotificationRepository, userRepo *mocks.UserRepository) notification.Service {
	return notification.NewService(notifRepo, userRepo, nil, zerolog.Nop())
}

func TestMarkAsRead_NotOwnedIsNotFound(t *testing.T) {
	notifRepo := new(mocks.NotificationRepository)
	svc := newService(notifRepo, new(mocks.UserRepository))

	ctx := context.Background()
	userID := uuid.New()
	notifID := uuid.New()

	notifRepo.On("MarkAsRead", ctx, userID, notifID).Return(int64(0), nil)

	err := svc.MarkAsRead(ctx, userID, notifID)

	require.Error(t, err)
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}

func TestMarkAsRead_OwnedSucceeds(t *testing.T) {
	notifRepo := new(mocks.NotificationRepository)
	svc := newService(notifRepo, new(mocks.UserRepository))

	ctx := context.Background()
	userID := uuid.New()
	notifID := uuid.New()

	notifRepo.On("MarkAsRead", ctx, userID, notifID).Return(int64(1), nil)

	require.NoError(t, svc.MarkAsRead(ctx, userID, notifID))
}

func TestDelete_NotOwnedIsNotFound(t *testing.T) {
	notifRepo := new(mocks.NotificationRepository)
	svc := newService(notifRepo, new(mocks.UserRepository))

	ctx := context.Background()
	userID := uuid.New()
	notifID := uuid.New()

	notifRepo.On("Delete", ctx, userID, notifID).Return(int64(0), nil)

	err := svc.Delete(ctx, userID, notifID)

	require.Error(t, err)
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}

func TestMarkAllAsRead_NoUnreadIsStillOK(t *testing.T) {
	notifRepo := new(mocks.NotificationRepository)
	svc := newService(notifRepo, new(mocks.UserRepository))

	ctx := context.Background()
	userID := uuid.New()

	notifRepo.On("MarkAllAsRead", ctx, userID).Return(nil)

	require.NoError(t, svc.MarkAllAsRead(ctx, userID))
	require.NoError(t, svc.MarkAllAsRead(ctx, userID))
}

func TestBuildReadingSubmitted_OnePerRecipient(t *testing.T) {
	svc := newService(new(mocks.NotificationRepository), new(mocks.UserRepository))

	recipients := []domain.User{
		{ID: uuid.New(), Role: domain.RoleAdmin},
		{ID: uuid.New(), Role: domain.RoleSupervisor},
		{ID: uuid.New(), Role: domain.RoleSupervisor},
	}
	reading := &domain.Reading{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		TaskID:         uuid.New(),
		Value:          55.5,
	}
	task := &domain.Task{ID: reading.TaskID, Name: "Generator fuel level"}
	submitter := &domain.User{ID: uuid.New(), FullName: "Terry Tech"}

	notifs := svc.BuildReadingSubmitted(recipients, reading, task, submitter)

	require.Len(t, notifs, len(recipients))
	for i, n := range notifs {
		assert.Equal(t, recipients[i].ID, n.UserID)
		assert.Equal(t, domain.NotifReadingSubmitted, n.Type)
		assert.Equal(t, reading.OrganizationID, n.OrganizationID)
		assert.Contains(t, n.Message, "Terry Tech")
		assert.Contains(t, n.Message, "Generator fuel level")
		assert.Contains(t, n.Message, "55.5")
		require.NotNil(t, n.ReadingID)
		assert.Equal(t, reading.ID, *n.ReadingID)
	}
}
