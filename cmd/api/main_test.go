package main

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"facilitrack/internal/config"
	"facilitrack/internal/domain"
	"facilitrack/internal/handler"
	"facilitrack/internal/middleware"
	"facilitrack/internal/mocks"
	"facilitrack/internal/repository"
	"facilitrack/internal/service"
)

type routeFixture struct {
	userRepo    *mocks.UserRepository
	sessionRepo *mocks.SessionRepository
	readingRepo *mocks.ReadingRepository
	services    *service.Services
	app         *fiber.App
}

func newRouteFixture() *routeFixture {
	f := &routeFixture{
		userRepo:    new(mocks.UserRepository),
		sessionRepo: new(mocks.SessionRepository),
		readingRepo: new(mocks.ReadingRepository),
	}

	repos := &repository.Repositories{
		Organization:   new(mocks.OrganizationRepository),
		User:           f.userRepo,
		Session:        f.sessionRepo,
		Building:       new(mocks.BuildingRepository),
		Category:       new(mocks.CategoryRepository),
		Task:           new(mocks.TaskRepository),
		Reading:        f.readingRepo,
		ReadingComment: new(mocks.ReadingCommentRepository),
		Notification:   new(mocks.NotificationRepository),
	}

	cfg := &config.Config{
		Environment:      "test",
		JWTSecret:        "route-test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
	}

	f.services = service.NewServices(repos, nil, nil, cfg, zerolog.Nop())
	handlers := handler.NewHandlers(f.services)

	f.app = fiber.New(fiber.Config{
		ErrorHandler: middleware.NewErrorHandler(false, zerolog.Nop()),
	})
	setupRoutes(f.app, handlers, f.services.Auth)
	return f
}

func (f *routeFixture) loginAs(t *testing.T, user *domain.User) string {
	t.Helper()

	const password = "password123"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user.PasswordHash = string(hash)

	f.userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)
	f.userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	f.sessionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, tokens, err := f.services.Auth.Login(context.Background(), domain.LoginInput{
		Email:    user.Email,
		Password: password,
	})
	require.NoError(t, err)
	return tokens.AccessToken
}

func technicianUser() *domain.User {
	return &domain.User{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		Email:          "tech@example.com",
		FullName:       "Terry Tech",
		Role:           domain.RoleTechnician,
		IsActive:       true,
	}
}

func TestRoutes_TechnicianCanListReadings(t *testing.T) {
	f := newRouteFixture()
	tech := technicianUser()
	token := f.loginAs(t, tech)

	f.readingRepo.On("List", mock.Anything, tech.OrganizationID, (*domain.ReadingStatus)(nil), mock.Anything).
		Return([]domain.Reading{}, int64(0), nil)

	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/readings", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRoutes_TechnicianCannotListPendingReadings(t *testing.T) {
	f := newRouteFixture()
	tech := technicianUser()
	token := f.loginAs(t, tech)

	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/readings/pending", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
