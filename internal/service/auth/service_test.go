package auth_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"facilitrack/internal/config"
	"facilitrack/internal/domain"
	"facilitrack/internal/mocks"
	"facilitrack/internal/service/auth"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
	}
}

func hashed(password string) string {
	h, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(h)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := auth.NewService(userRepo, new(mocks.OrganizationRepository), new(mocks.SessionRepository), testConfig())

	ctx := context.Background()
	userRepo.On("GetByEmail", ctx, "tech@example.com").Return(&domain.User{
		ID:           uuid.New(),
		Email:        "tech@example.com",
		PasswordHash: hashed("correct horse"),
		IsActive:     true,
	}, nil)

	_, _, err := svc.Login(ctx, domain.LoginInput{Email: "tech@example.com", Password: "wrong"})

	require.Error(t, err)
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.Status)
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := auth.NewService(userRepo, new(mocks.OrganizationRepository), new(mocks.SessionRepository), testConfig())

	ctx := context.Background()
	userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, nil)

	_, _, err := svc.Login(ctx, domain.LoginInput{Email: "nobody@example.com", Password: "whatever"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := auth.NewService(userRepo, new(mocks.OrganizationRepository), new(mocks.SessionRepository), testConfig())

	ctx := context.Background()
	userRepo.On("GetByEmail", ctx, "gone@example.com").Return(&domain.User{
		ID:           uuid.New(),
		Email:        "gone@example.com",
		PasswordHash: hashed("correct horse"),
		IsActive:     false,
	}, nil)

	_, _, err := svc.Login(ctx, domain.LoginInput{Email: "gone@example.com", Password: "correct horse"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "deactivated")
}

func TestLogin_IssuesValidTokenPair(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	sessionRepo := new(mocks.SessionRepository)
	svc := auth.NewService(userRepo, new(mocks.OrganizationRepository), sessionRepo, testConfig())

	ctx := context.Background()
	user := &domain.User{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		Email:          "tech@example.com",
		PasswordHash:   hashed("correct horse"),
		Role:           domain.RoleTechnician,
		IsActive:       true,
	}

	userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil)
	sessionRepo.On("Create", ctx, mock.MatchedBy(func(s *domain.Session) bool {
		return s.UserID == user.ID && s.TokenHash != ""
	})).Return(nil).Once()

	loggedIn, tokens, err := svc.Login(ctx, domain.LoginInput{Email: user.Email, Password: "correct horse"})

	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)

	claims, err := svc.ValidateAccessToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.OrganizationID, claims.OrganizationID)
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	svc := auth.NewService(new(mocks.UserRepository), new(mocks.OrganizationRepository), new(mocks.SessionRepository), testConfig())

	_, err := svc.ValidateAccessToken("not.a.token")

	require.Error(t, err)
}

func TestRegister_InvalidInviteCode(t *testing.T) {
	orgRepo := new(mocks.OrganizationRepository)
	svc := auth.NewService(new(mocks.UserRepository), orgRepo, new(mocks.SessionRepository), testConfig())

	ctx := context.Background()
	orgRepo.On("GetByInviteCode", ctx, "bogus").Return(nil, sql.ErrNoRows)

	_, _, err := svc.Register(ctx, domain.RegisterInput{
		InviteCode: "bogus",
		Email:      "new@example.com",
		Password:   "password123",
		FullName:   "New Tech",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid invite code")
}

func TestRegister_JoinsAsTechnician(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	orgRepo := new(mocks.OrganizationRepository)
	sessionRepo := new(mocks.SessionRepository)
	svc := auth.NewService(userRepo, orgRepo, sessionRepo, testConfig())

	ctx := context.Background()
	org := &domain.Organization{ID: uuid.New(), Name: "Acme Facilities", InviteCode: "abc123"}

	orgRepo.On("GetByInviteCode", ctx, org.InviteCode).Return(org, nil)
	userRepo.On("ExistsByEmail", ctx, "new@example.com").Return(false, nil)
	userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.OrganizationID == org.ID && u.Role == domain.RoleTechnician && u.IsActive
	})).Return(nil).Once()
	sessionRepo.On("Create", ctx, mock.Anything).Return(nil)

	user, tokens, err := svc.Register(ctx, domain.RegisterInput{
		InviteCode: org.InviteCode,
		Email:      "new@example.com",
		Password:   "password123",
		FullName:   "New Tech",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleTechnician, user.Role)
	assert.NotEmpty(t, tokens.AccessToken)
	userRepo.AssertExpectations(t)
}

func TestRegisterOrganization_FirstUserIsAdmin(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	orgRepo := new(mocks.OrganizationRepository)
	sessionRepo := new(mocks.SessionRepository)
	svc := auth.NewService(userRepo, orgRepo, sessionRepo, testConfig())

	ctx := context.Background()

	userRepo.On("ExistsByEmail", ctx, "founder@example.com").Return(false, nil)
	orgRepo.On("Create", ctx, mock.MatchedBy(func(o *domain.Organization) bool {
		return o.Name == "Acme Facilities" && o.InviteCode != ""
	})).Return(nil).Once()
	userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Role == domain.RoleAdmin
	})).Return(nil).Once()
	sessionRepo.On("Create", ctx, mock.Anything).Return(nil)

	user, _, err := svc.RegisterOrganization(ctx, domain.RegisterOrganizationInput{
		Name:     "Acme Facilities",
		Email:    "founder@example.com",
		Password: "password123",
		FullName: "Fran Founder",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	orgRepo.AssertExpectations(t)
}

func TestRefreshToken_ExpiredSessionRejected(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	sessionRepo := new(mocks.SessionRepository)
	svc := auth.NewService(userRepo, new(mocks.OrganizationRepository), sessionRepo, testConfig())

	ctx := context.Background()
	session := &domain.Session{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	sessionRepo.On("GetByTokenHash", ctx, mock.AnythingOfType("string")).Return(session, nil)
	sessionRepo.On("Delete", ctx, session.ID).Return(nil)

	_, err := svc.RefreshToken(ctx, "some-refresh-token")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
	userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
