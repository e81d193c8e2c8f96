//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"kartly-api/internal/infra"
	"kartly-api/internal/pkg/clock"
	"kartly-api/internal/pkg/jwt"
	"kartly-api/internal/usecase/commands"
	commandsmock "kartly-api/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	userRepo   *commandsmock.MockUserRepository
	jwtService *jwt.Service
	clock      *clock.MockClock
	commands   commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.userRepo = commandsmock.NewMockUserRepository(s.mockCtrl)
	s.jwtService = jwt.NewService("test-secret", 15*time.Minute, 168*time.Hour)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	// No DB handle needed: the repository mock absorbs every query.
	s.commands = commands.NewAuthCommands(s.userRepo, s.jwtService, nil, s.clock)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) activeCredentials(id uuid.UUID) *commands.UserCredentials {
	return &commands.UserCredentials{
		ID:           id,
		Email:        "priya@example.com",
		PasswordHash: testPasswordHash,
		Role:         "customer",
		IsActive:     true,
	}
}

func (s *AuthCommandsTestSuite) TestLoginRecordsLastLoginAtClockTime() {
	ctx := context.Background()
	userID := uuid.New()

	s.userRepo.EXPECT().
		FindCredentialsByEmail(ctx, "priya@example.com").
		Return(s.activeCredentials(userID), nil)
	s.userRepo.EXPECT().
		UpdateLastLogin(ctx, userID, s.clock.Now()).
		Return(nil)

	result, err := s.commands.Login(ctx, "priya@example.com", "password123")

	s.Require().NoError(err)
	s.Equal(userID, result.UserID)
	s.NotEmpty(result.TokenPair.AccessToken)
	s.NotEmpty(result.TokenPair.RefreshToken)
}

func (s *AuthCommandsTestSuite) TestLoginUnknownEmail() {
	ctx := context.Background()

	s.userRepo.EXPECT().
		FindCredentialsByEmail(ctx, "nobody@example.com").
		Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

	_, err := s.commands.Login(ctx, "nobody@example.com", "password123")

	s.Require().Error(err)
	s.True(errors.Is(err, commands.ErrUserNotFound))
}

func (s *AuthCommandsTestSuite) TestLoginWrongPassword() {
	ctx := context.Background()

	s.userRepo.EXPECT().
		FindCredentialsByEmail(ctx, "priya@example.com").
		Return(s.activeCredentials(uuid.New()), nil)

	_, err := s.commands.Login(ctx, "priya@example.com", "wrongpassword")

	s.Require().Error(err)
	s.True(errors.Is(err, commands.ErrInvalidCredentials))
}

func (s *AuthCommandsTestSuite) TestLoginInactiveUser() {
	ctx := context.Background()
	credentials := s.activeCredentials(uuid.New())
	credentials.IsActive = false

	s.userRepo.EXPECT().
		FindCredentialsByEmail(ctx, "priya@example.com").
		Return(credentials, nil)

	_, err := s.commands.Login(ctx, "priya@example.com", "password123")

	s.Require().Error(err)
	s.True(errors.Is(err, commands.ErrUserInactive))
}

func (s *AuthCommandsTestSuite) TestLoginSurvivesLastLoginFailure() {
	ctx := context.Background()
	userID := uuid.New()

	s.userRepo.EXPECT().
		FindCredentialsByEmail(ctx, "priya@example.com").
		Return(s.activeCredentials(userID), nil)
	s.userRepo.EXPECT().
		UpdateLastLogin(ctx, userID, gomock.Any()).
		Return(infra.WrapRepoErr("update failed", errors.New("connection reset")))

	result, err := s.commands.Login(ctx, "priya@example.com", "password123")

	s.Require().NoError(err)
	s.Equal(userID, result.UserID)
}

func (s *AuthCommandsTestSuite) TestRegisterDuplicateEmail() {
	ctx := context.Background()

	s.userRepo.EXPECT().
		Create(ctx, gomock.Any(), gomock.Any()).
		Return(uuid.Nil, infra.WrapRepoErr("insert failed", nil, infra.KindDuplicateKey))

	_, err := s.commands.Register(ctx, "priya@example.com", "password123")

	s.Require().Error(err)
	s.True(errors.Is(err, commands.ErrEmailAlreadyInUse))
}

func (s *AuthCommandsTestSuite) TestRegisterRejectsInvalidInput() {
	ctx := context.Background()

	_, err := s.commands.Register(ctx, "not-an-email", "password123")
	s.Require().Error(err)
	s.True(errors.Is(err, commands.ErrDomainValidation))

	_, err = s.commands.Register(ctx, "priya@example.com", "short")
	s.Require().Error(err)
	s.True(errors.Is(err, commands.ErrDomainValidation))
}

func (s *AuthCommandsTestSuite) TestRefreshTokenRejectsAccessToken() {
	ctx := context.Background()
	accessToken, err := s.jwtService.GenerateAccessToken(uuid.New(), "customer")
	s.Require().NoError(err)

	_, err = s.commands.RefreshToken(ctx, accessToken)

	s.Require().Error(err)
	s.True(errors.Is(err, commands.ErrTokenValidation))
}

func (s *AuthCommandsTestSuite) TestRefreshTokenIssuesNewPair() {
	ctx := context.Background()
	refreshToken, err := s.jwtService.GenerateRefreshToken(uuid.New(), "customer")
	s.Require().NoError(err)

	pair, err := s.commands.RefreshToken(ctx, refreshToken)

	s.Require().NoError(err)
	s.NotEmpty(pair.AccessToken)
	s.NotEmpty(pair.RefreshToken)
}
