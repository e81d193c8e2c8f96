package commands

import (
	"context"
	"log/slog"
	"time"

	"kartly-api/internal/domain/user"
	"kartly-api/internal/infra"
	"kartly-api/internal/infra/db"
	"kartly-api/internal/pkg/clock"
	"kartly-api/internal/pkg/errs"
	"kartly-api/internal/pkg/jwt"
	"kartly-api/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrEmailAlreadyInUse    = errs.New("email already in use")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

// UserCredentials is the read shape the login flow needs.
type UserCredentials struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	FindCredentialsByEmail(ctx context.Context, email string) (*UserCredentials, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}

type AuthCommands interface {
	Register(ctx context.Context, email, rawPassword string) (*LoginResult, error)
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
	db         db.DBTX
	clock      clock.Clock
}

func NewAuthCommands(userRepo UserRepository, jwtService *jwt.Service, dbtx db.DBTX, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		db:         dbtx,
		clock:      clk,
	}
}

// Register creates a customer account and logs it in.
func (a *authCommandsImpl) Register(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if _, err := user.NewPassword(rawPassword); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	hash, err := password.HashPassword(rawPassword)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	entity := user.NewUser(emailVO, hash, user.RoleCustomer)

	userID, err := a.userRepo.Create(ctx, a.db, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailAlreadyInUse
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	tokenPair, err := a.generateTokenPair(userID, user.RoleCustomer)
	if err != nil {
		return nil, err
	}

	return &LoginResult{UserID: userID, TokenPair: tokenPair}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	credentials, err := a.userRepo.FindCredentialsByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !credentials.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(credentials.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(credentials.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	tokenPair, err := a.generateTokenPair(credentials.ID, role)
	if err != nil {
		return nil, err
	}

	if err := a.userRepo.UpdateLastLogin(ctx, credentials.ID, a.clock.Now()); err != nil {
		// Not critical; login itself succeeded.
		slog.Warn("failed to update last login", "user_id", credentials.ID, "error", err.Error())
	}

	return &LoginResult{UserID: credentials.ID, TokenPair: tokenPair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	return a.generateTokenPair(claims.UserID, role)
}

func (a *authCommandsImpl) generateTokenPair(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
