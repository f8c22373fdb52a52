// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "leadforge/internal/delivery/context"
	"leadforge/internal/domain/entity"
	domainerrors "leadforge/internal/domain/errors"
	"leadforge/internal/domain/repository"
	"leadforge/internal/domain/service"
	"leadforge/internal/errors"
	"leadforge/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	authRepo         repository.AuthRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	logger           *slog.Logger
	now              func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	AuthRepo         repository.AuthRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		authRepo:         params.AuthRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account with a password credential.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if username == "" || email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username and email are required")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, errors.WithStack(err)
	}

	// bcrypt is CPU-bound, keep it out of the transaction.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Tier:     entity.TierFree,
		Roles:    entity.Roles{entity.RoleUser},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		if err := ensureUserAbsent(ctx, userRepo, username, email); err != nil {
			return err
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		auth := &entity.Authentication{
			UserID:       user.ID,
			PasswordHash: passwordHash,
		}
		if err := authRepo.CreateAuthentication(ctx, auth); err != nil {
			return errors.Wrap(err, "failed to create authentication")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", user.ID))

	return &usecase.RegisterOutput{User: user}, nil
}

func ensureUserAbsent(ctx context.Context, userRepo repository.UserRepository, username, email string) error {
	if _, err := userRepo.FindByEmail(ctx, email); err == nil {
		return domainerrors.ErrUserAlreadyExists.WithDetails("email already registered")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check email")
	}

	if _, err := userRepo.FindByUsername(ctx, username); err == nil {
		return domainerrors.ErrUserAlreadyExists.WithDetails("username already taken")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check username")
	}

	return nil
}

// Login authenticates by email or username and opens a session.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	identifier := strings.TrimSpace(input.Identifier)
	srv.log(ctx).Debug("Starting user login", slog.String("identifier", identifier))

	user, authRecord, err := srv.loadCredentials(ctx, identifier)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("identifier", identifier), slog.Any("error", err))

		return nil, err
	}

	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("identifier", identifier), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(user.ID, user.Roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.storeRefreshToken(ctx, user.ID, refreshTokenString); err != nil {
		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}
	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         user,
	}, nil
}

func (srv *userService) loadCredentials(ctx context.Context, identifier string) (*entity.User, *entity.Authentication, error) {
	var (
		user *entity.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = srv.userRepo.FindByEmail(ctx, strings.ToLower(identifier))
	} else {
		user, err = srv.userRepo.FindByUsername(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, nil, errors.Wrap(err, "failed to find user")
	}

	authRecord, err := srv.authRepo.FindAuthenticationByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, nil, errors.Wrap(err, "failed to find authentication")
	}

	return user, authRecord, nil
}

func (srv *userService) storeRefreshToken(ctx context.Context, userID uuid.UUID, refreshTokenString string) error {
	now := srv.now()
	token := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: now.Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, token); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	if err := srv.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx, userID); err != nil {
		srv.log(ctx).Warn("Failed to prune expired sessions", slog.Any("userID", userID), slog.Any("error", err))
	}

	return nil
}

// RefreshToken handles the process of issuing a new access token using a refresh token.
// The refresh token remains unchanged.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Debug("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil || claims.Type != service.TokenTypeRefresh {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token revoked")
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}
	if stored.IsExpired(srv.now()) || stored.UserID != claims.UserID {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token expired")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token owner is gone")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	accessToken, _, err := srv.tokenService.GenerateTokens(user.ID, user.Roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// Logout handles the process of invalidating a user's session by deleting their refresh token.
// Unknown tokens are treated as already logged out.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if strings.TrimSpace(input.RefreshToken) == "" {
		return domainerrors.ErrInvalidRequest.WithDetails("refresh_token is required")
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil
		}
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// GetProfile returns the account of userID.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
