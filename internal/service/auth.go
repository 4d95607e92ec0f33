package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/eventfinder/auth-service/internal/logger"
	"github.com/eventfinder/auth-service/internal/model"
)

// TokenPair bundles the two credentials returned by every successful
// authentication flow.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RegisterParams carries the already field-validated registration input.
type RegisterParams struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// Auth orchestrates the four user-facing authentication flows over the
// user store, the password hasher and the token service. It holds no
// state of its own.
type Auth struct {
	users        model.UserStore
	hasher       model.PasswordHasher
	tokenService *TokenService
	logger       *logger.Logger
}

func NewAuth(users model.UserStore, hasher model.PasswordHasher, tokenService *TokenService, logger *logger.Logger) *Auth {
	return &Auth{
		users:        users,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register creates a new user with the default role and returns their
// first token pair. Email uniqueness is case-insensitive.
func (a *Auth) Register(ctx context.Context, params RegisterParams) (TokenPair, error) {
	a.logger.Debug("Auth service: starting user registration",
		"email", params.Email)

	exists, err := a.users.ExistsByEmail(ctx, params.Email)
	if err != nil {
		a.logger.Error("Auth service: failed to check email",
			"email", params.Email,
			"error", err.Error())
		return TokenPair{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		a.logger.Info("Auth service: user already exists",
			"email", params.Email)
		return TokenPair{}, model.ErrEmailTaken
	}

	digest, err := a.hasher.Hash(params.Password)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.New(),
		Email:        params.Email,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		PasswordHash: digest,
		Role:         model.RoleUser,
	}

	saved, err := a.users.Create(ctx, user)
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return TokenPair{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"email", saved.Email,
		"user_id", saved.ID)

	return a.issuePair(ctx, saved)
}

// Authenticate verifies an email/password pair and returns a fresh token
// pair. The same error covers an unknown email and a wrong password.
func (a *Auth) Authenticate(ctx context.Context, email, password string) (TokenPair, error) {
	user, err := a.validateCredentials(ctx, email, password)
	if err != nil {
		return TokenPair{}, err
	}

	a.logger.Info("Auth service: user authenticated",
		"user_id", user.ID)

	return a.issuePair(ctx, user)
}

// Refresh exchanges a valid refresh token for a new pair. The presented
// token is revoked as a side effect of issuing its replacement.
func (a *Auth) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	user, err := a.tokenService.VerifyRefresh(ctx, refreshToken)
	if err != nil {
		return TokenPair{}, err
	}

	return a.issuePair(ctx, user)
}

// Logout revokes the presented refresh token after confirming it is
// currently valid. The matching access token stays usable until its
// natural expiry.
func (a *Auth) Logout(ctx context.Context, refreshToken string) error {
	user, err := a.tokenService.VerifyRefresh(ctx, refreshToken)
	if err != nil {
		return err
	}

	if err := a.tokenService.RevokeByToken(ctx, refreshToken); err != nil {
		return err
	}

	a.logger.Info("Auth service: user logged out",
		"user_id", user.ID)

	return nil
}

func (a *Auth) validateCredentials(ctx context.Context, email, password string) (model.User, error) {
	user, err := a.users.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		return model.User{}, model.ErrInvalidCredentials
	}

	return user, nil
}

func (a *Auth) issuePair(ctx context.Context, user model.User) (TokenPair, error) {
	access, refresh, err := a.tokenService.IssuePair(ctx, user)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
