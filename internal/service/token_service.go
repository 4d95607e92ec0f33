package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eventfinder/auth-service/internal/logger"
	"github.com/eventfinder/auth-service/internal/model"
)

// TokenService issues and verifies access/refresh token pairs. It
// composes the TokenManager with the refresh-token ledger and the user
// store used for subject resolution.
type TokenService struct {
	manager model.TokenManager
	store   model.RefreshTokenStore
	users   model.UserStore
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, store model.RefreshTokenStore, users model.UserStore, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, store: store, users: users, logger: logger}
}

// IssuePair returns a fresh access/refresh pair for the user. The access
// token is stateless and never persisted. The refresh token is persisted
// after every previously valid refresh record of the user has been marked
// revoked, all inside one per-user unit of work: at any observable
// instant a user has at most one valid refresh record.
func (s *TokenService) IssuePair(ctx context.Context, user model.User) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.manager.GenerateAccessToken(user.Email)
	if err != nil {
		return "", "", fmt.Errorf("failed to issue access token: %w", err)
	}

	err = s.store.InUserScope(ctx, user.ID, func(ctx context.Context, store model.RefreshTokenStore) error {
		valid, err := store.ListValidByUser(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("failed to list valid refresh tokens: %w", err)
		}
		for i := range valid {
			valid[i].Revoked = true
		}
		if err := store.SaveAll(ctx, valid); err != nil {
			return fmt.Errorf("failed to revoke previous refresh tokens: %w", err)
		}

		refresh, claims, err := s.manager.GenerateRefreshToken(user.Email)
		if err != nil {
			return fmt.Errorf("failed to issue refresh token: %w", err)
		}

		record := model.RefreshToken{
			ID:        uuid.New(),
			Token:     refresh,
			Kind:      model.TokenKindRefresh,
			ExpiresAt: claims.ExpiresAt,
			Revoked:   false,
			UserID:    user.ID,
		}
		if err := store.Save(ctx, record); err != nil {
			return fmt.Errorf("failed to persist refresh token: %w", err)
		}

		refreshToken = refresh
		return nil
	})
	if err != nil {
		return "", "", err
	}

	s.logger.Debug("Token service: issued token pair", "user_id", user.ID)

	return accessToken, refreshToken, nil
}

// VerifyAccess validates an access token and resolves its owner. Access
// tokens are deliberately un-revocable before natural expiry, so the
// ledger is never consulted here.
func (s *TokenService) VerifyAccess(ctx context.Context, tokenString string) (model.User, error) {
	claims, err := s.manager.ParseAccessToken(tokenString)
	if err != nil {
		return model.User{}, err
	}

	return s.resolveSubject(ctx, claims.Subject)
}

// VerifyRefresh validates a refresh token against both its claims and the
// ledger. A record that is revoked or past expiry, on either source,
// makes the token invalid. A ledger miss falls back to claim-only expiry
// validation and is logged as anomalous.
func (s *TokenService) VerifyRefresh(ctx context.Context, tokenString string) (model.User, error) {
	claims, err := s.manager.ParseRefreshToken(tokenString)
	if err != nil {
		return model.User{}, err
	}

	var record model.RefreshToken
	ledgerHit := true

	record, err = s.store.GetByToken(ctx, tokenString)
	switch {
	case errors.Is(err, model.ErrNotFound):
		ledgerHit = false
		s.logger.Warn("Token service: refresh token missing from ledger, claim-only validation",
			"subject", claims.Subject)
	case err != nil:
		return model.User{}, fmt.Errorf("failed to look up refresh token: %w", err)
	default:
		if record.Revoked {
			return model.User{}, model.ErrTokenRevoked
		}
		if time.Now().After(record.ExpiresAt) {
			return model.User{}, model.ErrTokenExpired
		}
	}

	user, err := s.resolveSubject(ctx, claims.Subject)
	if err != nil {
		return model.User{}, err
	}

	if ledgerHit && record.UserID != user.ID {
		return model.User{}, model.ErrTokenOwner
	}

	return user, nil
}

// RevokeByToken marks the ledger record matching the token as revoked.
// A token that was never recorded is a no-op.
func (s *TokenService) RevokeByToken(ctx context.Context, tokenString string) error {
	record, err := s.store.GetByToken(ctx, tokenString)
	if errors.Is(err, model.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up refresh token: %w", err)
	}

	record.Revoked = true
	if err := s.store.Save(ctx, record); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

func (s *TokenService) resolveSubject(ctx context.Context, email string) (model.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to resolve token subject: %w", err)
	}
	return user, nil
}
