// Package memory provides in-memory store implementations used by tests
// and local development.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/eventfinder/auth-service/internal/model"
)

var _ model.RefreshTokenStore = (*RefreshTokenStore)(nil)

// RefreshTokenStore keeps refresh-token records in a map guarded by one
// mutex. InUserScope holds the mutex for the whole unit of work, which
// serializes concurrent issuances the same way the advisory lock does in
// the Postgres store.
type RefreshTokenStore struct {
	mu      sync.Mutex
	records map[uuid.UUID]model.RefreshToken
}

func NewRefreshTokenStore() *RefreshTokenStore {
	return &RefreshTokenStore{records: make(map[uuid.UUID]model.RefreshToken)}
}

func (s *RefreshTokenStore) GetByToken(ctx context.Context, token string) (model.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getByToken(token)
}

func (s *RefreshTokenStore) ListValidByUser(ctx context.Context, userID uuid.UUID) ([]model.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listValidByUser(userID), nil
}

func (s *RefreshTokenStore) Save(ctx context.Context, token model.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.save(token)
	return nil
}

func (s *RefreshTokenStore) SaveAll(ctx context.Context, tokens []model.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, token := range tokens {
		s.save(token)
	}
	return nil
}

func (s *RefreshTokenStore) InUserScope(ctx context.Context, userID uuid.UUID, fn func(ctx context.Context, store model.RefreshTokenStore) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, &userScope{s: s})
}

func (s *RefreshTokenStore) getByToken(token string) (model.RefreshToken, error) {
	for _, rt := range s.records {
		if rt.Token == token {
			return rt, nil
		}
	}
	return model.RefreshToken{}, model.ErrNotFound
}

func (s *RefreshTokenStore) listValidByUser(userID uuid.UUID) []model.RefreshToken {
	var tokens []model.RefreshToken
	for _, rt := range s.records {
		if rt.UserID == userID && !rt.Revoked {
			tokens = append(tokens, rt)
		}
	}
	return tokens
}

func (s *RefreshTokenStore) save(token model.RefreshToken) {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	s.records[token.ID] = token
}

// userScope is the view handed to InUserScope callbacks. The outer mutex
// is already held, so its methods touch the map directly.
type userScope struct {
	s *RefreshTokenStore
}

var _ model.RefreshTokenStore = (*userScope)(nil)

func (u *userScope) GetByToken(ctx context.Context, token string) (model.RefreshToken, error) {
	return u.s.getByToken(token)
}

func (u *userScope) ListValidByUser(ctx context.Context, userID uuid.UUID) ([]model.RefreshToken, error) {
	return u.s.listValidByUser(userID), nil
}

func (u *userScope) Save(ctx context.Context, token model.RefreshToken) error {
	u.s.save(token)
	return nil
}

func (u *userScope) SaveAll(ctx context.Context, tokens []model.RefreshToken) error {
	for _, token := range tokens {
		u.s.save(token)
	}
	return nil
}

func (u *userScope) InUserScope(ctx context.Context, userID uuid.UUID, fn func(ctx context.Context, store model.RefreshTokenStore) error) error {
	return fn(ctx, u)
}
