package mocks

import (
	context "context"

	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"

	model "github.com/eventfinder/auth-service/internal/model"
)

// RefreshTokenStore is a mock implementation of model.RefreshTokenStore.
type RefreshTokenStore struct {
	mock.Mock
}

func (m *RefreshTokenStore) GetByToken(ctx context.Context, token string) (model.RefreshToken, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(model.RefreshToken), args.Error(1)
}

func (m *RefreshTokenStore) ListValidByUser(ctx context.Context, userID uuid.UUID) ([]model.RefreshToken, error) {
	args := m.Called(ctx, userID)
	var tokens []model.RefreshToken
	if v := args.Get(0); v != nil {
		tokens = v.([]model.RefreshToken)
	}
	return tokens, args.Error(1)
}

func (m *RefreshTokenStore) Save(ctx context.Context, token model.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *RefreshTokenStore) SaveAll(ctx context.Context, tokens []model.RefreshToken) error {
	args := m.Called(ctx, tokens)
	return args.Error(0)
}

func (m *RefreshTokenStore) InUserScope(ctx context.Context, userID uuid.UUID, fn func(ctx context.Context, store model.RefreshTokenStore) error) error {
	args := m.Called(ctx, userID, fn)
	return args.Error(0)
}
