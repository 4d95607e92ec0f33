package mocks

import (
	mock "github.com/stretchr/testify/mock"

	model "github.com/eventfinder/auth-service/internal/model"
)

// TokenManager is a mock implementation of model.TokenManager.
type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) GenerateAccessToken(subject string) (string, error) {
	args := m.Called(subject)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) GenerateRefreshToken(subject string) (string, model.TokenClaims, error) {
	args := m.Called(subject)
	return args.String(0), args.Get(1).(model.TokenClaims), args.Error(2)
}

func (m *TokenManager) ParseAccessToken(token string) (model.TokenClaims, error) {
	args := m.Called(token)
	return args.Get(0).(model.TokenClaims), args.Error(1)
}

func (m *TokenManager) ParseRefreshToken(token string) (model.TokenClaims, error) {
	args := m.Called(token)
	return args.Get(0).(model.TokenClaims), args.Error(1)
}
