package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/eventfinder/auth-service/internal/model"
	"github.com/eventfinder/auth-service/internal/service"
	"github.com/eventfinder/auth-service/internal/testutil"
)

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Register(ctx context.Context, params service.RegisterParams) (service.TokenPair, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(service.TokenPair), args.Error(1)
}

func (m *authServiceMock) Authenticate(ctx context.Context, email, password string) (service.TokenPair, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(service.TokenPair), args.Error(1)
}

func (m *authServiceMock) Refresh(ctx context.Context, refreshToken string) (service.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	return args.Get(0).(service.TokenPair), args.Error(1)
}

func (m *authServiceMock) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func newAuthTestRouter(svc AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuth(svc, testutil.NoopLogger())

	engine := gin.New()
	auth := engine.Group("/api/v1/auth")
	auth.POST("/register", h.Register)
	auth.POST("/authenticate", h.Authenticate)
	auth.POST("/refresh-token", h.RefreshToken)
	auth.POST("/logout", h.Logout)
	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &authServiceMock{}
	svc.On("Register", mock.Anything, service.RegisterParams{
		Email:     "new@user.com",
		FirstName: "New",
		LastName:  "User",
		Password:  "secret123",
	}).Return(service.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil)

	w := postJSON(t, newAuthTestRouter(svc), "/api/v1/auth/register", gin.H{
		"email":           "new@user.com",
		"firstName":       "New",
		"lastName":        "User",
		"password":        "secret123",
		"confirmPassword": "secret123",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "a", resp.AccessToken)
	assert.Equal(t, "r", resp.RefreshToken)
	svc.AssertExpectations(t)
}

func TestAuthHandler_Register_PasswordMismatch(t *testing.T) {
	svc := &authServiceMock{}

	w := postJSON(t, newAuthTestRouter(svc), "/api/v1/auth/register", gin.H{
		"email":           "new@user.com",
		"firstName":       "New",
		"lastName":        "User",
		"password":        "secret123",
		"confirmPassword": "different",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	svc := &authServiceMock{}

	w := postJSON(t, newAuthTestRouter(svc), "/api/v1/auth/register", gin.H{
		"email":           "new@user.com",
		"firstName":       "New",
		"lastName":        "User",
		"password":        "short",
		"confirmPassword": "short",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	svc := &authServiceMock{}
	svc.On("Register", mock.Anything, mock.Anything).
		Return(service.TokenPair{}, model.ErrEmailTaken)

	w := postJSON(t, newAuthTestRouter(svc), "/api/v1/auth/register", gin.H{
		"email":           "dup@user.com",
		"firstName":       "Dup",
		"lastName":        "User",
		"password":        "secret123",
		"confirmPassword": "secret123",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Authenticate(t *testing.T) {
	svc := &authServiceMock{}
	svc.On("Authenticate", mock.Anything, "a@b.c", "secret123").
		Return(service.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil)

	w := postJSON(t, newAuthTestRouter(svc), "/api/v1/auth/authenticate", gin.H{
		"email":    "a@b.c",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandler_Authenticate_BadCredentials(t *testing.T) {
	svc := &authServiceMock{}
	svc.On("Authenticate", mock.Anything, "a@b.c", "wrong").
		Return(service.TokenPair{}, model.ErrInvalidCredentials)

	w := postJSON(t, newAuthTestRouter(svc), "/api/v1/auth/authenticate", gin.H{
		"email":    "a@b.c",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAuthHandler_Authenticate_MalformedJSON(t *testing.T) {
	svc := &authServiceMock{}
	engine := newAuthTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/authenticate", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	svc := &authServiceMock{}
	svc.On("Refresh", mock.Anything, "refresh-1").
		Return(service.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil)

	w := postJSON(t, newAuthTestRouter(svc), "/api/v1/auth/refresh-token", gin.H{
		"refreshToken": "refresh-1",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "r2", resp.RefreshToken)
}

func TestAuthHandler_RefreshToken_Invalid(t *testing.T) {
	svc := &authServiceMock{}
	svc.On("Refresh", mock.Anything, "stale").
		Return(service.TokenPair{}, model.ErrTokenRevoked)

	w := postJSON(t, newAuthTestRouter(svc), "/api/v1/auth/refresh-token", gin.H{
		"refreshToken": "stale",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	svc := &authServiceMock{}
	svc.On("Logout", mock.Anything, "refresh-1").Return(nil)

	w := postJSON(t, newAuthTestRouter(svc), "/api/v1/auth/logout", gin.H{
		"refreshToken": "refresh-1",
	})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
}

func TestAuthHandler_Logout_MissingToken(t *testing.T) {
	svc := &authServiceMock{}

	w := postJSON(t, newAuthTestRouter(svc), "/api/v1/auth/logout", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
}
