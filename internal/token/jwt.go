package token

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/eventfinder/auth-service/internal/model"
)

// Claims represents JWT claims with an explicit token kind.
type Claims struct {
	jwt.RegisteredClaims
	Kind string `json:"kind"`
}

// JWT implements model.TokenManager backed by symmetric HMAC-SHA256.
// The same key signs and verifies; expiration durations per token kind
// are configuration inputs.
type JWT struct {
	key        []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWT creates a token manager from a base64url-encoded secret and the
// per-kind expiration durations.
func NewJWT(encodedSecret string, accessTTL, refreshTTL time.Duration) (*JWT, error) {
	key, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(encodedSecret, "="))
	if err != nil {
		return nil, fmt.Errorf("failed to decode signing secret: %w", err)
	}
	if len(key) == 0 {
		return nil, errors.New("signing secret is empty")
	}

	return &JWT{key: key, accessTTL: accessTTL, refreshTTL: refreshTTL}, nil
}

// GenerateAccessToken creates a short-lived access token for the subject.
func (j *JWT) GenerateAccessToken(subject string) (string, error) {
	token, _, err := j.generate(subject, model.TokenKindAccess, j.accessTTL)
	return token, err
}

// GenerateRefreshToken creates a long-lived refresh token and returns its
// decoded claims for persistence.
func (j *JWT) GenerateRefreshToken(subject string) (string, model.TokenClaims, error) {
	return j.generate(subject, model.TokenKindRefresh, j.refreshTTL)
}

// ParseAccessToken verifies signature, expiry and kind of an access token.
func (j *JWT) ParseAccessToken(tokenString string) (model.TokenClaims, error) {
	return j.parse(tokenString, model.TokenKindAccess)
}

// ParseRefreshToken verifies signature, expiry and kind of a refresh token.
func (j *JWT) ParseRefreshToken(tokenString string) (model.TokenClaims, error) {
	return j.parse(tokenString, model.TokenKindRefresh)
}

func (j *JWT) generate(subject, kind string, ttl time.Duration) (string, model.TokenClaims, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Kind: kind,
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.key)
	if err != nil {
		return "", model.TokenClaims{}, fmt.Errorf("failed to sign %s: %w", kind, err)
	}

	return tokenString, toModelClaims(&claims), nil
}

func (j *JWT) parse(tokenString, wantKind string) (model.TokenClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.TokenClaims{}, model.ErrTokenExpired
		}
		return model.TokenClaims{}, fmt.Errorf("%w: %v", model.ErrTokenMalformed, err)
	}
	if !token.Valid {
		return model.TokenClaims{}, model.ErrTokenMalformed
	}
	if claims.Kind != wantKind {
		return model.TokenClaims{}, fmt.Errorf("%w: got %q", model.ErrTokenKind, claims.Kind)
	}

	return toModelClaims(claims), nil
}

func toModelClaims(c *Claims) model.TokenClaims {
	mc := model.TokenClaims{
		Subject: c.Subject,
		Kind:    c.Kind,
		ID:      c.ID,
	}
	if c.IssuedAt != nil {
		mc.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		mc.ExpiresAt = c.ExpiresAt.Time
	}
	return mc
}
