package model

import "time"

// Token kind claim values. A token of one kind is never accepted where
// the other is required.
const (
	TokenKindAccess  = "access_token"
	TokenKindRefresh = "refresh_token"
)

// TokenClaims is the decoded payload of a signed token.
type TokenClaims struct {
	Subject   string
	Kind      string
	ID        string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenManager encodes and decodes signed access/refresh tokens.
// Parse methods verify the signature, expiry and kind claim.
type TokenManager interface {
	GenerateAccessToken(subject string) (string, error)
	GenerateRefreshToken(subject string) (token string, claims TokenClaims, err error)
	ParseAccessToken(token string) (TokenClaims, error)
	ParseRefreshToken(token string) (TokenClaims, error)
}

// PasswordHasher is the opaque password-digest capability consumed by
// credential validation. Verify reports a match without exposing why a
// comparison failed.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}
