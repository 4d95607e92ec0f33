package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RefreshTokenStore persists issued refresh tokens, one row per token.
// Rows are never deleted here; they are only marked revoked.
type RefreshTokenStore interface {
	GetByToken(ctx context.Context, token string) (RefreshToken, error)
	ListValidByUser(ctx context.Context, userID uuid.UUID) ([]RefreshToken, error)
	Save(ctx context.Context, token RefreshToken) error
	SaveAll(ctx context.Context, tokens []RefreshToken) error

	// InUserScope runs fn inside a unit of work serialized per user: two
	// concurrent calls for the same user id never interleave their reads
	// and writes. fn receives a store bound to that unit of work.
	InUserScope(ctx context.Context, userID uuid.UUID, fn func(ctx context.Context, store RefreshTokenStore) error) error
}

// RefreshToken is one issued refresh token. Token holds the encoded
// signed string exactly as handed to the client.
type RefreshToken struct {
	ID        uuid.UUID
	Token     string
	Kind      string
	ExpiresAt time.Time
	Revoked   bool
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
