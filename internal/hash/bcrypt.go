// Package hash provides the password-digest capability consumed by
// credential validation.
package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt implements model.PasswordHasher with bcrypt digests.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a hasher with the given cost. Costs outside the
// bcrypt range fall back to the default cost.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash produces a digest of the plaintext password.
func (b *Bcrypt) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether the plaintext matches the digest.
func (b *Bcrypt) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
