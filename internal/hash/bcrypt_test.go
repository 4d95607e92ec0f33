package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashAndVerify(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	digest, err := h.Hash("password1")
	require.NoError(t, err)
	require.NotEqual(t, "password1", digest)

	assert.True(t, h.Verify("password1", digest))
	assert.False(t, h.Verify("password2", digest))
	assert.False(t, h.Verify("password1", "not a digest"))
}

func TestBcrypt_DistinctDigests(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	a, err := h.Hash("password1")
	require.NoError(t, err)
	b, err := h.Hash("password1")
	require.NoError(t, err)

	// bcrypt salts every digest
	assert.NotEqual(t, a, b)
}

func TestNewBcrypt_CostFallback(t *testing.T) {
	h := NewBcrypt(1000)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}
