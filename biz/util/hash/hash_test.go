package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptWithCost(bcrypt.MinCost)

	hashed, err := h.Hash("secret1")
	assert.NoError(t, err)
	assert.NotEmpty(t, hashed)
	assert.NotEqual(t, "secret1", hashed)

	assert.True(t, h.Compare("secret1", hashed))
	assert.False(t, h.Compare("secret2", hashed))
	assert.False(t, h.Compare("", hashed))
}

func TestBcryptHasher_SaltedPerHash(t *testing.T) {
	h := NewBcryptWithCost(bcrypt.MinCost)

	h1, err := h.Hash("secret1")
	assert.NoError(t, err)
	h2, err := h.Hash("secret1")
	assert.NoError(t, err)

	// bcrypt embeds a fresh salt, so two hashes of one input differ.
	assert.NotEqual(t, h1, h2)
	assert.True(t, h.Compare("secret1", h1))
	assert.True(t, h.Compare("secret1", h2))
}

func TestNewBcryptWithCost_OutOfRange(t *testing.T) {
	h := NewBcryptWithCost(100)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}
