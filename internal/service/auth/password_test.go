package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := NewBcryptHasher()

	hashed, err := hasher.Hash("password123")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "password123", hashed, "the hash must not be the plaintext")

	assert.NoError(t, hasher.Compare(hashed, "password123"))
	assert.Error(t, hasher.Compare(hashed, "wrong-password"))
}

func TestBcryptHasherSaltsEachHash(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("password123")
	require.NoError(t, err)
	second, err := hasher.Hash("password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "bcrypt salts every hash")
}
