package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftside/marketplace/internal/auth"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	digest, err := auth.HashPassword("correct-horse-battery", 4)
	require.NoError(t, err)
	require.NotEmpty(t, digest)

	assert.True(t, auth.VerifyPassword("correct-horse-battery", digest))
	assert.False(t, auth.VerifyPassword("wrong-horse-battery", digest))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := auth.HashPassword("same-input", 4)
	require.NoError(t, err)
	second, err := auth.HashPassword("same-input", 4)
	require.NoError(t, err)

	// random salt makes the output non-deterministic
	assert.NotEqual(t, first, second)
	assert.True(t, auth.VerifyPassword("same-input", first))
	assert.True(t, auth.VerifyPassword("same-input", second))
}

func TestVerifyPasswordMalformedDigest(t *testing.T) {
	assert.False(t, auth.VerifyPassword("anything", "not-a-bcrypt-digest"))
	assert.False(t, auth.VerifyPassword("anything", ""))
}
