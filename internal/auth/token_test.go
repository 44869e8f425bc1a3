package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftside/marketplace/internal/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	codec := auth.NewCodec("test-secret", 0)

	token, exp, err := codec.Sign(42, "maya@atelier.dev")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), exp, 5*time.Second)

	claims, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "maya@atelier.dev", claims.Email)
	assert.Equal(t, exp.Unix(), claims.ExpiresAt.Unix())
}

func TestTokenOptionalEmail(t *testing.T) {
	codec := auth.NewCodec("test-secret", time.Hour)

	token, _, err := codec.Sign(7, "")
	require.NoError(t, err)

	claims, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Empty(t, claims.Email)
}

func TestTokenWrongSecret(t *testing.T) {
	signer := auth.NewCodec("secret-one", time.Hour)
	verifier := auth.NewCodec("secret-two", time.Hour)

	token, _, err := signer.Sign(42, "")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, auth.ErrTokenInvalidSignature)
}

func TestTokenExpired(t *testing.T) {
	codec := auth.NewCodec("test-secret", time.Millisecond)

	token, _, err := codec.Sign(42, "")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = codec.Verify(token)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestTokenMalformed(t *testing.T) {
	codec := auth.NewCodec("test-secret", time.Hour)

	for _, tokenStr := range []string{"", "garbage", "a.b.c"} {
		_, err := codec.Verify(tokenStr)
		assert.ErrorIs(t, err, auth.ErrTokenMalformed, "token %q", tokenStr)
	}
}

func TestSignRequiresSubject(t *testing.T) {
	codec := auth.NewCodec("test-secret", time.Hour)

	_, _, err := codec.Sign(0, "nobody@atelier.dev")
	assert.Error(t, err)
}
