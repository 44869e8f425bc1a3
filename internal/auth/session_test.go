package auth_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/craftside/marketplace/internal/auth"
)

// resolveOnce runs the resolver against a single request and reports the
// outcome.
func resolveOnce(t *testing.T, codec *auth.Codec, token string) (*auth.Identity, bool) {
	t.Helper()

	resolver := auth.NewSessionResolver(codec, zap.NewNop())

	var identity *auth.Identity
	var ok bool
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		identity, ok = resolver.Resolve(c)
		return c.SendStatus(http.StatusOK)
	})

	req := sessionRequest(http.MethodGet, "/", token)
	_, err := app.Test(req)
	require.NoError(t, err)
	return identity, ok
}

func TestResolveValidCookie(t *testing.T) {
	codec := auth.NewCodec("resolver-secret", time.Hour)
	token, _, err := codec.Sign(42, "maya@atelier.dev")
	require.NoError(t, err)

	identity, ok := resolveOnce(t, codec, token)
	require.True(t, ok)
	assert.Equal(t, int64(42), identity.UserID)
	assert.Equal(t, "maya@atelier.dev", identity.Email)
}

func TestResolveMissingCookie(t *testing.T) {
	codec := auth.NewCodec("resolver-secret", time.Hour)

	identity, ok := resolveOnce(t, codec, "")
	assert.False(t, ok)
	assert.Nil(t, identity)
}

func TestResolveGarbageToken(t *testing.T) {
	codec := auth.NewCodec("resolver-secret", time.Hour)

	identity, ok := resolveOnce(t, codec, "definitely-not-a-jwt")
	assert.False(t, ok)
	assert.Nil(t, identity)
}

func TestSessionCookieAttributes(t *testing.T) {
	cookie := auth.SessionCookie("tok", auth.DefaultTokenTTL, false)

	assert.Equal(t, auth.CookieName, cookie.Name)
	assert.Equal(t, "tok", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 604800, cookie.MaxAge)
	assert.True(t, cookie.HTTPOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, fiber.CookieSameSiteLaxMode, cookie.SameSite)

	secure := auth.SessionCookie("tok", auth.DefaultTokenTTL, true)
	assert.True(t, secure.Secure)
}

func TestClearSessionCookie(t *testing.T) {
	cookie := auth.ClearSessionCookie(false)

	assert.Equal(t, auth.CookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.HTTPOnly)
	assert.Negative(t, cookie.MaxAge)
}
