package auth_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/craftside/marketplace/internal/auth"
	apperrors "github.com/craftside/marketplace/pkg/util"
)

func newGuardApp(codec *auth.Codec) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"error": domainErr.Message})
		},
	})

	resolver := auth.NewSessionResolver(codec, zap.NewNop())
	guard := auth.NewRouteGuard(resolver, []string{"/dashboard"}, "/login")
	app.Use(guard.Handle)

	dashboard := func(c *fiber.Ctx) error {
		identity, ok := auth.IdentityFromContext(c)
		if !ok {
			return apperrors.NewInternalError(nil)
		}
		return c.JSON(fiber.Map{"user_id": identity.UserID})
	}
	app.Get("/dashboard", dashboard)
	app.Get("/dashboard/*", dashboard)
	app.Get("/shop", func(c *fiber.Ctx) error {
		return c.SendString("open to all")
	})

	api := app.Group("/api", auth.RequireUser(resolver))
	api.Get("/cart", func(c *fiber.Ctx) error {
		identity, _ := auth.IdentityFromContext(c)
		return c.JSON(fiber.Map{"user_id": identity.UserID})
	})
	return app
}

func sessionRequest(method, target, token string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	}
	return req
}

func TestGuardRedirectsWithoutSession(t *testing.T) {
	codec := auth.NewCodec("guard-secret", time.Hour)
	app := newGuardApp(codec)

	resp, err := app.Test(sessionRequest(http.MethodGet, "/dashboard/anything", ""))
	require.NoError(t, err)

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?next=%2Fdashboard%2Fanything", resp.Header.Get("Location"))
}

func TestGuardAllowsValidSession(t *testing.T) {
	codec := auth.NewCodec("guard-secret", time.Hour)
	app := newGuardApp(codec)

	token, _, err := codec.Sign(42, "maya@atelier.dev")
	require.NoError(t, err)

	resp, err := app.Test(sessionRequest(http.MethodGet, "/dashboard/anything", token))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"user_id":42`)
}

func TestGuardRejectsExpiredSession(t *testing.T) {
	signer := auth.NewCodec("guard-secret", time.Millisecond)
	app := newGuardApp(auth.NewCodec("guard-secret", time.Hour))

	token, _, err := signer.Sign(42, "")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	resp, err := app.Test(sessionRequest(http.MethodGet, "/dashboard", token))
	require.NoError(t, err)

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?next=%2Fdashboard", resp.Header.Get("Location"))
}

func TestGuardRejectsForeignSignature(t *testing.T) {
	foreign := auth.NewCodec("other-secret", time.Hour)
	app := newGuardApp(auth.NewCodec("guard-secret", time.Hour))

	token, _, err := foreign.Sign(42, "")
	require.NoError(t, err)

	resp, err := app.Test(sessionRequest(http.MethodGet, "/dashboard", token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

func TestGuardIgnoresOpenPaths(t *testing.T) {
	app := newGuardApp(auth.NewCodec("guard-secret", time.Hour))

	resp, err := app.Test(sessionRequest(http.MethodGet, "/shop", ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireUserReturns401(t *testing.T) {
	codec := auth.NewCodec("guard-secret", time.Hour)
	app := newGuardApp(codec)

	resp, err := app.Test(sessionRequest(http.MethodGet, "/api/cart", ""))
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"error":"authentication required"}`, string(body))
}

func TestRequireUserAllowsValidSession(t *testing.T) {
	codec := auth.NewCodec("guard-secret", time.Hour)
	app := newGuardApp(codec)

	token, _, err := codec.Sign(7, "")
	require.NoError(t, err)

	resp, err := app.Test(sessionRequest(http.MethodGet, "/api/cart", token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
