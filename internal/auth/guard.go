package auth

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/craftside/marketplace/pkg/util"
)

// RouteGuard gates page navigation under protected path prefixes. Requests
// without a valid session are redirected to the login page with the original
// path preserved in a `next` query parameter; everything else passes through
// untouched.
type RouteGuard struct {
	resolver  *SessionResolver
	prefixes  []string
	loginPath string
}

// NewRouteGuard constructs a guard for the given path prefixes.
func NewRouteGuard(resolver *SessionResolver, prefixes []string, loginPath string) *RouteGuard {
	if loginPath == "" {
		loginPath = "/login"
	}
	return &RouteGuard{resolver: resolver, prefixes: prefixes, loginPath: loginPath}
}

// Handle runs before any route handler. Protected handlers may assume every
// request that reaches them carried a valid session.
func (g *RouteGuard) Handle(c *fiber.Ctx) error {
	path := c.Path()
	if !g.isProtected(path) {
		return c.Next()
	}

	identity, ok := g.resolver.Resolve(c)
	if !ok {
		target := g.loginPath + "?next=" + url.QueryEscape(path)
		return c.Redirect(target, fiber.StatusFound)
	}

	StoreIdentity(c, identity)
	return c.Next()
}

func (g *RouteGuard) isProtected(path string) bool {
	for _, prefix := range g.prefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// RequireUser protects API routes outside the guard's page namespace.
// Missing or invalid sessions yield a 401 JSON error instead of a redirect.
func RequireUser(resolver *SessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := resolver.Resolve(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		StoreIdentity(c, identity)
		return c.Next()
	}
}
