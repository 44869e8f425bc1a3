package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "token"

const identityKey = "session_identity"

// Identity is the authenticated caller resolved from a session token.
// It carries only token claims; persisted user attributes require a
// separate repository fetch by UserID.
type Identity struct {
	UserID int64
	Email  string
}

// SessionResolver turns an inbound request's cookie into an Identity.
// Absence of a cookie, a bad signature, a malformed token, and expiry all
// collapse to "no identity"; resolution never fails hard.
type SessionResolver struct {
	codec  *Codec
	logger *zap.Logger
}

// NewSessionResolver constructs a resolver. Logger may be nil.
func NewSessionResolver(codec *Codec, logger *zap.Logger) *SessionResolver {
	return &SessionResolver{codec: codec, logger: logger}
}

// Resolve validates the session cookie on the request. The failure kind is
// logged at debug level so expiry can be told apart from tampering, but the
// caller only sees presence or absence of an identity.
func (r *SessionResolver) Resolve(c *fiber.Ctx) (*Identity, bool) {
	tokenStr := c.Cookies(CookieName)
	if tokenStr == "" {
		return nil, false
	}

	claims, err := r.codec.Verify(tokenStr)
	if err != nil {
		if r.logger != nil {
			r.logger.Debug("session token rejected",
				zap.String("path", c.Path()),
				zap.Bool("expired", errors.Is(err, ErrTokenExpired)),
				zap.Bool("tampered", errors.Is(err, ErrTokenInvalidSignature)))
		}
		return nil, false
	}
	return &Identity{UserID: claims.UserID, Email: claims.Email}, true
}

// StoreIdentity attaches the identity to the request for downstream handlers.
func StoreIdentity(c *fiber.Ctx, identity *Identity) {
	c.Locals(identityKey, identity)
}

// IdentityFromContext retrieves the authenticated caller, if any.
func IdentityFromContext(c *fiber.Ctx) (*Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*Identity)
	return identity, ok
}

// SessionCookie builds the cookie transporting a freshly minted token.
// HTTP-only and SameSite=Lax always; Secure only when serving over TLS in
// production.
func SessionCookie(token string, ttl time.Duration, secure bool) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

// ClearSessionCookie expires the session cookie client-side. Tokens stay
// valid until natural expiry; logout only drops the transport.
func ClearSessionCookie(secure bool) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}
