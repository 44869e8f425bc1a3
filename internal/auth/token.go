package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the session token lifetime: expiry is the only
// lifecycle bound, there is no revocation list.
const DefaultTokenTTL = 7 * 24 * time.Hour

// Verification failure kinds. Callers outside this package should collapse
// all three to "unauthenticated"; they exist so logs can tell tampering
// apart from routine expiry.
var (
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenInvalidSignature = errors.New("token signature invalid")
	ErrTokenMalformed        = errors.New("token malformed")
)

// SessionClaims is the payload carried by a session token.
type SessionClaims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens using an HMAC-SHA256 secret
// shared by nobody but this process. It is safe for concurrent use.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec builds a codec. A non-positive ttl falls back to DefaultTokenTTL.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Sign mints a token for the subject. Issued-at is the current UTC time and
// expiry is issued-at plus the configured TTL.
func (tc *Codec) Sign(userID int64, email string) (string, time.Time, error) {
	if userID == 0 {
		return "", time.Time{}, errors.New("subject identifier required")
	}

	issuedAt := tc.now().UTC()
	expiresAt := issuedAt.Add(tc.ttl)
	claims := &SessionClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tc.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify parses and validates a token. Expiry is checked against wall-clock
// UTC with no leeway window; skew between signer and verifier is not
// compensated.
func (tc *Codec) Verify(tokenStr string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrTokenInvalidSignature
		}
		return tc.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return tc.now().UTC() }))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenInvalidSignature
		default:
			return nil, ErrTokenMalformed
		}
	}

	if !parsed.Valid || claims.UserID == 0 {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}

// TTL exposes the configured token lifetime for cookie max-age alignment.
func (tc *Codec) TTL() time.Duration {
	return tc.ttl
}
