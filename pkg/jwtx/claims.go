package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the lifetime of an access token when none is configured.
const DefaultAccessTokenTTL = 30 * time.Minute

// Claims are the access-token claims. The subject is the username.
type Claims struct {
	jwt.RegisteredClaims
}

// NewAccessClaims builds claims valid from now for at least ttl. NumericDates
// carry whole seconds, so iat and nbf round down and exp rounds up.
func NewAccessClaims(subject, issuer string, ttl time.Duration, now time.Time) Claims {
	now = now.UTC()
	exp := now.Add(ttl)
	if whole := exp.Truncate(time.Second); whole.Before(exp) {
		exp = whole.Add(time.Second)
	}
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        NewJTI(),
		},
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
