package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/arith/internal/arith/domain"
	"github.com/aussiebroadwan/arith/pkg/jwtx"
)

// TokenService issues and verifies stateless HS256 access tokens. Tokens are
// never stored, so expiry is the only way a token stops being valid.
type TokenService struct {
	signer   jwtx.Signer
	verifier jwtx.Verifier
	issuer   string
	ttl      time.Duration
	now      func() time.Time
}

// NewTokenService builds a TokenService signing with secret. A nil now uses time.Now.
func NewTokenService(secret []byte, issuer string, ttl time.Duration, now func() time.Time) (*TokenService, error) {
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}
	if now == nil {
		now = time.Now
	}

	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return nil, err
	}
	verifier, err := jwtx.NewVerifierHS256(secret, jwtx.VerifyOptions{Issuer: issuer, Now: now})
	if err != nil {
		return nil, err
	}

	return &TokenService{signer: signer, verifier: verifier, issuer: issuer, ttl: ttl, now: now}, nil
}

// TTL returns the lifetime of issued tokens.
func (s *TokenService) TTL() time.Duration { return s.ttl }

// Issue mints a token whose subject is username.
func (s *TokenService) Issue(username string) (domain.IssuedToken, error) {
	claims := jwtx.NewAccessClaims(username, s.issuer, s.ttl, s.now())
	raw, err := s.signer.Sign(claims)
	if err != nil {
		return domain.IssuedToken{}, fmt.Errorf("sign access token: %w", err)
	}

	return domain.IssuedToken{
		AccessToken: raw,
		TokenType:   domain.TokenTypeBearer,
		ExpiresIn:   int64(s.ttl.Seconds()),
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

// Verify checks raw and returns the identity it carries.
func (s *TokenService) Verify(raw string) (domain.Identity, error) {
	claims, err := s.verifier.Verify(raw)
	if err != nil {
		switch {
		case errors.Is(err, jwtx.ErrMalformed):
			return domain.Identity{}, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
		case errors.Is(err, jwtx.ErrInvalidSig):
			return domain.Identity{}, fmt.Errorf("%w: %w", ErrTokenInvalidSignature, err)
		case errors.Is(err, jwtx.ErrExpired):
			return domain.Identity{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		default:
			return domain.Identity{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
		}
	}

	return domain.Identity{
		Username:  claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
