package domain

import "time"

// TokenTypeBearer is the only token type issued.
const TokenTypeBearer = "bearer"

// IssuedToken is what the token endpoint returns. Tokens are never stored.
type IssuedToken struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"` // seconds until expiry
	ExpiresAt   time.Time `json:"expires_at"`
}

// Identity is the verified caller extracted from a bearer token.
type Identity struct {
	Username  string
	ExpiresAt time.Time
}
