package arithsdk

import (
	"context"
	"net/http"
	"time"
)

// Session makes authenticated calls with one access token. Tokens cannot be
// refreshed; once expired every call fails with ErrTokenExpired and the caller
// must Login again.
type Session struct {
	client      *Client
	accessToken string
	expiresAt   time.Time
}

// NewSession wraps an existing access token.
func (c *Client) NewSession(accessToken string, expiresAt time.Time) *Session {
	return &Session{client: c, accessToken: accessToken, expiresAt: expiresAt}
}

func (s *Session) AccessToken() string { return s.accessToken }

func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

// Expired reports whether the token's expiry has passed on the local clock.
func (s *Session) Expired() bool {
	return !s.expiresAt.IsZero() && time.Now().After(s.expiresAt)
}

func (s *Session) Add(ctx context.Context, a, b float64) (*OperationResponse, error) {
	return s.binary(ctx, "/v1/add", a, b)
}

func (s *Session) Subtract(ctx context.Context, a, b float64) (*OperationResponse, error) {
	return s.binary(ctx, "/v1/subtract", a, b)
}

func (s *Session) Multiply(ctx context.Context, a, b float64) (*OperationResponse, error) {
	return s.binary(ctx, "/v1/multiply", a, b)
}

// Sqrt returns ErrDomainError for negative input.
func (s *Session) Sqrt(ctx context.Context, x float64) (*OperationResponse, error) {
	var out OperationResponse
	if err := s.client.postJSON(ctx, "/v1/sqrt", s.accessToken, UnaryRequest{Number: &x}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) binary(ctx context.Context, path string, a, b float64) (*OperationResponse, error) {
	var out OperationResponse
	if err := s.client.postJSON(ctx, path, s.accessToken, BinaryRequest{Num1: &a, Num2: &b}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// History returns the caller's operations oldest first.
func (s *Session) History(ctx context.Context) (*HistoryResponse, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, "/v1/history", nil, nil, s.accessToken)
	if err != nil {
		return nil, err
	}

	var out HistoryResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Hello calls the authenticated root endpoint.
func (s *Session) Hello(ctx context.Context) (map[string]string, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, "/", nil, nil, s.accessToken)
	if err != nil {
		return nil, err
	}

	var out map[string]string
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}
