package arithsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/arith/pkg/httpx"
)

// Error codes carried in the "error" field of every error body.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeMalformedRequest   = "malformed_request"
	ErrorCodeConflict           = "conflict"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeTokenExpired       = "token_expired"
	ErrorCodeMalformedToken     = "malformed_token"
	ErrorCodeUnknownUser        = "unknown_user"
	ErrorCodeDomainError        = "domain_error"
	ErrorCodeResultOutOfRange   = "result_out_of_range"
	ErrorCodeStorageUnavailable = "storage_unavailable"
	ErrorCodeRateLimitExceeded  = "rate_limit_exceeded"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeMethodNotAllowed   = "method_not_allowed"
	ErrorCodeServerError        = "server_error"
)

// APIError is an error response. The server writes it and the client parses
// it back, so both sides agree on codes and statuses.
type APIError struct {
	StatusCode  int    `json:"status_code"`
	Code        string `json:"error"`
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// Is matches on Code so callers can write errors.Is(err, arithsdk.ErrTokenExpired).
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.Code == e.Code
}

// WriteError renders e as the JSON error body.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteError(w, e.StatusCode, e.Code, e.Description)
}

// WithDescription returns a copy of e carrying desc.
func (e *APIError) WithDescription(desc string) *APIError {
	cp := *e
	cp.Description = desc
	return &cp
}

var (
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is missing required fields or has invalid values",
	}
	ErrMalformedRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeMalformedRequest,
		Description: "the request body could not be parsed",
	}
	ErrConflict = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeConflict,
		Description: "username or email already registered",
	}
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "incorrect username or password",
	}
	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "the access token is missing or invalid",
	}
	ErrTokenExpired = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeTokenExpired,
		Description: "the access token has expired",
	}
	ErrMalformedToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeMalformedToken,
		Description: "the access token is not a valid JWT",
	}
	ErrUnknownUser = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeUnknownUser,
		Description: "the token subject has no account",
	}
	ErrDomainError = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeDomainError,
		Description: "cannot take the square root of a negative number",
	}
	ErrResultOutOfRange = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeResultOutOfRange,
		Description: "operands or result are not finite numbers",
	}
	ErrStorageUnavailable = &APIError{
		StatusCode:  http.StatusServiceUnavailable,
		Code:        ErrorCodeStorageUnavailable,
		Description: "storage is temporarily unavailable",
	}
	ErrRateLimitExceeded = &APIError{
		StatusCode:  http.StatusTooManyRequests,
		Code:        ErrorCodeRateLimitExceeded,
		Description: "too many requests",
	}
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "no such endpoint",
	}
	ErrMethodNotAllowed = &APIError{
		StatusCode:  http.StatusMethodNotAllowed,
		Code:        ErrorCodeMethodNotAllowed,
		Description: "method not allowed for this endpoint",
	}
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// parseErrorResponse turns a non-2xx response into an *APIError. Bodies that
// are not error JSON fall back to a server_error carrying the status text.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp httpx.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
