package http

import (
	"encoding/json"
	"mime"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/arith/internal/arith/domain"
	"github.com/aussiebroadwan/arith/internal/arith/service"
	"github.com/aussiebroadwan/arith/pkg/arithsdk"
	"github.com/aussiebroadwan/arith/pkg/httpx"
	"github.com/aussiebroadwan/arith/pkg/slogx"
)

// TokenHandler serves POST /v1/token. It takes the credentials either as an
// OAuth2-style form or as a JSON object.
type TokenHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Issue an access token
//	@Description	Exchanges a username and password for a bearer token.
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded,json
//	@Produce		json
//	@Param			username	formData	string	true	"Username"
//	@Param			password	formData	string	true	"Password"
//	@Success		200			{object}	arithsdk.TokenResponse
//	@Failure		400			{object}	arithsdk.APIError	"malformed_request, invalid_request"
//	@Failure		401			{object}	arithsdk.APIError	"invalid_credentials"
//	@Failure		429			{object}	arithsdk.APIError	"rate_limit_exceeded"
//	@Header			200			{string}	Cache-Control	"no-store"
//	@Router			/v1/token [post].
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	username, password, ok := readCredentials(w, r)
	if !ok {
		return
	}
	if username == "" || password == "" {
		arithsdk.ErrInvalidRequest.WithDescription("username and password are required").WriteError(w)
		return
	}

	u, err := h.UserService.Authenticate(r.Context(), username, password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	tok, err := h.TokenService.Issue(u.Username)
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to issue token", "error", err)
		arithsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tokenResponse(tok))
}

func readCredentials(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "application/json" {
		var req arithsdk.LoginRequest
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err := dec.Decode(&req); err != nil {
			arithsdk.ErrMalformedRequest.WithDescription(malformedReason(err)).WriteError(w)
			return "", "", false
		}
		return strings.TrimSpace(req.Username), req.Password, true
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		arithsdk.ErrMalformedRequest.WithDescription("invalid form body").WriteError(w)
		return "", "", false
	}
	return strings.TrimSpace(r.PostForm.Get("username")), r.PostForm.Get("password"), true
}

func tokenResponse(tok domain.IssuedToken) arithsdk.TokenResponse {
	return arithsdk.TokenResponse{
		AccessToken: tok.AccessToken,
		TokenType:   tok.TokenType,
		ExpiresIn:   tok.ExpiresIn,
		ExpiresAt:   tok.ExpiresAt,
	}
}
