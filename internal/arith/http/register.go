package http

import (
	"net/http"

	"github.com/aussiebroadwan/arith/internal/arith/service"
	"github.com/aussiebroadwan/arith/pkg/arithsdk"
	"github.com/aussiebroadwan/arith/pkg/httpx"
	"github.com/aussiebroadwan/arith/pkg/slogx"
)

// RegisterHandler serves POST /v1/register.
type RegisterHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Register a user
//	@Description	Creates an account and returns an access token for it.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		arithsdk.RegisterRequest	true	"username, password, optional email"
//	@Success		201		{object}	arithsdk.RegisterResponse
//	@Failure		400		{object}	arithsdk.APIError	"malformed_request, invalid_request"
//	@Failure		409		{object}	arithsdk.APIError	"conflict"
//	@Failure		429		{object}	arithsdk.APIError	"rate_limit_exceeded"
//	@Router			/v1/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req arithsdk.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u, err := h.UserService.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	tok, err := h.TokenService.Issue(u.Username)
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to issue token after registration", "error", err)
		arithsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, arithsdk.RegisterResponse{
		Username:      u.Username,
		CreatedAt:     u.CreatedAt,
		TokenResponse: tokenResponse(tok),
	})
}
