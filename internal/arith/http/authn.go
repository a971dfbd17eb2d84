package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/arith/internal/arith/metrics"
	"github.com/aussiebroadwan/arith/internal/arith/service"
	"github.com/aussiebroadwan/arith/pkg/arithsdk"
	"github.com/aussiebroadwan/arith/pkg/httpx"
	"github.com/aussiebroadwan/arith/pkg/slogx"
)

// authnMiddleware verifies the bearer token and stores the caller's identity
// in the request context. Requests without a valid token never reach next.
func authnMiddleware(tokens *service.TokenService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := httpx.BearerToken(r)
			if !ok {
				metrics.RecordTokenRejection("missing")
				writeTokenError(w, arithsdk.ErrInvalidToken.WithDescription("missing bearer token"))
				return
			}

			ident, err := tokens.Verify(raw)
			if err != nil {
				apiErr, reason := classifyTokenError(err)
				metrics.RecordTokenRejection(reason)
				slogx.FromContext(r.Context()).Info("bearer token rejected",
					slog.String("reason", reason),
					slog.Any("error", err),
				)
				writeTokenError(w, apiErr)
				return
			}

			ctx := withIdentity(r.Context(), ident)
			ctx = httpx.WithSubject(ctx, ident.Username)
			ctx = slogx.WithAttrs(ctx, slog.String("username", ident.Username))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func classifyTokenError(err error) (*arithsdk.APIError, string) {
	switch {
	case errors.Is(err, service.ErrTokenExpired):
		return arithsdk.ErrTokenExpired, "expired"
	case errors.Is(err, service.ErrTokenMalformed):
		return arithsdk.ErrMalformedToken, "malformed"
	case errors.Is(err, service.ErrTokenInvalidSignature):
		return arithsdk.ErrInvalidToken.WithDescription("invalid token signature"), "signature"
	default:
		return arithsdk.ErrInvalidToken, "invalid"
	}
}

func writeTokenError(w http.ResponseWriter, e *arithsdk.APIError) {
	httpx.WriteBearerError(w, e.Code, e.Description)
}
