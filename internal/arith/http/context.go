package http

import (
	"context"

	"github.com/aussiebroadwan/arith/internal/arith/domain"
)

type identityKey struct{}

func withIdentity(ctx context.Context, ident domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, ident)
}

// identityFromContext returns the caller set by the authn middleware.
func identityFromContext(ctx context.Context) (domain.Identity, bool) {
	ident, ok := ctx.Value(identityKey{}).(domain.Identity)
	return ident, ok && ident.Username != ""
}
