package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/arith/internal/arith/calc"
	"github.com/aussiebroadwan/arith/internal/arith/service"
	"github.com/aussiebroadwan/arith/pkg/arithsdk"
	"github.com/aussiebroadwan/arith/pkg/slogx"
)

// writeServiceError maps service and engine errors onto API errors. Anything
// unrecognised is logged and reported as server_error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		arithsdk.ErrInvalidRequest.WithDescription(describe(err, service.ErrInvalidInput)).WriteError(w)
	case errors.Is(err, service.ErrConflict):
		arithsdk.ErrConflict.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		arithsdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrUnknownUser):
		arithsdk.ErrUnknownUser.WriteError(w)
	case errors.Is(err, calc.ErrDomain):
		arithsdk.ErrDomainError.WriteError(w)
	case errors.Is(err, calc.ErrNotFinite):
		arithsdk.ErrResultOutOfRange.WriteError(w)
	case errors.Is(err, calc.ErrArity), errors.Is(err, calc.ErrUnknownKind):
		arithsdk.ErrInvalidRequest.WriteError(w)
	case errors.Is(err, service.ErrStorageUnavailable):
		slogx.FromContext(r.Context()).Error("storage unavailable", slog.Any("error", err))
		w.Header().Set("Retry-After", "1")
		arithsdk.ErrStorageUnavailable.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("unhandled service error", slog.Any("error", err))
		arithsdk.ErrServerError.WriteError(w)
	}
}

// describe strips the sentinel prefix from err's message.
func describe(err, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error())
	msg = strings.TrimPrefix(msg, ": ")
	if msg == "" {
		return arithsdk.ErrInvalidRequest.Description
	}
	return msg
}
