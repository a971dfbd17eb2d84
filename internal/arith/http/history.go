package http

import (
	"net/http"

	"github.com/aussiebroadwan/arith/internal/arith/service"
	"github.com/aussiebroadwan/arith/pkg/arithsdk"
	"github.com/aussiebroadwan/arith/pkg/httpx"
)

type HistoryHandler struct {
	History *service.HistoryService
}

// ServeHTTP godoc
//
//	@Summary		Operation history
//	@Description	Lists the caller's own operations, oldest first.
//	@Tags			Arithmetic
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	arithsdk.HistoryResponse
//	@Failure		401	{object}	arithsdk.APIError	"invalid_token, token_expired, malformed_token"
//	@Failure		503	{object}	arithsdk.APIError	"storage_unavailable"
//	@Router			/v1/history [get].
func (h *HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromContext(r.Context())
	if !ok {
		writeTokenError(w, arithsdk.ErrInvalidToken)
		return
	}

	recs, err := h.History.ListFor(r.Context(), ident.Username)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := arithsdk.HistoryResponse{Operations: make([]arithsdk.HistoryEntry, 0, len(recs))}
	for _, rec := range recs {
		out.Operations = append(out.Operations, arithsdk.HistoryEntry{
			ID:        rec.ID,
			Operation: rec.Kind.String(),
			Operands:  rec.Operands,
			Result:    rec.Result,
			Timestamp: rec.Timestamp,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
