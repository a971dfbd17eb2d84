package http

import (
	"net/http"

	"github.com/aussiebroadwan/arith/internal/arith/calc"
	"github.com/aussiebroadwan/arith/internal/arith/service"
	"github.com/aussiebroadwan/arith/pkg/arithsdk"
	"github.com/aussiebroadwan/arith/pkg/httpx"
)

// CalcHandler serves the arithmetic endpoints for one operation kind.
type CalcHandler struct {
	Calculator *service.CalculatorService
	Kind       calc.Kind
}

// HandleBinary godoc
//
//	@Summary		Add, subtract or multiply
//	@Description	Takes num1 and num2. Each successful call is appended to the caller's history.
//	@Tags			Arithmetic
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			operation	path		string					true	"Operation"	Enums(add, subtract, multiply)
//	@Param			body		body		arithsdk.BinaryRequest	true	"Operands"
//	@Success		200			{object}	arithsdk.OperationResponse
//	@Failure		400			{object}	arithsdk.APIError	"malformed_request, invalid_request, result_out_of_range"
//	@Failure		401			{object}	arithsdk.APIError	"invalid_token, token_expired, malformed_token, unknown_user"
//	@Failure		503			{object}	arithsdk.APIError	"storage_unavailable"
//	@Router			/v1/{operation} [post].
func (h *CalcHandler) HandleBinary(w http.ResponseWriter, r *http.Request) {
	var req arithsdk.BinaryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.compute(w, r, *req.Num1, *req.Num2)
}

// HandleSqrt godoc
//
//	@Summary		Square root
//	@Description	Negative input is rejected with domain_error and nothing is recorded.
//	@Tags			Arithmetic
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		arithsdk.UnaryRequest	true	"Operand"
//	@Success		200		{object}	arithsdk.OperationResponse
//	@Failure		400		{object}	arithsdk.APIError	"malformed_request, invalid_request, domain_error"
//	@Failure		401		{object}	arithsdk.APIError	"invalid_token, token_expired, malformed_token, unknown_user"
//	@Failure		503		{object}	arithsdk.APIError	"storage_unavailable"
//	@Router			/v1/sqrt [post].
func (h *CalcHandler) HandleSqrt(w http.ResponseWriter, r *http.Request) {
	var req arithsdk.UnaryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.compute(w, r, *req.Number)
}

func (h *CalcHandler) compute(w http.ResponseWriter, r *http.Request, operands ...float64) {
	ident, ok := identityFromContext(r.Context())
	if !ok {
		writeTokenError(w, arithsdk.ErrInvalidToken)
		return
	}

	rec, err := h.Calculator.Compute(r.Context(), ident, h.Kind, operands...)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, arithsdk.OperationResponse{
		Operation: rec.Kind.String(),
		Operands:  rec.Operands,
		Result:    rec.Result,
	})
}
