package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/arith/pkg/arithsdk"
	"github.com/go-playground/validator/v10"
)

// maxBodyBytes caps request bodies; every request here is a handful of fields.
const maxBodyBytes = 64 << 10

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeBody reads a single JSON object into dst and runs its validate tags.
// On failure it writes the error response and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		arithsdk.ErrMalformedRequest.WithDescription(malformedReason(err)).WriteError(w)
		return false
	}
	if dec.More() {
		arithsdk.ErrMalformedRequest.WithDescription("body must contain a single JSON object").WriteError(w)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			arithsdk.ErrInvalidRequest.
				WithDescription(fmt.Sprintf("%s fails %q", strings.ToLower(fe.Field()), fe.Tag())).
				WriteError(w)
			return false
		}
		arithsdk.ErrInvalidRequest.WriteError(w)
		return false
	}
	return true
}

func malformedReason(err error) string {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		maxErr    *http.MaxBytesError
	)
	switch {
	case errors.Is(err, io.EOF):
		return "request body is empty"
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("invalid JSON at offset %d", syntaxErr.Offset)
	case errors.As(err, &typeErr):
		return fmt.Sprintf("field %q must be a %s", typeErr.Field, typeErr.Type)
	case errors.As(err, &maxErr):
		return "request body too large"
	default:
		return "request body could not be parsed"
	}
}
