package arithsdk

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/arith/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestAPIErrorRoundTrip(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ErrDomainError.WriteError(w)
	}))
	t.Cleanup(srv.Close)

	session := NewClient(srv.URL).NewSession("token", time.Now().Add(time.Minute))
	_, err := session.Sqrt(t.Context(), -1)

	require.ErrorIs(t, err, ErrDomainError)
	require.False(t, errors.Is(err, ErrConflict))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestNonJSONErrorFallsBackToServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	_, err := NewClient(srv.URL).GetLiveness(t.Context())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, ErrorCodeServerError, apiErr.Code)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}

func TestClientRequests(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("password") != "correct-horse" {
			ErrInvalidCredentials.WriteError(w)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, TokenResponse{
			AccessToken: "tok-" + r.PostForm.Get("username"),
			TokenType:   "bearer",
			ExpiresIn:   60,
			ExpiresAt:   time.Now().Add(time.Minute),
		})
	})
	mux.HandleFunc("POST /v1/add", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-alice", r.Header.Get("Authorization"))

		var req BinaryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		httpx.WriteJSON(w, http.StatusOK, OperationResponse{
			Operation: "add",
			Operands:  []float64{*req.Num1, *req.Num2},
			Result:    *req.Num1 + *req.Num2,
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL + "/")

	_, err := client.Login(t.Context(), "alice", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	session, err := client.Login(t.Context(), "alice", "correct-horse")
	require.NoError(t, err)
	require.Equal(t, "tok-alice", session.AccessToken())
	require.False(t, session.Expired())

	res, err := session.Add(t.Context(), 2, 3)
	require.NoError(t, err)
	require.Equal(t, 5.0, res.Result)
	require.Equal(t, []float64{2, 3}, res.Operands)
}
