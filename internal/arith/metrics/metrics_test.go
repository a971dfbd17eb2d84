package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalPath(t *testing.T) {
	require.Equal(t, "/v1/add", canonicalPath("/v1/add"))
	require.Equal(t, "/", canonicalPath("/"))
	require.Equal(t, "/swagger", canonicalPath("/swagger/index.html"))
	require.Equal(t, "other", canonicalPath("/v1/add/../../etc/passwd"))
	require.Equal(t, "other", canonicalPath("/random-1234"))
}

func scrape(t *testing.T) string {
	t.Helper()
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestInstrumentHandlerCountsRequests(t *testing.T) {
	h := InstrumentHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/v1/sqrt", nil))

	require.Contains(t, scrape(t), `arith_http_requests_total{method="POST",path="/v1/sqrt",status="400"}`)
}

func TestHandlerExposesBusinessCounters(t *testing.T) {
	RecordOperation("add", OutcomeOK)
	RecordRegistration(OutcomeOK)
	RecordLogin(OutcomeRejected)
	RecordTokenRejection("expired")
	RecordStoreRetry()

	body := scrape(t)
	for _, name := range []string{
		"arith_calc_operations_total",
		"arith_auth_registrations_total",
		"arith_auth_logins_total",
		"arith_auth_token_rejections_total",
		"arith_store_retries_total",
	} {
		require.True(t, strings.Contains(body, name), name)
	}
}
