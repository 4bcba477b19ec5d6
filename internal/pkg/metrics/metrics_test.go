//go:build unit

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gongsil-api/internal/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, svc *metrics.Service) string {
	t.Helper()
	rec := httptest.NewRecorder()
	svc.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestService(t *testing.T) {
	svc := metrics.NewService()
	svc.ObserveHTTPRequest(http.MethodGet, "/local-search", http.StatusOK, 10*time.Millisecond)
	svc.RecordCacheLookup(true, time.Millisecond)
	svc.RecordCacheLookup(false, time.Millisecond)
	svc.RecordRateLimited("/local-search")

	body := scrape(t, svc)
	assert.Contains(t, body, `http_requests_total{method="GET",path="/local-search",status="200"} 1`)
	assert.Contains(t, body, `cache_lookups_total{result="hit"} 1`)
	assert.Contains(t, body, `cache_lookups_total{result="miss"} 1`)
	assert.Contains(t, body, `rate_limited_requests_total{path="/local-search"} 1`)
}

func TestInstrumentTransport(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer upstream.Close()

	svc := metrics.NewService()
	client := &http.Client{Transport: svc.InstrumentTransport(http.DefaultTransport)}
	res, err := client.Get(upstream.URL)
	require.NoError(t, err)
	res.Body.Close()

	assert.Contains(t, scrape(t, svc), `status="418"`)
}

func TestNilService(t *testing.T) {
	var svc *metrics.Service
	assert.NotPanics(t, func() {
		svc.ObserveHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
		svc.RecordCacheLookup(true, time.Millisecond)
		svc.RecordRateLimited("/")
	})

	rec := httptest.NewRecorder()
	svc.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
