//go:build unit || e2e

package httptest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertNoCORSFrom fails when any Access-Control-* header carries a value other
// than allowed. An empty allowed means no such header may be present.
func AssertNoCORSFrom(t *testing.T, h http.Header, allowed string) {
	t.Helper()
	for k, vs := range h {
		if !strings.HasPrefix(http.CanonicalHeaderKey(k), "Access-Control-") {
			continue
		}
		if allowed == "" {
			assert.Failf(t, "unexpected CORS header", "%s: %v", k, vs)
			continue
		}
		if k == "Access-Control-Allow-Origin" {
			assert.Equal(t, []string{allowed}, vs, "allow-origin must come from the service policy only")
		}
	}
}
