//go:build unit

package originproxy_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gongsil-api/internal/infra/originproxy"
	"gongsil-api/internal/pkg/config"
	commonhttp "gongsil-api/tests/common/httptest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProxyForwardsRequest(t *testing.T) {
	var (
		gotMethod, gotPath, gotQuery, gotHeader, gotBody string
	)
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotHeader = r.Header.Get("X-Trace")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)

		w.Header().Set("Access-Control-Allow-Origin", "https://evil.example")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("X-Origin", "yes")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer origin.Close()

	proxy, err := originproxy.New(config.OriginConfig{URL: origin.URL}, http.DefaultTransport, discard())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/origin/api/spaces/1?page=2", strings.NewReader(`{"name":"a"}`))
	req.Header.Set("X-Trace", "abc")
	rec := httptest.NewRecorder()
	proxy.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Equal(t, "yes", rec.Header().Get("X-Origin"))
	commonhttp.AssertNoCORSFrom(t, rec.Header(), "")

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/spaces/1", gotPath)
	assert.Equal(t, "page=2", gotQuery)
	assert.Equal(t, "abc", gotHeader)
	assert.Equal(t, `{"name":"a"}`, gotBody)
}

func TestProxyKeepsOriginBasePath(t *testing.T) {
	var gotPath string
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
	}))
	defer origin.Close()

	proxy, err := originproxy.New(config.OriginConfig{URL: origin.URL + "/v1"}, http.DefaultTransport, discard())
	require.NoError(t, err)

	proxy.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/origin/spaces", nil))
	assert.Equal(t, "/v1/spaces", gotPath)
}

func TestProxyFailure(t *testing.T) {
	origin := httptest.NewServer(http.NotFoundHandler())
	url := origin.URL
	origin.Close()

	proxy, err := originproxy.New(config.OriginConfig{URL: url}, http.DefaultTransport, discard())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	proxy.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/origin/anything", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))
	assert.Contains(t, rec.Body.String(), "Proxy error")
}

func TestNewRejectsRelativeURL(t *testing.T) {
	_, err := originproxy.New(config.OriginConfig{URL: "origin.local"}, http.DefaultTransport, discard())
	assert.Error(t, err)
}
