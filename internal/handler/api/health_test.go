//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"gongsil-api/internal/handler/api"
	"gongsil-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeGate struct {
	resolved bool
	probeErr error
}

func (g *fakeGate) Resolved() (bool, error)       { return g.resolved, nil }
func (g *fakeGate) Probe(_ context.Context) error { return g.probeErr }

func newHealthRouter(gate api.ReadinessGate) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := api.NewHealthHandler(gate)
	r.GET("/health", h.Health)
	r.GET("/readyz", h.Ready)
	return r
}

func TestHealth(t *testing.T) {
	rec := httptest.PerformRequest(t, newHealthRouter(&fakeGate{}), http.MethodGet, "/health", nil)

	var body map[string]string
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestReady(t *testing.T) {
	tests := []struct {
		name   string
		gate   *fakeGate
		code   int
		status string
	}{
		{name: "startup checks still running", gate: &fakeGate{}, code: http.StatusServiceUnavailable, status: "starting"},
		{name: "origin answers", gate: &fakeGate{resolved: true}, code: http.StatusOK, status: "ready"},
		{name: "origin went away after startup", gate: &fakeGate{resolved: true, probeErr: errors.New("origin: connection refused")}, code: http.StatusServiceUnavailable, status: "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, newHealthRouter(tt.gate), http.MethodGet, "/readyz", nil)

			var body map[string]string
			assert.Equal(t, tt.code, rec.Code)
			assert.NoError(t, httptest.DecodeResponseBody(t, rec.Body, &body))
			assert.Equal(t, tt.status, body["status"])
		})
	}
}
