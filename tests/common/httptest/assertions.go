//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ErrorEnvelope mirrors httperr.Response as clients see it.
type ErrorEnvelope struct {
	Error struct {
		Message   string `json:"message"`
		RequestID string `json:"requestId"`
	} `json:"error"`
	Detail any `json:"detail"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if targetStruct == nil || w.Code < 200 || w.Code >= 300 {
		return
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), targetStruct), "decode success body: %s", w.Body.String())
}

// AssertErrorResponse checks status and that the envelope message contains
// expectedErrorMsg (skipped when empty), and returns the decoded envelope.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) ErrorEnvelope {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var env ErrorEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "decode error envelope: %s", w.Body.String())

	if expectedErrorMsg != "" {
		assert.Contains(t, env.Error.Message, expectedErrorMsg)
	}
	return env
}

// AssertLocationError checks the flat {message, error} body the search proxies return.
func AssertLocationError(t *testing.T, w *httptest.ResponseRecorder, expectedMsg, errContains string) {
	t.Helper()

	assert.Equal(t, 500, w.Code, "unexpected status, body: %s", w.Body.String())

	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "decode location error: %s", w.Body.String())
	assert.Equal(t, expectedMsg, body.Message)
	assert.Contains(t, body.Error, errContains)
}
