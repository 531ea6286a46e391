package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narraforge/narraforge/pkg/services"
)

func TestHealthHandler(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, healthStatusHealthy, resp.Status)
	assert.NotEmpty(t, resp.Version)
	require.Contains(t, resp.Checks, "database")
	assert.Equal(t, healthStatusHealthy, resp.Checks["database"].Status)
	// No worker pool attached in handler tests
	assert.NotContains(t, resp.Checks, "worker_pool")
}

func TestSecurityHeaders(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/health", nil)

	h := rec.Header()
	assert.Equal(t, "DENY", h.Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", h.Get("Referrer-Policy"))
	assert.NotEmpty(t, h.Get("Permissions-Policy"))
}

func TestSystemWarningsHandler(t *testing.T) {
	s, _ := newTestServer(t)

	t.Run("no warnings service attached", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/system/warnings", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp SystemWarningsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.Warnings)
	})

	t.Run("reports active warnings", func(t *testing.T) {
		ws := services.NewSystemWarningsService()
		ws.AddWarning(services.WarningCategoryProviderHealth,
			"provider unhealthy", "consecutive failures opened the breaker", "openai-mini")
		s.SetWarningsService(ws)

		rec := doRequest(t, s, http.MethodGet, "/api/v1/system/warnings", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp SystemWarningsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Warnings, 1)
		assert.Equal(t, services.WarningCategoryProviderHealth, resp.Warnings[0].Category)
		assert.Equal(t, "openai-mini", resp.Warnings[0].ProviderID)
	})
}

func TestWSHandler_NoConnectionManager(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/ws", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
