package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"courses-backend/internal/config"
	"courses-backend/internal/db"
	"courses-backend/internal/validation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func newDegradedServer() http.Handler {
	return newTestServer(db.Disconnected())
}

func newTestServer(store *db.Handle) http.Handler {
	cfg := &config.Config{
		FrontendOrigins:    []string{"*"},
		RateLimitContact:   5,
		RateLimitSubscribe: 5,
		RateLimitWindowSec: 60,
		CacheTTLSeconds:    60,
		Timezone:           time.UTC,
	}
	s := &Server{
		Cfg:      cfg,
		Store:    store,
		Val:      validation.New(),
		Log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Gatherer: prometheus.NewRegistry(),
	}
	return s.Routes()
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRootLiveness(t *testing.T) {
	w := get(newDegradedServer(), "/")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"Programming Courses API is running"}`, w.Body.String())
}

func TestDegradedModeListsAreEmpty(t *testing.T) {
	router := newDegradedServer()

	for _, path := range []string{"/api/categories", "/api/staff"} {
		w := get(router, path)
		require.Equal(t, http.StatusOK, w.Code, path)
		require.JSONEq(t, `{"items":[]}`, w.Body.String(), path)
	}

	require.Equal(t, http.StatusNotFound, get(router, "/api/categories/robotics").Code)
}

func TestDegradedModeWritesFail(t *testing.T) {
	router := newDegradedServer()

	req := httptest.NewRequest(http.MethodPost, "/api/subscribe", strings.NewReader(`{"email":"a@example.com"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"Al","email":"a@example.com","message":"1234567890"}`))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDiagnosticsWithoutDatabase(t *testing.T) {
	w := get(newDegradedServer(), "/test")
	require.Equal(t, http.StatusOK, w.Code)

	var resp DiagnosticsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "✅ Running", resp.Backend)
	require.Equal(t, "❌ Not Available", resp.Database)
	require.Equal(t, "Not Connected", resp.ConnectionStatus)
	require.Nil(t, resp.DatabaseURL)
	require.Nil(t, resp.DatabaseName)
	require.Empty(t, resp.Collections)
}

func TestAdminRoutesRequireConfiguredAuth(t *testing.T) {
	router := newDegradedServer()
	require.Equal(t, http.StatusServiceUnavailable, get(router, "/api/admin/contacts").Code)
	require.Equal(t, http.StatusServiceUnavailable, get(router, "/api/admin/subscriptions").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	w := get(newDegradedServer(), "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDHeader(t *testing.T) {
	w := get(newDegradedServer(), "/")
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestUnreachableDatabaseFailsRequestsInsteadOfDegrading(t *testing.T) {
	store, err := db.Connect(context.Background(),
		"mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200&connectTimeoutMS=200", "courses")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Disconnect(context.Background()) })
	router := newTestServer(store)

	for _, path := range []string{"/api/categories", "/api/staff"} {
		w := get(router, path)
		require.Equal(t, http.StatusInternalServerError, w.Code, path)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/subscribe", strings.NewReader(`{"email":"ada@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotContains(t, w.Body.String(), "Database not available")

	w = get(router, "/test")
	require.Equal(t, http.StatusOK, w.Code)
	var body DiagnosticsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Connected", body.ConnectionStatus)
	require.True(t, strings.HasPrefix(body.Database, "⚠️  Connected but Error: "), body.Database)
}
