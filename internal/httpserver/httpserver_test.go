package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calendar-webhook/internal/middleware"
	"calendar-webhook/pkg/gcalendar"
	"calendar-webhook/pkg/gcalendar/gcalendartest"
	"calendar-webhook/pkg/log"
)

func newTestServer(t *testing.T, port int) *HTTPServer {
	t.Helper()
	return newTestServerIn(t, port, "test")
}

func newTestServerIn(t *testing.T, port int, environment string) *HTTPServer {
	t.Helper()
	fake := gcalendartest.NewServer()
	t.Cleanup(fake.Close)

	client, err := gcalendar.NewClientFromHTTP(context.Background(), fake.HTTPClient())
	require.NoError(t, err)

	srv, err := New(log.NewNop(), Config{
		Port:           port,
		Mode:           gin.TestMode,
		Environment:    environment,
		CalendarClient: client,
		CalendarID:     "primary",
		Webhook:        middleware.Config{Secret: "s3cret", MaxBodyBytes: 1 << 20},
	})
	require.NoError(t, err)
	return srv
}

func TestNewValidation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Port: 3000, Mode: gin.TestMode})
	assert.EqualError(t, err, "calendar client is required")

	_, err = New(log.NewNop(), Config{Mode: gin.TestMode})
	assert.EqualError(t, err, "port is required")
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, 3000)

	tcs := map[string]struct {
		path string
		want map[string]any
	}{
		"health": {path: "/health", want: map[string]any{"ok": true}},
		"live":   {path: "/live", want: map[string]any{"ok": true, "status": "alive", "version": HealthVersion, "service": ServiceName}},
		"ready":  {path: "/ready", want: map[string]any{"ok": true, "status": "ready", "version": HealthVersion, "service": ServiceName}},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

			require.Equal(t, http.StatusOK, w.Code)
			var got map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tc.want, got)
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestSwaggerByEnvironment(t *testing.T) {
	tcs := map[string]struct {
		environment string
		wantCode    int
		wantMode    string
	}{
		"development": {environment: "development", wantCode: http.StatusOK, wantMode: gin.TestMode},
		"production":  {environment: "production", wantCode: http.StatusNotFound, wantMode: gin.ReleaseMode},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Cleanup(func() { gin.SetMode(gin.TestMode) })
			srv := newTestServerIn(t, 3000, tc.environment)

			assert.Equal(t, tc.wantMode, gin.Mode())

			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
			assert.Equal(t, tc.wantCode, w.Code)
		})
	}
}

func TestCalendarRouteRequiresSecret(t *testing.T) {
	srv := newTestServer(t, 3000)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/calendar", strings.NewReader(`{}`))
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"ok":false,"error":"unauthorized"}`, w.Body.String())
}

func TestRunStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	srv := newTestServer(t, port)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/health", port))
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
