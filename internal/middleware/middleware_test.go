package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calendar-webhook/internal/middleware"
	"calendar-webhook/pkg/log"
)

func newRouter(mw middleware.Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if middleware.IsBodyTooLarge(err) {
			c.AbortWithStatus(http.StatusRequestEntityTooLarge)
			return
		}
		c.String(http.StatusOK, "%d|%s", len(body), log.RequestIDFromContext(c.Request.Context()))
	})
	r.POST("/calendar", handlers...)
	return r
}

func TestAuth(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{Secret: "s3cret"})
	r := newRouter(mw, mw.Auth())

	tests := []struct {
		name   string
		secret string
		set    bool
		want   int
	}{
		{"missing header", "", false, http.StatusUnauthorized},
		{"empty header", "", true, http.StatusUnauthorized},
		{"wrong secret", "nope", true, http.StatusUnauthorized},
		{"prefix of secret", "s3c", true, http.StatusUnauthorized},
		{"correct secret", "s3cret", true, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/calendar", strings.NewReader(`{"op":"delete"}`))
			if tt.set {
				req.Header.Set(middleware.SecretHeader, tt.secret)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusUnauthorized {
				assert.JSONEq(t, `{"ok":false,"error":"unauthorized"}`, w.Body.String())
			}
		})
	}
}

func TestAuthWithEmptyConfiguredSecret(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{})
	r := newRouter(mw, mw.Auth())

	req := httptest.NewRequest(http.MethodPost, "/calendar", nil)
	req.Header.Set(middleware.SecretHeader, "")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestID(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{})
	r := newRouter(mw, mw.RequestID())

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/calendar", nil))

		id := w.Header().Get(middleware.RequestIDHeader)
		require.NotEmpty(t, id)
		assert.True(t, strings.HasSuffix(w.Body.String(), "|"+id), "context should carry the id")
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/calendar", nil)
		req.Header.Set(middleware.RequestIDHeader, "upstream-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "upstream-42", w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "0|upstream-42", w.Body.String())
	})
}

func TestIPAllowlist(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{
		AllowedIPs: []string{"10.0.0.7", "192.168.0.0/16", "not-a-cidr/99"},
	})
	r := newRouter(mw, mw.IPAllowlist())

	for remote, want := range map[string]int{
		"10.0.0.7:5555":    http.StatusOK,
		"192.168.3.4:5555": http.StatusOK,
		"10.0.0.8:5555":    http.StatusForbidden,
	} {
		req := httptest.NewRequest(http.MethodPost, "/calendar", nil)
		req.RemoteAddr = remote
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, remote)
	}
}

func TestIPAllowlistEmptyAllowsAll(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{})
	r := newRouter(mw, mw.IPAllowlist())

	req := httptest.NewRequest(http.MethodPost, "/calendar", nil)
	req.RemoteAddr = "203.0.113.9:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit(t *testing.T) {
	// 60/min gives a burst of 6 and refills one token per second.
	mw := middleware.New(log.NewNop(), middleware.Config{RateLimitPerMin: 60})
	r := newRouter(mw, mw.RateLimit())

	codes := map[int]int{}
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodPost, "/calendar", nil)
		req.RemoteAddr = "10.0.0.1:1000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes[w.Code]++
	}
	assert.Equal(t, 6, codes[http.StatusOK])
	assert.Equal(t, 4, codes[http.StatusTooManyRequests])

	// Another client has its own budget.
	req := httptest.NewRequest(http.MethodPost, "/calendar", nil)
	req.RemoteAddr = "10.0.0.2:1000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitDisabled(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{})
	r := newRouter(mw, mw.RateLimit())

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/calendar", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestBodyLimit(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{MaxBodyBytes: 16})
	r := newRouter(mw, mw.BodyLimit())

	t.Run("declared length over limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/calendar", strings.NewReader(strings.Repeat("x", 17))))
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.JSONEq(t, `{"ok":false,"error":"request body too large"}`, w.Body.String())
	})

	t.Run("streamed body over limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/calendar", strings.NewReader(strings.Repeat("x", 32)))
		req.ContentLength = -1
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("within limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/calendar", strings.NewReader(`{"op":"x"}`)))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
