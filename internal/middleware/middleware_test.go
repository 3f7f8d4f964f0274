package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func setupRouter(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", mw.RequestID(), mw.RateLimit(), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestRequestID(t *testing.T) {
	r := setupRouter(New(&mockLogger{}, 0))

	t.Run("generates id when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		if w.Header().Get(HeaderRequestID) == "" {
			t.Error("expected generated request id header")
		}
	})

	t.Run("preserves inbound id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderRequestID, "caller-id-1")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get(HeaderRequestID); got != "caller-id-1" {
			t.Errorf("expected inbound id preserved, got %q", got)
		}
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("throttles past the burst", func(t *testing.T) {
		perMin := 3
		r := setupRouter(New(&mockLogger{}, perMin))

		var last int
		for i := 0; i < perMin+1; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			r.ServeHTTP(w, req)
			last = w.Code
		}

		if last != http.StatusTooManyRequests {
			t.Errorf("expected 429 after burst, got %d", last)
		}
	})

	t.Run("clients are limited independently", func(t *testing.T) {
		r := setupRouter(New(&mockLogger{}, 1))

		first := httptest.NewRecorder()
		reqA := httptest.NewRequest(http.MethodGet, "/ping", nil)
		reqA.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(first, reqA)

		second := httptest.NewRecorder()
		reqB := httptest.NewRequest(http.MethodGet, "/ping", nil)
		reqB.RemoteAddr = "10.0.0.2:1234"
		r.ServeHTTP(second, reqB)

		if second.Code != http.StatusOK {
			t.Errorf("expected second client unaffected, got %d", second.Code)
		}
	})

	t.Run("disabled when rate is zero", func(t *testing.T) {
		r := setupRouter(New(&mockLogger{}, 0))

		for i := 0; i < 10; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("expected all requests allowed, got %d", w.Code)
			}
		}
	})
}
