package logging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setProjectIDForTest(t *testing.T, id string) {
	t.Helper()
	orig := cachedProjectID
	cachedProjectID = id
	projectIDOnce = sync.Once{}
	projectIDOnce.Do(func() {})
	t.Cleanup(func() { cachedProjectID = orig })
}

func withRequestID(id string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), chimiddleware.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func TestAccessLoggerUsesRequestLogger(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)

	access := AccessLogger()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/send-email", nil)
	req = req.WithContext(WithLogger(req.Context(), zap.New(core)))
	access.ServeHTTP(httptest.NewRecorder(), req)

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["status"] != int64(http.StatusInternalServerError) {
		t.Fatalf("expected status 500, got %v", fields["status"])
	}
	if fields["path"] != "/api/send-email" {
		t.Fatalf("expected path, got %v", fields["path"])
	}
	if _, ok := fields["duration"]; !ok {
		t.Fatalf("expected duration field, got %+v", fields)
	}
}

func TestRequestLoggerFallsBackToRequestID(t *testing.T) {
	setProjectIDForTest(t, "")

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := TraceIDFromContext(r.Context()); got != "req-123" {
			t.Fatalf("expected trace ID req-123, got %q", got)
		}
		w.WriteHeader(http.StatusOK)
	})
	handler := withRequestID("req-123", RequestLogger()(inner))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestRequestLoggerUsesTraceparent(t *testing.T) {
	setProjectIDForTest(t, "test-project")

	inner := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		want := "projects/test-project/traces/3d23d071b5bfd6579171efce907685cb"
		if got := TraceIDFromContext(r.Context()); got != want {
			t.Fatalf("expected %s, got %q", want, got)
		}
	})
	handler := withRequestID("req-456", RequestLogger()(inner))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("traceparent", "00-3d23d071b5bfd6579171efce907685cb-08f067aa0ba902b7-01")
	handler.ServeHTTP(httptest.NewRecorder(), req)
}

func TestLoggerWithTraceFields(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	logger := loggerWithTrace(zap.New(core), "00-3d23d071b5bfd6579171efce907685cb-08f067aa0ba902b7-00", "proj", "req-1")
	logger.Info("hello")

	fields := recorded.All()[0].ContextMap()
	if fields["logging.googleapis.com/spanId"] != "08f067aa0ba902b7" {
		t.Fatalf("expected span ID, got %+v", fields)
	}
	if fields["logging.googleapis.com/trace_sampled"] != false {
		t.Fatalf("expected unsampled trace, got %+v", fields)
	}
	if fields["requestId"] != "req-1" {
		t.Fatalf("expected requestId, got %+v", fields)
	}
}

func TestLoggerWithTraceIgnoresMalformedHeader(t *testing.T) {
	base := zap.NewNop()
	if got := loggerWithTrace(base, "not-a-trace", "proj", ""); got != base {
		t.Fatal("expected base logger when no fields apply")
	}
}
