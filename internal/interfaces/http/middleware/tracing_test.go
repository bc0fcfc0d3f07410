package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/argos/backend/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func setupTestTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
		otel.SetTracerProvider(previous)
	})

	return sr
}

func findSpan(t *testing.T, sr *tracetest.SpanRecorder, name string) sdktrace.ReadOnlySpan {
	t.Helper()
	for _, span := range sr.Ended() {
		if span.Name() == name {
			return span
		}
	}
	require.Failf(t, "span not found", "no ended span named %q", name)
	return nil
}

func spanAttr(span sdktrace.ReadOnlySpan, key attribute.Key) (attribute.Value, bool) {
	for _, attr := range span.Attributes() {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return attribute.Value{}, false
}

func tracedRouter(status int, extra ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(RequestID())
	router.Use(TracingWithConfig(TracingConfig{Enabled: true, ServiceName: "test-service"}))
	router.Use(extra...)
	router.Use(TracingAttributeInjector())
	router.Use(SpanErrorMarker())
	router.GET("/api/v1/suppliers/:id", func(c *gin.Context) {
		c.Status(status)
	})
	return router
}

func TestTracingWithConfig_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sr := setupTestTracer(t)

	router := gin.New()
	router.Use(TracingWithConfig(TracingConfig{Enabled: false}))
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, sr.Ended())
}

func TestTracingWithConfig_SpanNamedByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sr := setupTestTracer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/suppliers/abc", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	tracedRouter(http.StatusOK).ServeHTTP(w, req)

	span := findSpan(t, sr, "GET /api/v1/suppliers/:id")
	v, ok := spanAttr(span, "request_id")
	require.True(t, ok)
	assert.Equal(t, "req-123", v.AsString())
	assert.Equal(t, codes.Unset, span.Status().Code)
}

func TestTracingAttributeInjector_UserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sr := setupTestTracer(t)

	authenticated := func(c *gin.Context) {
		c.Set(logger.GinUserIDKey, "user-123")
		c.Next()
	}

	w := httptest.NewRecorder()
	tracedRouter(http.StatusOK, authenticated).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/suppliers/abc", nil))

	span := findSpan(t, sr, "GET /api/v1/suppliers/:id")
	v, ok := spanAttr(span, "user_id")
	require.True(t, ok)
	assert.Equal(t, "user-123", v.AsString())
}

func TestSpanErrorMarker(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		status  int
		code    codes.Code
		message string
	}{
		{http.StatusOK, codes.Unset, ""},
		{http.StatusBadRequest, codes.Error, "Client Error"},
		{http.StatusUnauthorized, codes.Error, "Unauthorized"},
		{http.StatusNotFound, codes.Error, "Not Found"},
		{http.StatusTooManyRequests, codes.Error, "Too Many Requests"},
		{http.StatusServiceUnavailable, codes.Error, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			sr := setupTestTracer(t)

			w := httptest.NewRecorder()
			tracedRouter(tt.status).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/suppliers/abc", nil))

			span := findSpan(t, sr, "GET /api/v1/suppliers/:id")
			assert.Equal(t, tt.code, span.Status().Code)
			if tt.code == codes.Error {
				assert.Equal(t, tt.message, span.Status().Description)
			}
		})
	}
}

func TestSpanErrorMarker_WithNoSpan(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(SpanErrorMarker())
	router.Use(TracingAttributeInjector())
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDefaultTracingConfig(t *testing.T) {
	cfg := DefaultTracingConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "argos-backend", cfg.ServiceName)
}
