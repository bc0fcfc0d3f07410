package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newLoggedRouter(t *testing.T, skip ...string) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	core, recorded := observer.New(zapcore.DebugLevel)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(GinRequestIDKey, "req-abc")
		c.Next()
	})
	router.Use(Recovery(zap.New(core)), GinMiddleware(zap.New(core), skip...))
	return router, recorded
}

func TestGinMiddleware_LevelByStatus(t *testing.T) {
	router, recorded := newLoggedRouter(t)
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	router.GET("/broken", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })

	for _, path := range []string{"/ok", "/missing", "/broken"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := recorded.FilterMessage("HTTP Request").All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "req-abc", entries[0].ContextMap()["request_id"])
}

func TestGinMiddleware_LogsUserAndRoute(t *testing.T) {
	router, recorded := newLoggedRouter(t)
	router.GET("/suppliers/:id", func(c *gin.Context) {
		c.Set(GinUserIDKey, "user-1")
		GetGinLogger(c).Info("handler")
		FromContext(c.Request.Context()).Info("service")
		c.Status(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/suppliers/abc", nil))

	assert.Equal(t, 1, recorded.FilterMessage("handler").Len())
	assert.Equal(t, 1, recorded.FilterMessage("service").Len())
	entries := recorded.FilterMessage("HTTP Request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "user-1", fields["user_id"])
	assert.Equal(t, "/suppliers/:id", fields["route"])
}

func TestGinMiddleware_SkipsPaths(t *testing.T) {
	router, recorded := newLoggedRouter(t, "/health")
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, 0, recorded.FilterMessage("HTTP Request").Len())
}

func TestRecovery(t *testing.T) {
	router, recorded := newLoggedRouter(t)
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_INTERNAL")
	assert.Equal(t, 1, recorded.FilterMessage("Panic recovered").Len())
}

func TestGetGinLogger_Missing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.NotNil(t, GetGinLogger(c))
}
