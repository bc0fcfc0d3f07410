package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/argos/backend/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCORSWithConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(origins ...string) *gin.Engine {
		cfg := DefaultCORSConfig()
		cfg.AllowOrigins = origins
		router := gin.New()
		router.Use(CORSWithConfig(cfg))
		router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
		return router
	}

	do := func(router *gin.Engine, method, origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, "/x", nil)
		if origin != "" {
			req.Header.Set("Origin", origin)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("allowed origin is echoed with credentials", func(t *testing.T) {
		w := do(newRouter("https://app.argos.dev"), http.MethodGet, "https://app.argos.dev")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://app.argos.dev", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
		assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "Content-Disposition")
	})

	t.Run("unknown origin gets no headers", func(t *testing.T) {
		w := do(newRouter("https://app.argos.dev"), http.MethodGet, "https://evil.example")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard never sends credentials", func(t *testing.T) {
		w := do(newRouter("*"), http.MethodGet, "https://anywhere.example")

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("preflight ends with 204", func(t *testing.T) {
		w := do(newRouter("https://app.argos.dev"), http.MethodOptions, "https://app.argos.dev")

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "43200", w.Header().Get("Access-Control-Max-Age"))
	})
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seenInContext, seenInGin string
	router := gin.New()
	router.Use(RequestID())
	router.GET("/x", func(c *gin.Context) {
		seenInGin = c.GetString(logger.GinRequestIDKey)
		seenInContext = logger.GetRequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	t.Run("generates one when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		id := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, seenInGin)
		assert.Equal(t, id, seenInContext)
	})

	t.Run("reuses the client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(RequestIDHeader, "client-supplied")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "client-supplied", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "client-supplied", seenInGin)
	})

	t.Run("truncates oversized ids", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("a", 500))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Len(t, w.Header().Get(RequestIDHeader), MaxRequestIDLength)
	})
}

func TestSecure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Secure())
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))
}
