package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func text(body string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, body)
	}
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())

	assert.NotNil(t, r)
	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)
}

func TestRouterWithAPIVersion(t *testing.T) {
	r := NewRouter(gin.New(), WithAPIVersion("v2"))

	assert.Equal(t, "v2", r.apiVersion)
}

func TestRouterRegister(t *testing.T) {
	r := NewRouter(gin.New())
	r.Register(NewDomainGroup("a", "/a"), NewDomainGroup("b", "/b"))

	assert.Len(t, r.registrars, 2)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	group := NewDomainGroup("test", "/test").GET("/ping", text("pong"))

	NewRouter(engine, WithAPIVersion("v2")).Register(group).Setup()

	w := serve(engine, http.MethodGet, "/api/v2/test/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())

	assert.Equal(t, http.StatusNotFound, serve(engine, http.MethodGet, "/api/v1/test/ping").Code)
}

func TestDomainGroup(t *testing.T) {
	t.Run("name and prefix", func(t *testing.T) {
		g := NewDomainGroup("suppliers", "/suppliers")
		assert.Equal(t, "suppliers", g.Name())
		assert.Equal(t, "/suppliers", g.Prefix())
	})

	t.Run("registers every method", func(t *testing.T) {
		engine := gin.New()
		NewDomainGroup("test", "/test").
			GET("/r", text("get")).
			POST("/r", text("post")).
			PATCH("/r", text("patch")).
			DELETE("/r", text("delete")).
			RegisterRoutes(engine.Group("/api/v1"))

		for method, want := range map[string]string{
			http.MethodGet:    "get",
			http.MethodPost:   "post",
			http.MethodPatch:  "patch",
			http.MethodDelete: "delete",
		} {
			w := serve(engine, method, "/api/v1/test/r")
			assert.Equal(t, http.StatusOK, w.Code, method)
			assert.Equal(t, want, w.Body.String(), method)
		}
	})

	t.Run("PUT is not routed", func(t *testing.T) {
		engine := gin.New()
		NewDomainGroup("test", "/test").
			PATCH("/r", text("patch")).
			RegisterRoutes(engine.Group("/api/v1"))

		assert.NotEqual(t, http.StatusOK, serve(engine, http.MethodPut, "/api/v1/test/r").Code)
	})

	t.Run("middleware applies to the group only", func(t *testing.T) {
		engine := gin.New()
		api := engine.Group("/api/v1")

		guarded := NewDomainGroup("guarded", "/guarded").
			Use(func(c *gin.Context) {
				c.Header("X-Guarded", "1")
				c.Next()
			}).
			GET("", text("guarded"))
		open := NewDomainGroup("open", "/open").GET("", text("open"))
		guarded.RegisterRoutes(api)
		open.RegisterRoutes(api)

		assert.Equal(t, "1", serve(engine, http.MethodGet, "/api/v1/guarded").Header().Get("X-Guarded"))
		assert.Empty(t, serve(engine, http.MethodGet, "/api/v1/open").Header().Get("X-Guarded"))
	})

	t.Run("subgroups inherit parent middleware", func(t *testing.T) {
		engine := gin.New()
		parent := NewDomainGroup("protected", "").
			Use(func(c *gin.Context) {
				c.AbortWithStatus(http.StatusUnauthorized)
			})
		parent.Group("agent", "/agent").GET("/suggestions", text("ok"))
		parent.RegisterRoutes(engine.Group("/api/v1"))

		assert.Equal(t, http.StatusUnauthorized, serve(engine, http.MethodGet, "/api/v1/agent/suggestions").Code)
	})
}

type stubCRUD struct{}

func (stubCRUD) Create(c *gin.Context)  { c.String(http.StatusCreated, "create") }
func (stubCRUD) GetByID(c *gin.Context) { c.String(http.StatusOK, "get "+c.Param("id")) }
func (stubCRUD) List(c *gin.Context)    { c.String(http.StatusOK, "list") }
func (stubCRUD) Update(c *gin.Context)  { c.String(http.StatusOK, "update "+c.Param("id")) }
func (stubCRUD) Delete(c *gin.Context)  { c.String(http.StatusOK, "delete "+c.Param("id")) }

func TestDomainGroup_CRUD(t *testing.T) {
	engine := gin.New()
	g := NewDomainGroup("suppliers", "/suppliers").CRUD(stubCRUD{})
	NewRouter(engine).Register(g).Setup()

	tests := []struct {
		method string
		path   string
		code   int
		body   string
	}{
		{http.MethodPost, "/api/v1/suppliers", http.StatusCreated, "create"},
		{http.MethodGet, "/api/v1/suppliers", http.StatusOK, "list"},
		{http.MethodGet, "/api/v1/suppliers/42", http.StatusOK, "get 42"},
		{http.MethodPatch, "/api/v1/suppliers/42", http.StatusOK, "update 42"},
		{http.MethodDelete, "/api/v1/suppliers/42", http.StatusOK, "delete 42"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := serve(engine, tt.method, tt.path)
			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
		})
	}
}

func TestMultipleDomainGroups(t *testing.T) {
	engine := gin.New()
	NewRouter(engine).
		Register(
			NewDomainGroup("analytics", "/analytics").GET("/sections", text("sections")),
			NewDomainGroup("integrations", "/integrations").GET("/status", text("status")),
		).
		Setup()

	assert.Equal(t, "sections", serve(engine, http.MethodGet, "/api/v1/analytics/sections").Body.String())
	assert.Equal(t, "status", serve(engine, http.MethodGet, "/api/v1/integrations/status").Body.String())
}
