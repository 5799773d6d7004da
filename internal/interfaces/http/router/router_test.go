package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func ok(body string) gin.HandlerFunc {
	return func(c *gin.Context) { c.String(http.StatusOK, body) }
}

func denyAll(c *gin.Context) {
	c.AbortWithStatus(http.StatusUnauthorized)
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())
	assert.Equal(t, DefaultPrefix, r.prefix)
	assert.Empty(t, r.public)
	assert.Empty(t, r.protected)

	r = NewRouter(gin.New(), WithPrefix("/v2"), WithAuth(denyAll))
	assert.Equal(t, "/v2", r.prefix)
	assert.Len(t, r.auth, 1)
}

func TestRouterSetup_PublicAndProtected(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAuth(denyAll))
	r.Public(NewSection("/auth").POST("/login", ok("login"))).
		Protected(NewSection("/products").GET("", ok("products"))).
		Setup()

	w := serve(engine, http.MethodPost, "/api/auth/login")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "login", w.Body.String())

	w = serve(engine, http.MethodGet, "/api/products")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSection(t *testing.T) {
	t.Run("prefix", func(t *testing.T) {
		assert.Equal(t, "/products", NewSection("/products").Prefix())
	})

	t.Run("every method", func(t *testing.T) {
		engine := gin.New()
		NewSection("/products").
			GET("", ok("list")).
			POST("", ok("create")).
			PUT("/:id", ok("update")).
			DELETE("/:id", ok("delete")).
			RegisterRoutes(engine.Group("/api"))

		for method, body := range map[string]string{
			http.MethodGet:    "list",
			http.MethodPost:   "create",
			http.MethodPut:    "update",
			http.MethodDelete: "delete",
		} {
			path := "/api/products"
			if method == http.MethodPut || method == http.MethodDelete {
				path += "/42"
			}
			w := serve(engine, method, path)
			assert.Equal(t, http.StatusOK, w.Code, method)
			assert.Equal(t, body, w.Body.String(), method)
		}
	})

	t.Run("middleware and subgroups", func(t *testing.T) {
		engine := gin.New()
		g := NewSection("/reports", func(c *gin.Context) {
			c.Header("X-Group", "reports")
			c.Next()
		})
		g.Nest("/daily").GET("/export", ok("xlsx"))
		g.RegisterRoutes(engine.Group("/api"))

		w := serve(engine, http.MethodGet, "/api/reports/daily/export")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "reports", w.Header().Get("X-Group"))
	})
}
