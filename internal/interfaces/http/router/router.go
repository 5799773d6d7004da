// Package router lays the API's route sections out under /api.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DefaultPrefix is where the API is mounted
const DefaultPrefix = "/api"

// RouteRegistrar mounts routes onto a gin group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router splits the API into a public part and a part behind the auth chain.
type Router struct {
	engine    *gin.Engine
	prefix    string
	auth      []gin.HandlerFunc
	public    []RouteRegistrar
	protected []RouteRegistrar
}

type Option func(*Router)

// WithPrefix mounts the API somewhere other than DefaultPrefix.
func WithPrefix(prefix string) Option {
	return func(r *Router) { r.prefix = prefix }
}

// WithAuth sets the chain run before every protected route.
func WithAuth(chain ...gin.HandlerFunc) Option {
	return func(r *Router) { r.auth = append(r.auth, chain...) }
}

func NewRouter(engine *gin.Engine, opts ...Option) *Router {
	r := &Router{engine: engine, prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Public adds sections reachable without a token.
func (r *Router) Public(regs ...RouteRegistrar) *Router {
	r.public = append(r.public, regs...)
	return r
}

// Protected adds sections behind the auth chain.
func (r *Router) Protected(regs ...RouteRegistrar) *Router {
	r.protected = append(r.protected, regs...)
	return r
}

// Setup mounts everything added so far.
func (r *Router) Setup() {
	api := r.engine.Group(r.prefix)
	for _, reg := range r.public {
		reg.RegisterRoutes(api)
	}
	guarded := api.Group("", r.auth...)
	for _, reg := range r.protected {
		reg.RegisterRoutes(guarded)
	}
}

// Section is one resource's routes under a shared path prefix. Routes are
// recorded and only reach gin in RegisterRoutes.
type Section struct {
	prefix string
	use    []gin.HandlerFunc
	mounts []func(*gin.RouterGroup)
}

// NewSection starts a section at prefix with optional section middleware.
func NewSection(prefix string, mw ...gin.HandlerFunc) *Section {
	return &Section{prefix: prefix, use: mw}
}

func (s *Section) Prefix() string { return s.prefix }

// Handle records one route.
func (s *Section) Handle(method, path string, handlers ...gin.HandlerFunc) *Section {
	s.mounts = append(s.mounts, func(g *gin.RouterGroup) {
		g.Handle(method, path, handlers...)
	})
	return s
}

func (s *Section) GET(path string, h ...gin.HandlerFunc) *Section {
	return s.Handle(http.MethodGet, path, h...)
}

func (s *Section) POST(path string, h ...gin.HandlerFunc) *Section {
	return s.Handle(http.MethodPost, path, h...)
}

func (s *Section) PUT(path string, h ...gin.HandlerFunc) *Section {
	return s.Handle(http.MethodPut, path, h...)
}

func (s *Section) DELETE(path string, h ...gin.HandlerFunc) *Section {
	return s.Handle(http.MethodDelete, path, h...)
}

// Nest returns a child section mounted below this one.
func (s *Section) Nest(prefix string, mw ...gin.HandlerFunc) *Section {
	child := NewSection(prefix, mw...)
	s.mounts = append(s.mounts, child.RegisterRoutes)
	return child
}

// RegisterRoutes implements RouteRegistrar.
func (s *Section) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group(s.prefix, s.use...)
	for _, mount := range s.mounts {
		mount(g)
	}
}
