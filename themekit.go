// Package themekit is a template-candidate resolution engine built with Go,
// Echo, and templ. Given a classified request context it produces an ordered
// list of candidate view names, most specific first and always ending in the
// universal index fallback, and the surrounding engine classifies requests,
// resolves candidates, and renders the first view a theme provides.
//
// The resolution core (Hierarchy, Registry, RequestContext) has no I/O and no
// failure modes; everything around it (Store, ContentCache, Classifier, App)
// is optional plumbing for sites that want a ready-made engine rather than
// just the resolver.
package themekit

import (
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

// App is the central themekit application. It wires together the store,
// cache, classifier, hierarchy, middleware, and user-provided views.
type App struct {
	Config    SiteConfig
	Echo      *echo.Echo
	Store     *Store
	Cache     *ContentCache
	Hierarchy *Hierarchy
	Views     ViewSet

	classifier     *Classifier
	loginLimiter   *loginLimiter
	customRoutes   []func(*App)
	transformSetup []func(*Registry)
	staticDir      string
}

// New creates a themekit App with the given configuration and views.
func New(cfg SiteConfig, views ViewSet, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the database, cache, hierarchy, middleware, and routes,
// then starts the server. Transform registration and extension configuration
// happen here, before the listener accepts requests, honoring the hierarchy's
// startup-vs-serving contract.
func (a *App) Start() error {
	if err := a.init(); err != nil {
		return err
	}
	defer a.Store.Close()

	log.Printf("themekit: %s listening on %s", a.Config.Name, a.Config.Addr)
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// init wires everything short of listening; split out so tests can drive the
// app through httptest instead of a real listener.
func (a *App) init() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("themekit: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("themekit: SessionSecret is required")
	}
	if err := a.Open(); err != nil {
		return err
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Open initializes the store, cache, classifier, and hierarchy without the
// HTTP layer, for CLI and embedding use. Callers own closing a.Store.
func (a *App) Open() error {
	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("themekit: open store: %w", err)
	}
	a.Store = store
	a.Cache = NewContentCache(store, a.Config.ContentCacheTTL)
	a.classifier = NewClassifier(a.Config, a.Cache)
	a.loginLimiter = newLoginLimiter(5, loginWindow)

	reg := NewRegistry()
	for _, fn := range a.transformSetup {
		fn(reg)
	}
	a.Hierarchy = NewHierarchy(HierarchyConfig{
		Extension: a.Config.Extension,
		PostTypes: a.Config.postTypeLookup(),
		Registry:  reg,
	})
	return nil
}

// Classify exposes the app's classifier, mainly for the resolve CLI.
func (a *App) Classify(path string, query url.Values) RequestContext {
	return a.classifier.Classify(path, query)
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	// Admin routes: password-protected management and theme control.
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.POST("/admin/theme/", a.handleAdminTheme)
	e.POST("/admin/save/", a.handleAdminSave)
	e.POST("/admin/attachments/upload/", a.handleAttachmentUpload)

	// Everything else is content: classify, resolve, render.
	e.GET("/*", a.handleContent)
}
