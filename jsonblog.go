// Package jsonblog serves a blog whose whole content is one JSON document.
// It renders a paginated listing, individual post pages addressed by
// /YYYY/MM/DD/<slug>.html, and a search endpoint for the autocomplete box.
//
// The post collection is loaded from a Source on every request unless a
// cache TTL is configured. Users provide templ components via ViewFuncs; the
// views package ships a default set.
package jsonblog

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"
)

// ViewFuncs holds the templ components the app calls when rendering pages.
type ViewFuncs struct {
	Listing       func(cfg SiteConfig, meta PageMeta, listing Listing) templ.Component
	ListingError  func(cfg SiteConfig, meta PageMeta) templ.Component
	Post          func(cfg SiteConfig, meta PageMeta, post Post) templ.Component
	SearchResults func(cfg SiteConfig, posts []Post) templ.Component
	SearchError   func() templ.Component
	// NotFound is the error page. It also serves unknown paths and post
	// routes that carry no parameters.
	NotFound    func(cfg SiteConfig) templ.Component
	ServerError func(cfg SiteConfig) templ.Component
}

// App is the central jsonblog application. It wires together the source,
// cache, handlers, middleware, and templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Cache  *PostCache
	Views  ViewFuncs

	source        Source
	searchLimiter *SearchLimiter
	sanitizer     *bluemonday.Policy
	customRoutes  []func(*App)
	staticDir     string
	ready         bool
}

// New creates a new App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Setup builds the source, cache, middleware and routes. Start calls it;
// tests call it to serve requests through a.Echo directly.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	if a.source == nil {
		src, err := NewSource(a.Config.Source)
		if err != nil {
			return fmt.Errorf("jsonblog: init source: %w", err)
		}
		a.source = src
	}
	a.Cache = NewPostCache(a.source, a.Config.CacheTTL)
	a.searchLimiter = NewSearchLimiter(a.Config.SearchRate, a.Config.SearchBurst, 10*time.Minute)
	if a.Config.SanitizeHTML {
		a.sanitizer = bluemonday.UGCPolicy()
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

// Start sets the app up and serves until the server is shut down.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

// Source returns the source posts are loaded from.
func (a *App) Source() Source {
	return a.source
}

// Posts loads the post collection through the cache.
func (a *App) Posts(ctx context.Context) ([]Post, error) {
	return a.Cache.Posts(ctx)
}

// Watch invalidates the cache whenever a file source changes, until ctx is
// done. Other sources have nothing to watch and return at once.
func (a *App) Watch(ctx context.Context) error {
	fsrc, ok := a.source.(*FileSource)
	if !ok {
		return nil
	}
	logger := a.Echo.Logger
	return WatchFile(ctx, fsrc.Path, func() {
		logger.Infof("%s changed, dropping cached posts", fsrc.Path)
		a.Cache.Invalidate()
	}, func(err error) {
		logger.Errorf("watch %s: %v", fsrc.Path, err)
	})
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Serve the embedded client script; everything else under /public/ comes
	// from the user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/blog.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.Static("/public", a.staticDir)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/blog_data.json", a.handleData)
	e.GET("/search", a.handleSearch)

	e.GET("/", a.handlePage)
	e.GET("/*", a.handlePage)
}

// postBody returns the HTML body of a post, sanitized when configured.
func (a *App) postBody(html string) string {
	if a.sanitizer == nil {
		return html
	}
	return a.sanitizer.Sanitize(html)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.searchLimiter != nil {
		a.searchLimiter.Close()
	}
	if c, ok := a.source.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
