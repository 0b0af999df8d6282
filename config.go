package jsonblog

import "time"

// SiteConfig holds all configuration for a jsonblog site.
type SiteConfig struct {
	Name        string // Site name, suffix of every post title (default "My Laundry Blog")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Site author for JSON-LD
	Keyword     string // Leading meta keyword of post pages (default "laundry")

	Addr       string // Listen address (default ":3000")
	Source     string // Post collection: file path, http(s) URL or sqlite:<path> (default "blog_data.json")
	DateLayout string // Layout of displayed dates (default "1/2/2006")

	CacheTTL     time.Duration // Keep fetched posts this long; 0 fetches on every request
	Watch        bool          // Invalidate the cache when a file source changes
	SanitizeHTML bool          // Run post bodies through a UGC HTML policy

	SearchRate  float64 // Search requests per second per client (default 20)
	SearchBurst int     // Search burst per client (default 40)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "My Laundry Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Keyword == "" {
		c.Keyword = "laundry"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.Source == "" {
		c.Source = "blog_data.json"
	}
	if c.DateLayout == "" {
		c.DateLayout = DefaultDateLayout
	}
	if c.SearchRate == 0 {
		c.SearchRate = 20
	}
	if c.SearchBurst == 0 {
		c.SearchBurst = 40
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are set up.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithSource replaces the source built from SiteConfig.Source.
func WithSource(src Source) Option {
	return func(a *App) {
		a.source = src
	}
}
