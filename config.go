package themekit

import "time"

// SiteConfig holds all configuration for a themekit site.
type SiteConfig struct {
	Name        string // Site name (default "Site")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Author name

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite path (default "data/content.db")

	// Extension is the template suffix every candidate name receives
	// (default "twig"). A leading dot is accepted and stripped.
	Extension string

	// FrontPage names the page shown at "/". Empty means "/" is the
	// blog-style home listing instead of a static front page.
	FrontPage string

	// PostTypes registers the site's post types. Defaults to post, page,
	// and attachment, none with an archive.
	PostTypes []PostType

	// Taxonomies registers custom taxonomy slugs routed under
	// /tax/{taxonomy}/{term}. Category and tag are always available.
	Taxonomies []string

	AdminPassword string // Required: admin login password
	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	ContentCacheTTL time.Duration // Content cache TTL (default 5min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Site"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/content.db"
	}
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
	if len(c.PostTypes) == 0 {
		c.PostTypes = []PostType{
			{Name: "post"},
			{Name: "page"},
			{Name: "attachment"},
		}
	}
	if c.ContentCacheTTL == 0 {
		c.ContentCacheTTL = 5 * time.Minute
	}
	c.Taxonomies = FilterEmpty(c.Taxonomies)
}

// postTypeLookup builds the lookup function the Hierarchy consults for
// post-type-archive resolution.
func (c *SiteConfig) postTypeLookup() PostTypeLookup {
	index := make(map[string]PostType, len(c.PostTypes))
	for _, pt := range c.PostTypes {
		index[pt.Name] = pt
	}
	return func(name string) (PostType, bool) {
		pt, ok := index[name]
		return pt, ok
	}
}

// hasPostType reports whether name is a registered post type.
func (c *SiteConfig) hasPostType(name string) bool {
	for _, pt := range c.PostTypes {
		if pt.Name == name {
			return true
		}
	}
	return false
}

// hasTaxonomy reports whether name is a registered custom taxonomy.
func (c *SiteConfig) hasTaxonomy(name string) bool {
	for _, t := range c.Taxonomies {
		if t == name {
			return true
		}
	}
	return false
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
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

// WithTransforms runs fn against the hierarchy's registry before the server
// starts, giving embedding code its extension-point registration window.
func WithTransforms(fn func(*Registry)) Option {
	return func(a *App) {
		a.transformSetup = append(a.transformSetup, fn)
	}
}
