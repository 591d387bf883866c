package themekit

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// PageData is what the engine hands every view: site config, the request's
// classification, and whatever content the request resolved to. Fields not
// relevant to a given view are zero.
type PageData struct {
	Site    SiteConfig
	Context RequestContext

	Post  PostRecord   // the single post/page/attachment, if any
	Term  Term         // the term behind a term archive, if any
	User  User         // the author behind an author archive, if any
	Posts []PostRecord // listing pages (home, archives, search)

	Search string // the search query, for search views
}

// ViewFunc builds a templ component for one resolved view.
type ViewFunc func(data PageData) templ.Component

// ViewSet maps fully suffixed candidate names (e.g. "single-post.twig") to
// view functions. It plays the role of the theme directory: a candidate
// "exists" when the set has an entry for it.
type ViewSet map[string]ViewFunc

// Lookup walks candidates in order and returns the first registered view.
func (v ViewSet) Lookup(candidates []string) (string, ViewFunc, bool) {
	for _, name := range candidates {
		if fn, ok := v[name]; ok {
			return name, fn, true
		}
	}
	return "", nil, false
}

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// RenderFirst renders the first candidate present in views, exposing the
// chosen name in an X-Template header for theme debugging. When no candidate
// matches (the theme is missing even its index view) it reports 404, which
// is the renderer's failure, not the resolver's.
func RenderFirst(c echo.Context, code int, views ViewSet, candidates []string, data PageData) error {
	name, fn, ok := views.Lookup(candidates)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no view registered for any candidate")
	}
	c.Response().Header().Set("X-Template", name)
	return RenderStatus(c, code, fn(data))
}
