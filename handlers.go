package themekit

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// handleContent is the catch-all content handler: classify the request,
// resolve the candidate list, render the first view the theme provides.
func (a *App) handleContent(c echo.Context) error {
	ctx := a.classifier.Classify(c.Request().URL.Path, c.QueryParams())
	candidates := a.Hierarchy.Resolve(ctx)

	code := http.StatusOK
	if ctx.Is404 {
		code = http.StatusNotFound
	}
	return RenderFirst(c, code, a.Views, candidates, a.pageData(c, ctx))
}

// pageData assembles what the chosen view will receive. Content lookups that
// fail leave their field zero; the view decides what to do with that.
func (a *App) pageData(c echo.Context, ctx RequestContext) PageData {
	data := PageData{
		Site:    a.Config,
		Context: ctx,
		Search:  c.QueryParam("s"),
	}

	switch obj := ctx.Object.(type) {
	case Post:
		if rec, err := a.Cache.GetPost(obj.Type, obj.Name); err == nil {
			data.Post = rec
		}
	case Attachment:
		if rec, err := a.Cache.GetPost(obj.Type, obj.Name); err == nil {
			data.Post = rec
		}
	case Term:
		data.Term = obj
	case User:
		data.User = obj
	}

	if ctx.IsHome || ctx.IsArchive || ctx.IsSearch {
		listType := ""
		if len(ctx.PostTypes) == 1 {
			listType = ctx.PostTypes[0]
		}
		if posts, err := a.Cache.ListPosts(listType); err == nil {
			data.Posts = posts
		}
	}
	return data
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

// handleRobots generates robots.txt dynamically from the configured URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.ListPosts("post")
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

// httpErrorHandler routes uncaught 404s back through the hierarchy so a theme
// with a 404 view gets to render it; other errors fall through to echo.
func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		ctx := RequestContext{Is404: true}
		candidates := a.Hierarchy.Resolve(ctx)
		data := PageData{Site: a.Config, Context: ctx}
		if renderErr := RenderFirst(c, http.StatusNotFound, a.Views, candidates, data); renderErr == nil {
			return
		}
	}
	if code := errorCode(err); code >= 500 {
		c.Logger().Errorf("server error: %v", err)
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

func errorCode(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return http.StatusInternalServerError
}
