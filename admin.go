package themekit

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// handleAdmin reports the engine's live configuration: the active extension
// and the registered post types. JSON keeps the admin surface theme-free.
func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return c.JSON(http.StatusUnauthorized, map[string]any{
			"error": "login required",
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"site":       a.Config.Name,
		"extension":  a.Hierarchy.Extension(),
		"post_types": a.Config.PostTypes,
		"taxonomies": a.Config.Taxonomies,
	})
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) != 1 {
		return c.JSON(http.StatusUnauthorized, map[string]any{"error": "invalid password"})
	}
	if err := setAdminSession(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

// handleAdminTheme switches the active template extension. This is the one
// sanctioned runtime write to hierarchy state; every candidate produced after
// it carries the new suffix.
func (a *App) handleAdminTheme(c echo.Context) error {
	if !IsAdmin(c) {
		return c.JSON(http.StatusUnauthorized, map[string]any{"error": "login required"})
	}
	ext := strings.TrimSpace(c.FormValue("extension"))
	if ext == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "extension is required"})
	}
	a.Hierarchy.SetExtension(ext)
	return c.JSON(http.StatusOK, map[string]any{"extension": a.Hierarchy.Extension()})
}

// handleAdminSave creates or updates a content entry.
func (a *App) handleAdminSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.JSON(http.StatusUnauthorized, map[string]any{"error": "login required"})
	}
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	postType := strings.TrimSpace(c.FormValue("type"))
	if postType == "" {
		postType = "post"
	}
	if !a.Config.hasPostType(postType) {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "unknown post type " + postType})
	}
	title := strings.TrimSpace(c.FormValue("title"))
	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		name = Slugify(title)
	}
	if name == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "name or title is required"})
	}
	rec := PostRecord{
		Post: Post{
			Type:     postType,
			Name:     name,
			Format:   strings.TrimSpace(c.FormValue("format")),
			Template: strings.TrimSpace(c.FormValue("template")),
		},
		Title:     title,
		Content:   c.FormValue("content"),
		Date:      strings.TrimSpace(c.FormValue("date")),
		Published: c.FormValue("published") != "",
	}
	id, err := a.Store.SavePost(rec)
	if err != nil {
		return err
	}
	a.Cache.Invalidate()
	return c.JSON(http.StatusOK, map[string]any{"id": id, "type": postType, "name": name})
}
