package main

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/themekit"
)

// debugViews is the built-in theme the CLI serves with: one plain HTML view
// per major template type, each labeled with the candidate that matched.
// Real sites replace this wholesale with their own templ components.
func debugViews(cfg themekit.SiteConfig) themekit.ViewSet {
	ext := cfg.Extension
	if ext == "" {
		ext = themekit.DefaultExtension
	}
	key := func(name string) string { return name + "." + ext }

	views := themekit.ViewSet{}
	for _, name := range []string{"index", "404", "home", "front-page", "archive", "search", "single", "page", "attachment", "embed"} {
		views[key(name)] = debugView(name)
	}
	return views
}

func debugView(label string) themekit.ViewFunc {
	return func(data themekit.PageData) templ.Component {
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			title := data.Post.Title
			if title == "" {
				title = label
			}
			if _, err := fmt.Fprintf(w,
				"<!doctype html>\n<html><head><title>%s | %s</title></head><body>\n<h1>%s</h1>\n",
				html.EscapeString(data.Site.Name), html.EscapeString(title), html.EscapeString(title)); err != nil {
				return err
			}
			if data.Post.Content != "" {
				if _, err := fmt.Fprintf(w, "<article>%s</article>\n", html.EscapeString(data.Post.Content)); err != nil {
					return err
				}
			}
			for _, p := range data.Posts {
				if _, err := fmt.Fprintf(w, "<p><a href=\"/%s/%s/\">%s</a></p>\n",
					html.EscapeString(p.Type), html.EscapeString(p.Name), html.EscapeString(p.Title)); err != nil {
					return err
				}
			}
			_, err := fmt.Fprintf(w, "<footer>rendered by %s</footer>\n</body></html>\n", html.EscapeString(label))
			return err
		})
	}
}
