package themekit

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

func textComponent(body string) ViewFunc {
	return func(PageData) templ.Component {
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, body)
			return err
		})
	}
}

func TestViewSetLookupPicksFirstRegistered(t *testing.T) {
	views := ViewSet{
		"single.twig": textComponent("single"),
		"index.twig":  textComponent("index"),
	}

	name, _, ok := views.Lookup([]string{"single-post.twig", "single.twig", "index.twig"})
	if !ok {
		t.Fatal("expected a match")
	}
	if name != "single.twig" {
		t.Errorf("name = %q, want single.twig", name)
	}

	if _, _, ok := views.Lookup([]string{"nothing.twig"}); ok {
		t.Error("expected no match")
	}
}

func TestRenderFirstWritesFirstAvailableView(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	views := ViewSet{"index.twig": textComponent("fallback page")}
	candidates := []string{"single-post.twig", "single.twig", "index.twig"}

	if err := RenderFirst(c, http.StatusOK, views, candidates, PageData{}); err != nil {
		t.Fatalf("RenderFirst failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("X-Template"); got != "index.twig" {
		t.Errorf("X-Template = %q, want index.twig", got)
	}
	if rec.Body.String() != "fallback page" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestRenderFirstWithoutAnyViewIs404(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := RenderFirst(c, http.StatusOK, ViewSet{}, []string{"index.twig"}, PageData{})
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("err = %v, want 404 HTTPError", err)
	}
}
