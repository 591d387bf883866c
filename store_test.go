package themekit

import (
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "content.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndGetPost(t *testing.T) {
	s := setupTestStore(t)

	rec := PostRecord{
		Post: Post{
			Type:     "post",
			Name:     "hello-world",
			Format:   "aside",
			Template: "custom/spotlight",
		},
		Title:     "Hello World",
		Content:   "First post.",
		Date:      "2026-01-15",
		Published: true,
	}
	id, err := s.SavePost(rec)
	if err != nil {
		t.Fatalf("SavePost failed: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero id")
	}

	got, err := s.GetPost("post", "hello-world")
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if got.ID != id {
		t.Errorf("ID = %d, want %d", got.ID, id)
	}
	if got.Title != rec.Title {
		t.Errorf("Title = %q, want %q", got.Title, rec.Title)
	}
	if got.Format != rec.Format {
		t.Errorf("Format = %q, want %q", got.Format, rec.Format)
	}
	if got.Template != rec.Template {
		t.Errorf("Template = %q, want %q", got.Template, rec.Template)
	}
	if !got.Published {
		t.Error("Published should be true")
	}
}

func TestSavePostUpdateKeepsID(t *testing.T) {
	s := setupTestStore(t)

	rec := PostRecord{
		Post:      Post{Type: "post", Name: "update-me"},
		Title:     "Original",
		Published: true,
	}
	id, err := s.SavePost(rec)
	if err != nil {
		t.Fatalf("SavePost failed: %v", err)
	}

	rec.Title = "Updated"
	id2, err := s.SavePost(rec)
	if err != nil {
		t.Fatalf("SavePost update failed: %v", err)
	}
	if id2 != id {
		t.Errorf("update changed id: %d -> %d", id, id2)
	}

	got, err := s.GetPost("post", "update-me")
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if got.Title != "Updated" {
		t.Errorf("Title = %q, want Updated", got.Title)
	}
}

func TestGetPostExcludesUnpublished(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.SavePost(PostRecord{
		Post:  Post{Type: "post", Name: "draft"},
		Title: "Draft",
	}); err != nil {
		t.Fatalf("SavePost failed: %v", err)
	}

	if _, err := s.GetPost("post", "draft"); err != ErrNotFound {
		t.Errorf("GetPost(draft) err = %v, want ErrNotFound", err)
	}
	if _, err := s.GetPostAny("post", "draft"); err != nil {
		t.Errorf("GetPostAny(draft) err = %v, want nil", err)
	}
}

func TestPostsOfDifferentTypesShareNames(t *testing.T) {
	s := setupTestStore(t)

	for _, typ := range []string{"post", "page"} {
		if _, err := s.SavePost(PostRecord{
			Post:      Post{Type: typ, Name: "about"},
			Title:     typ + " about",
			Published: true,
		}); err != nil {
			t.Fatalf("SavePost(%s) failed: %v", typ, err)
		}
	}

	page, err := s.GetPost("page", "about")
	if err != nil {
		t.Fatalf("GetPost(page) failed: %v", err)
	}
	if page.Title != "page about" {
		t.Errorf("Title = %q, want %q", page.Title, "page about")
	}
}

func TestListPostsFiltersAndOrders(t *testing.T) {
	s := setupTestStore(t)

	seed := []PostRecord{
		{Post: Post{Type: "post", Name: "older"}, Date: "2026-01-01", Published: true},
		{Post: Post{Type: "post", Name: "newer"}, Date: "2026-02-01", Published: true},
		{Post: Post{Type: "page", Name: "about"}, Date: "2026-01-15", Published: true},
		{Post: Post{Type: "post", Name: "draft"}, Date: "2026-03-01"},
	}
	for _, rec := range seed {
		if _, err := s.SavePost(rec); err != nil {
			t.Fatalf("SavePost(%s) failed: %v", rec.Name, err)
		}
	}

	posts, err := s.ListPosts("post")
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("len = %d, want 2", len(posts))
	}
	if posts[0].Name != "newer" || posts[1].Name != "older" {
		t.Errorf("order = [%s %s], want [newer older]", posts[0].Name, posts[1].Name)
	}

	all, err := s.ListPosts("")
	if err != nil {
		t.Fatalf("ListPosts(all) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all len = %d, want 3", len(all))
	}
}

func TestDeletePost(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.SavePost(PostRecord{Post: Post{Type: "post", Name: "gone"}, Published: true}); err != nil {
		t.Fatalf("SavePost failed: %v", err)
	}
	if err := s.DeletePost("post", "gone"); err != nil {
		t.Fatalf("DeletePost failed: %v", err)
	}
	if _, err := s.GetPostAny("post", "gone"); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSaveAndGetTerm(t *testing.T) {
	s := setupTestStore(t)

	id, err := s.SaveTerm(Term{Taxonomy: "category", Slug: "news"}, "News")
	if err != nil {
		t.Fatalf("SaveTerm failed: %v", err)
	}

	got, err := s.GetTerm("category", "news")
	if err != nil {
		t.Fatalf("GetTerm failed: %v", err)
	}
	if got.ID != id || got.Slug != "news" || got.Taxonomy != "category" {
		t.Errorf("got %+v, want id=%d slug=news taxonomy=category", got, id)
	}

	// Same slug in another taxonomy is a distinct term.
	id2, err := s.SaveTerm(Term{Taxonomy: "tag", Slug: "news"}, "News")
	if err != nil {
		t.Fatalf("SaveTerm(tag) failed: %v", err)
	}
	if id2 == id {
		t.Error("expected distinct ids across taxonomies")
	}
}

func TestSaveAndGetUser(t *testing.T) {
	s := setupTestStore(t)

	id, err := s.SaveUser(User{Nicename: "jane"}, "Jane Doe")
	if err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}

	got, err := s.GetUser("jane")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got.ID != id || got.Nicename != "jane" {
		t.Errorf("got %+v, want id=%d nicename=jane", got, id)
	}

	if _, err := s.GetUser("nobody"); err != ErrNotFound {
		t.Errorf("GetUser(nobody) err = %v, want ErrNotFound", err)
	}
}
