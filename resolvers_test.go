package themekit

import (
	"reflect"
	"testing"
)

func templates(t *testing.T, typ TemplateType, ctx RequestContext) []string {
	t.Helper()
	return NewHierarchy(HierarchyConfig{}).Templates(typ, ctx)
}

func TestDecodedSlugPrecedesRawOnlyWhenDifferent(t *testing.T) {
	encoded := RequestContext{
		IsCategory: true,
		Object:     Term{ID: 3, Slug: "caf%C3%A9", Taxonomy: "category"},
	}
	got := templates(t, TypeCategory, encoded)
	want := []string{"category-café.twig", "category-caf%C3%A9.twig", "category-3.twig", "category.twig"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("encoded slug: got %v, want %v", got, want)
	}

	plain := RequestContext{
		IsCategory: true,
		Object:     Term{ID: 3, Slug: "plain", Taxonomy: "category"},
	}
	got = templates(t, TypeCategory, plain)
	want = []string{"category-plain.twig", "category-3.twig", "category.twig"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("plain slug: got %v, want %v", got, want)
	}
}

func TestTagLadderMirrorsCategory(t *testing.T) {
	ctx := RequestContext{
		IsTag:  true,
		Object: Term{ID: 11, Slug: "go", Taxonomy: "tag"},
	}
	got := templates(t, TypeTag, ctx)
	want := []string{"tag-go.twig", "tag-11.twig", "tag.twig"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTaxonomyLadder(t *testing.T) {
	ctx := RequestContext{
		IsTaxonomy: true,
		Object:     Term{ID: 7, Slug: "sci%20fi", Taxonomy: "genre"},
	}
	got := templates(t, TypeTaxonomy, ctx)
	want := []string{
		"taxonomy-genre-sci fi.twig",
		"taxonomy-genre-sci%20fi.twig",
		"taxonomy-genre.twig",
		"taxonomy.twig",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Wrong object variant contributes only the base candidate.
	bare := templates(t, TypeTaxonomy, RequestContext{IsTaxonomy: true, Object: Post{Type: "post"}})
	if !reflect.DeepEqual(bare, []string{"taxonomy.twig"}) {
		t.Errorf("variant mismatch: got %v, want [taxonomy.twig]", bare)
	}
}

func TestAuthorLadder(t *testing.T) {
	ctx := RequestContext{IsAuthor: true, Object: User{ID: 7, Nicename: "jane"}}
	got := templates(t, TypeAuthor, ctx)
	want := []string{"author-jane.twig", "author-7.twig", "author.twig"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	noUser := templates(t, TypeAuthor, RequestContext{IsAuthor: true})
	if !reflect.DeepEqual(noUser, []string{"author.twig"}) {
		t.Errorf("no user: got %v, want [author.twig]", noUser)
	}
}

func TestPageLadder(t *testing.T) {
	ctx := RequestContext{
		IsPage: true,
		Object: Post{ID: 7, Type: "page", Name: "about", Template: "layouts/wide"},
	}
	got := templates(t, TypePage, ctx)
	want := []string{"layouts/wide.twig", "page-about.twig", "page-7.twig", "page.twig"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	idOnly := templates(t, TypePage, RequestContext{IsPage: true, Object: Post{ID: 7, Type: "page"}})
	if !reflect.DeepEqual(idOnly, []string{"page-7.twig", "page.twig"}) {
		t.Errorf("id only: got %v, want [page-7.twig page.twig]", idOnly)
	}

	noObject := templates(t, TypePage, RequestContext{IsPage: true})
	if !reflect.DeepEqual(noObject, []string{"page.twig"}) {
		t.Errorf("no object: got %v, want [page.twig]", noObject)
	}
}

func TestSingleTemplateOverrideValidation(t *testing.T) {
	safe := RequestContext{
		IsSingle: true,
		Object:   Post{ID: 1, Type: "post", Name: "a", Template: "custom/full-width"},
	}
	got := templates(t, TypeSingle, safe)
	if got[0] != "custom/full-width.twig" {
		t.Errorf("safe override: first candidate = %q, want custom/full-width.twig", got[0])
	}

	// Traversal attempts are dropped silently, never an error.
	for _, bad := range []string{"../../etc/passwd", "./hidden", "/abs/path", "c:evil"} {
		ctx := RequestContext{
			IsSingle: true,
			Object:   Post{ID: 1, Type: "post", Name: "a", Template: bad},
		}
		got := templates(t, TypeSingle, ctx)
		want := []string{"single-post-a.twig", "single-post.twig", "single.twig"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("override %q: got %v, want %v", bad, got, want)
		}
	}
}

func TestEmbedLadder(t *testing.T) {
	withFormat := RequestContext{
		IsEmbed: true,
		Object:  Post{Type: "post", Name: "clip", Format: "video"},
	}
	got := templates(t, TypeEmbed, withFormat)
	want := []string{"embed-post-video.twig", "embed-post.twig", "embed.twig"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("with format: got %v, want %v", got, want)
	}

	noFormat := templates(t, TypeEmbed, RequestContext{IsEmbed: true, Object: Post{Type: "post", Name: "clip"}})
	if !reflect.DeepEqual(noFormat, []string{"embed-post.twig", "embed.twig"}) {
		t.Errorf("no format: got %v", noFormat)
	}

	noObject := templates(t, TypeEmbed, RequestContext{IsEmbed: true})
	if !reflect.DeepEqual(noObject, []string{"embed.twig"}) {
		t.Errorf("no object: got %v", noObject)
	}
}

func TestAttachmentLadder(t *testing.T) {
	image := RequestContext{
		IsAttachment: true,
		Object:       Attachment{Post: Post{Type: "attachment", Name: "cat"}, MimeType: "image/png"},
	}
	got := templates(t, TypeAttachment, image)
	want := []string{"image-png.twig", "png.twig", "image.twig", "attachment.twig"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("image/png: got %v, want %v", got, want)
	}

	noSubtype := RequestContext{
		IsAttachment: true,
		Object:       Attachment{Post: Post{Type: "attachment", Name: "blob"}, MimeType: "application"},
	}
	got = templates(t, TypeAttachment, noSubtype)
	want = []string{"application.twig", "attachment.twig"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("bare mime: got %v, want %v", got, want)
	}

	noObject := templates(t, TypeAttachment, RequestContext{IsAttachment: true})
	if !reflect.DeepEqual(noObject, []string{"attachment.twig"}) {
		t.Errorf("no object: got %v", noObject)
	}
}

func TestAttachmentSatisfiesSingleLadder(t *testing.T) {
	ctx := RequestContext{
		IsSingle: true,
		Object:   Attachment{Post: Post{ID: 3, Type: "attachment", Name: "cat"}, MimeType: "image/png"},
	}
	got := templates(t, TypeSingle, ctx)
	want := []string{"single-attachment-cat.twig", "single-attachment.twig", "single.twig"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestArchiveLadder(t *testing.T) {
	one := templates(t, TypeArchive, RequestContext{IsArchive: true, PostTypes: []string{"book"}})
	if !reflect.DeepEqual(one, []string{"archive-book.twig", "archive.twig"}) {
		t.Errorf("one type: got %v", one)
	}

	// archive-{type} needs exactly one post type in the query.
	two := templates(t, TypeArchive, RequestContext{IsArchive: true, PostTypes: []string{"book", "post"}})
	if !reflect.DeepEqual(two, []string{"archive.twig"}) {
		t.Errorf("two types: got %v", two)
	}

	none := templates(t, TypeArchive, RequestContext{IsArchive: true})
	if !reflect.DeepEqual(none, []string{"archive.twig"}) {
		t.Errorf("no types: got %v", none)
	}
}

func TestFixedLadders(t *testing.T) {
	cases := map[TemplateType][]string{
		TypeIndex:     {"index.twig"},
		Type404:       {"404.twig"},
		TypeDate:      {"date.twig"},
		TypeHome:      {"home.twig", "index.twig"},
		TypeFrontPage: {"front-page.twig"},
		TypeSearch:    {"search.twig"},
		TypeSingular:  {"singular.twig"},
	}
	for typ, want := range cases {
		if got := templates(t, typ, RequestContext{}); !reflect.DeepEqual(got, want) {
			t.Errorf("%s: got %v, want %v", typ, got, want)
		}
	}
}
