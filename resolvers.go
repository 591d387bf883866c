package themekit

import (
	"strconv"
	"strings"
)

// Category resolvers. Each encodes one category's specificity ladder and
// returns bare candidate names, most specific first. Missing data shortens
// the list; it never produces an error. Percent-decoded slug variants are
// inserted before the raw form, and only when decoding changes the value;
// the raw form always stays.

func resolveIndex(RequestContext) []string {
	return []string{"index"}
}

func resolve404(RequestContext) []string {
	return []string{"404"}
}

func resolveArchive(ctx RequestContext) []string {
	var c []string
	if len(ctx.PostTypes) == 1 {
		c = append(c, "archive-"+ctx.PostTypes[0])
	}
	return append(c, "archive")
}

// resolvePostTypeArchive delegates to the archive ladder, but only for post
// types that declare an archive. An unknown post type counts as no-archive,
// so the category contributes nothing rather than failing.
func (h *Hierarchy) resolvePostTypeArchive(ctx RequestContext) []string {
	if len(ctx.PostTypes) == 0 || h.lookup == nil {
		return nil
	}
	pt, ok := h.lookup(ctx.PostTypes[0])
	if !ok || !pt.HasArchive {
		return nil
	}
	return resolveArchive(ctx)
}

func resolveAuthor(ctx RequestContext) []string {
	var c []string
	if u, ok := ctx.user(); ok {
		c = append(c, "author-"+u.Nicename, "author-"+strconv.FormatInt(u.ID, 10))
	}
	return append(c, "author")
}

func resolveCategory(ctx RequestContext) []string {
	return termLadder(ctx, "category")
}

func resolveTag(ctx RequestContext) []string {
	return termLadder(ctx, "tag")
}

// termLadder is the shared category/tag ladder: decoded slug, raw slug,
// numeric id, then the bare category name.
func termLadder(ctx RequestContext, prefix string) []string {
	var c []string
	if t, ok := ctx.term(); ok && t.Slug != "" {
		if decoded := decodeSlug(t.Slug); decoded != t.Slug {
			c = append(c, prefix+"-"+decoded)
		}
		c = append(c, prefix+"-"+t.Slug, prefix+"-"+strconv.FormatInt(t.ID, 10))
	}
	return append(c, prefix)
}

func resolveTaxonomy(ctx RequestContext) []string {
	var c []string
	if t, ok := ctx.term(); ok && t.Slug != "" {
		if decoded := decodeSlug(t.Slug); decoded != t.Slug {
			c = append(c, "taxonomy-"+t.Taxonomy+"-"+decoded)
		}
		c = append(c, "taxonomy-"+t.Taxonomy+"-"+t.Slug, "taxonomy-"+t.Taxonomy)
	}
	return append(c, "taxonomy")
}

func resolveDate(RequestContext) []string {
	return []string{"date"}
}

// resolveHome carries its own index fallback in addition to the one the
// composer appends; the duplicate is deliberate and harmless downstream.
func resolveHome(RequestContext) []string {
	return []string{"home", "index"}
}

func resolveFrontPage(RequestContext) []string {
	return []string{"front-page"}
}

func resolvePage(ctx RequestContext) []string {
	var c []string
	if p, ok := ctx.post(); ok {
		if p.Template != "" {
			c = append(c, p.Template)
		}
		if p.Name != "" {
			if decoded := decodeSlug(p.Name); decoded != p.Name {
				c = append(c, "page-"+decoded)
			}
			c = append(c, "page-"+p.Name)
		}
		if p.ID != 0 {
			c = append(c, "page-"+strconv.FormatInt(p.ID, 10))
		}
	}
	return append(c, "page")
}

func resolveSearch(RequestContext) []string {
	return []string{"search"}
}

// resolveSingle drops an unsafe template override silently; a traversal
// attempt in stored data must never abort resolution.
func resolveSingle(ctx RequestContext) []string {
	var c []string
	if p, ok := ctx.post(); ok && p.Type != "" {
		if p.Template != "" && isSafeRelative(p.Template) {
			c = append(c, p.Template)
		}
		if decoded := decodeSlug(p.Name); decoded != p.Name {
			c = append(c, "single-"+p.Type+"-"+decoded)
		}
		c = append(c, "single-"+p.Type+"-"+p.Name, "single-"+p.Type)
	}
	return append(c, "single")
}

func resolveEmbed(ctx RequestContext) []string {
	var c []string
	if p, ok := ctx.post(); ok && p.Type != "" {
		if p.Format != "" {
			c = append(c, "embed-"+p.Type+"-"+p.Format)
		}
		c = append(c, "embed-"+p.Type)
	}
	return append(c, "embed")
}

func resolveSingular(RequestContext) []string {
	return []string{"singular"}
}

func resolveAttachment(ctx RequestContext) []string {
	var c []string
	if a, ok := ctx.attachment(); ok && a.MimeType != "" {
		typ, sub, _ := strings.Cut(a.MimeType, "/")
		if sub != "" {
			c = append(c, typ+"-"+sub, sub)
		}
		c = append(c, typ)
	}
	return append(c, "attachment")
}
