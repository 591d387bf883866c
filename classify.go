package themekit

import (
	"net/url"
	"strings"
)

// Classifier maps an incoming request path onto a RequestContext. It is the
// seam between routing and resolution: the Hierarchy only ever sees the
// snapshot built here, so embedding code with its own routing can skip the
// Classifier entirely and construct RequestContext values directly.
//
// Route shapes understood:
//
//	/                          home, or the configured static front page
//	/?s=term                   search
//	/embed/{type}/{name}       embedded single post
//	/category/{slug}           category archive
//	/tag/{slug}                tag archive
//	/tax/{taxonomy}/{slug}     custom taxonomy archive
//	/author/{nicename}         author archive
//	/date/{yyyy}[/{mm}[/{dd}]] date archive
//	/attachment/{name}         attachment page
//	/{type}                    post type archive
//	/{type}/{name}             single post of a registered type
//	/{pagename}                page, falling back to a post named the same
//
// Anything else, and any lookup that finds no content, classifies as 404.
type Classifier struct {
	cfg   SiteConfig
	cache *ContentCache
}

// NewClassifier creates a Classifier over the given config and content cache.
func NewClassifier(cfg SiteConfig, cache *ContentCache) *Classifier {
	return &Classifier{cfg: cfg, cache: cache}
}

// Classify builds the RequestContext for a request path and query. Lookup
// errors degrade to a 404 classification; Classify never fails.
func (cl *Classifier) Classify(path string, query url.Values) RequestContext {
	if query.Get("s") != "" {
		return RequestContext{IsSearch: true}
	}

	segs := splitPath(path)
	switch len(segs) {
	case 0:
		return cl.classifyRoot()
	case 1:
		return cl.classifyOne(segs[0])
	case 2:
		return cl.classifyTwo(segs[0], segs[1])
	case 3:
		if segs[0] == "embed" {
			return cl.classifyEmbed(segs[1], segs[2])
		}
		if segs[0] == "tax" {
			return cl.classifyTaxonomy(segs[1], segs[2])
		}
		if segs[0] == "date" {
			return RequestContext{IsDate: true, IsArchive: true}
		}
	case 4:
		if segs[0] == "date" {
			return RequestContext{IsDate: true, IsArchive: true}
		}
	}
	return RequestContext{Is404: true}
}

func (cl *Classifier) classifyRoot() RequestContext {
	if cl.cfg.FrontPage == "" {
		return RequestContext{IsHome: true, PostTypes: []string{"post"}}
	}
	ctx := RequestContext{IsFrontPage: true, IsPage: true, IsSingular: true}
	if page, err := cl.cache.GetPost("page", cl.cfg.FrontPage); err == nil {
		ctx.Object = page.Post
		ctx.PostTypes = []string{"page"}
	}
	return ctx
}

func (cl *Classifier) classifyOne(seg string) RequestContext {
	switch seg {
	case "search":
		return RequestContext{IsSearch: true}
	case "date":
		return RequestContext{IsDate: true, IsArchive: true}
	}
	if isYear(seg) {
		return RequestContext{IsDate: true, IsArchive: true}
	}
	if seg != "page" && seg != "attachment" && cl.cfg.hasPostType(seg) {
		return RequestContext{
			IsPostTypeArchive: true,
			IsArchive:         true,
			PostTypes:         []string{seg},
		}
	}
	if page, err := cl.cache.GetPost("page", seg); err == nil {
		return RequestContext{
			IsPage:     true,
			IsSingular: true,
			PostTypes:  []string{"page"},
			Object:     page.Post,
		}
	}
	if post, err := cl.cache.GetPost("post", seg); err == nil {
		return RequestContext{
			IsSingle:   true,
			IsSingular: true,
			PostTypes:  []string{"post"},
			Object:     post.Post,
		}
	}
	return RequestContext{Is404: true}
}

func (cl *Classifier) classifyTwo(first, second string) RequestContext {
	switch first {
	case "category":
		return cl.classifyTerm("category", second, RequestContext{IsCategory: true, IsArchive: true})
	case "tag":
		return cl.classifyTerm("tag", second, RequestContext{IsTag: true, IsArchive: true})
	case "author":
		ctx := RequestContext{IsAuthor: true, IsArchive: true}
		if u, err := cl.cache.GetUser(second); err == nil {
			ctx.Object = u
		}
		return ctx
	case "attachment":
		if att, err := cl.cache.GetPost("attachment", second); err == nil {
			return RequestContext{
				IsAttachment: true,
				IsSingle:     true,
				IsSingular:   true,
				PostTypes:    []string{"attachment"},
				Object:       att.attachment(),
			}
		}
		return RequestContext{Is404: true}
	case "date":
		return RequestContext{IsDate: true, IsArchive: true}
	}
	if isYear(first) {
		return RequestContext{IsDate: true, IsArchive: true}
	}
	if cl.cfg.hasPostType(first) {
		if post, err := cl.cache.GetPost(first, second); err == nil {
			ctx := RequestContext{
				IsSingular: true,
				PostTypes:  []string{first},
				Object:     post.Post,
			}
			if first == "page" {
				ctx.IsPage = true
			} else {
				ctx.IsSingle = true
			}
			return ctx
		}
	}
	return RequestContext{Is404: true}
}

// classifyTerm fills the term object for an already-flagged archive context.
// An unknown term is a 404, matching how term archives behave upstream.
func (cl *Classifier) classifyTerm(taxonomy, slug string, ctx RequestContext) RequestContext {
	t, err := cl.cache.GetTerm(taxonomy, slug)
	if err != nil {
		return RequestContext{Is404: true}
	}
	ctx.Object = t
	return ctx
}

func (cl *Classifier) classifyTaxonomy(taxonomy, slug string) RequestContext {
	if !cl.cfg.hasTaxonomy(taxonomy) {
		return RequestContext{Is404: true}
	}
	return cl.classifyTerm(taxonomy, slug, RequestContext{IsTaxonomy: true, IsArchive: true})
}

func (cl *Classifier) classifyEmbed(postType, name string) RequestContext {
	ctx := RequestContext{IsEmbed: true}
	if !cl.cfg.hasPostType(postType) {
		return ctx
	}
	if post, err := cl.cache.GetPost(postType, name); err == nil {
		ctx.IsSingle = true
		ctx.IsSingular = true
		ctx.PostTypes = []string{postType}
		ctx.Object = post.Post
	}
	return ctx
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func isYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
