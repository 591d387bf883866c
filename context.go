package themekit

// RequestContext is an immutable snapshot of how the current request was
// classified. The flags are independent, not mutually exclusive: one URL can
// satisfy several classifications at once (a category archive is also an
// archive, an attachment is also single and singular). The composer's fixed
// activation order, not the flags, decides final candidate ordering.
//
// A RequestContext is built once per request by the classifier (or by the
// caller directly), read by the resolver, and discarded.
type RequestContext struct {
	IsEmbed           bool
	Is404             bool
	IsSearch          bool
	IsFrontPage       bool
	IsHome            bool
	IsPostTypeArchive bool
	IsTaxonomy        bool
	IsAttachment      bool
	IsSingle          bool
	IsPage            bool
	IsSingular        bool
	IsCategory        bool
	IsTag             bool
	IsAuthor          bool
	IsDate            bool
	IsArchive         bool

	// PostTypes lists the post types in the active query. The archive
	// resolver emits an archive-{type} candidate only when exactly one
	// type is present; post-type-archive resolution consults the first.
	PostTypes []string

	// Object is the entity the request resolved to, or nil when the
	// request resolves to no particular entity (404, search, date...).
	Object QueriedObject
}

// QueriedObject is the closed union of entities a request can resolve to.
// Resolvers that need a specific variant silently contribute a shorter
// candidate list on a mismatch; a wrong variant is never an error.
type QueriedObject interface {
	queriedObject()
}

// Post is the queried object behind single, page, and embed requests.
type Post struct {
	ID   int64
	Type string
	Name string

	// Format is the post format, empty when none is set.
	Format string

	// Template is an explicit per-object template override (a bare view
	// name, no extension). Empty when none is set.
	Template string
}

func (Post) queriedObject() {}

// Term is the queried object behind category, tag, and taxonomy archives.
type Term struct {
	ID       int64
	Slug     string
	Taxonomy string
}

func (Term) queriedObject() {}

// User is the queried object behind author archives.
type User struct {
	ID       int64
	Nicename string
}

func (User) queriedObject() {}

// Attachment is a post whose content is an uploaded file.
type Attachment struct {
	Post
	MimeType string
}

// PostType is the registered metadata the resolver consults for a post type.
type PostType struct {
	Name       string `yaml:"name"`
	HasArchive bool   `yaml:"has_archive"`
}

// PostTypeLookup resolves post type metadata by name. Returning ok=false is
// treated as "this type has no archive", never as an error.
type PostTypeLookup func(name string) (PostType, bool)

// post returns the Post variant of the queried object. Attachments count:
// an attachment is a post for single and embed resolution.
func (rc RequestContext) post() (Post, bool) {
	switch o := rc.Object.(type) {
	case Post:
		return o, true
	case Attachment:
		return o.Post, true
	}
	return Post{}, false
}

func (rc RequestContext) term() (Term, bool) {
	t, ok := rc.Object.(Term)
	return t, ok
}

func (rc RequestContext) user() (User, bool) {
	u, ok := rc.Object.(User)
	return u, ok
}

func (rc RequestContext) attachment() (Attachment, bool) {
	a, ok := rc.Object.(Attachment)
	return a, ok
}
