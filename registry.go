package themekit

// TemplateType identifies one rung of the template hierarchy. It names both
// a category resolver and the key under which extension transforms register.
type TemplateType string

const (
	TypeIndex           TemplateType = "index"
	Type404             TemplateType = "404"
	TypeArchive         TemplateType = "archive"
	TypePostTypeArchive TemplateType = "post-type-archive"
	TypeAuthor          TemplateType = "author"
	TypeCategory        TemplateType = "category"
	TypeTag             TemplateType = "tag"
	TypeTaxonomy        TemplateType = "taxonomy"
	TypeDate            TemplateType = "date"
	TypeHome            TemplateType = "home"
	TypeFrontPage       TemplateType = "front-page"
	TypePage            TemplateType = "page"
	TypeSearch          TemplateType = "search"
	TypeSingle          TemplateType = "single"
	TypeEmbed           TemplateType = "embed"
	TypeSingular        TemplateType = "singular"
	TypeAttachment      TemplateType = "attachment"

	// TypeGlobal keys transforms that run once over the fully composed
	// candidate list, after every active category has contributed and the
	// index fallback has been appended.
	TypeGlobal TemplateType = ""
)

// Transform rewrites a candidate list. Transforms receive bare names (no
// extension suffix) and may reorder, filter, add, or replace candidates
// wholesale. Transforms must be pure; they run on every resolution.
type Transform func(candidates []string) []string

// Registry holds ordered transform chains keyed by template type. Chains run
// in registration order; a key with no chain is the identity.
//
// Registration is additive and expected to happen during startup, before
// concurrent resolution begins. The registry does not synchronize access.
type Registry struct {
	transforms map[TemplateType][]Transform
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{transforms: make(map[TemplateType][]Transform)}
}

// Register appends fn to the chain for t. Use TypeGlobal to transform the
// fully composed list instead of a single category's output.
func (r *Registry) Register(t TemplateType, fn Transform) {
	if fn == nil {
		return
	}
	r.transforms[t] = append(r.transforms[t], fn)
}

// apply runs the chain registered under t over candidates, in order.
func (r *Registry) apply(t TemplateType, candidates []string) []string {
	if r == nil {
		return candidates
	}
	for _, fn := range r.transforms[t] {
		candidates = fn(candidates)
	}
	return candidates
}
