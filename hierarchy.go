package themekit

// Hierarchy resolves a classified request into an ordered list of candidate
// view names, most specific first. The list always ends with the suffixed
// index fallback (barring a global transform that removes it), so a renderer
// that walks it in order and takes the first existing view never comes up
// empty by construction.
//
// The extension suffix and the transform registry are shared, mutable state:
// configure both during startup, before concurrent resolution begins. Writes
// that precede all reads need no locking, and Hierarchy does none.
type Hierarchy struct {
	ext    string
	lookup PostTypeLookup
	reg    *Registry
}

// HierarchyConfig configures a Hierarchy. The zero value is usable: the
// extension defaults to "twig", post type lookups report no archive, and a
// fresh empty registry is created.
type HierarchyConfig struct {
	// Extension is the suffix appended to every candidate, without the
	// leading dot (a leading dot is stripped if present).
	Extension string

	// PostTypes resolves post type metadata for post-type-archive
	// resolution. Nil means no post type declares an archive.
	PostTypes PostTypeLookup

	// Registry supplies extension transforms. Nil creates an empty one.
	Registry *Registry
}

// DefaultExtension is the candidate suffix used when none is configured.
const DefaultExtension = "twig"

// NewHierarchy creates a Hierarchy from cfg.
func NewHierarchy(cfg HierarchyConfig) *Hierarchy {
	h := &Hierarchy{
		ext:    trimExtension(cfg.Extension),
		lookup: cfg.PostTypes,
		reg:    cfg.Registry,
	}
	if h.ext == "" {
		h.ext = DefaultExtension
	}
	if h.reg == nil {
		h.reg = NewRegistry()
	}
	return h
}

// SetExtension replaces the candidate suffix. A leading dot is stripped, so
// both "twig" and ".twig" configure the same suffix. The change affects every
// candidate produced afterwards.
func (h *Hierarchy) SetExtension(ext string) {
	h.ext = trimExtension(ext)
}

// Extension returns the current candidate suffix, without the leading dot.
func (h *Hierarchy) Extension() string {
	return h.ext
}

// Registry returns the transform registry, for callers registering
// extension-point transforms.
func (h *Hierarchy) Registry() *Registry {
	return h.reg
}

// activation pairs a template type with the context flag that activates it.
type activation struct {
	kind   TemplateType
	active func(RequestContext) bool
}

// activationOrder is the fixed order in which categories contribute their
// candidates. Every active category contributes; a less specific category
// that is also active (archive after taxonomy, singular after single) adds
// trailing, lower-priority fallbacks rather than being suppressed.
var activationOrder = []activation{
	{TypeEmbed, func(rc RequestContext) bool { return rc.IsEmbed }},
	{Type404, func(rc RequestContext) bool { return rc.Is404 }},
	{TypeSearch, func(rc RequestContext) bool { return rc.IsSearch }},
	{TypeFrontPage, func(rc RequestContext) bool { return rc.IsFrontPage }},
	{TypeHome, func(rc RequestContext) bool { return rc.IsHome }},
	{TypePostTypeArchive, func(rc RequestContext) bool { return rc.IsPostTypeArchive }},
	{TypeTaxonomy, func(rc RequestContext) bool { return rc.IsTaxonomy }},
	{TypeAttachment, func(rc RequestContext) bool { return rc.IsAttachment }},
	{TypeSingle, func(rc RequestContext) bool { return rc.IsSingle }},
	{TypePage, func(rc RequestContext) bool { return rc.IsPage }},
	{TypeSingular, func(rc RequestContext) bool { return rc.IsSingular }},
	{TypeCategory, func(rc RequestContext) bool { return rc.IsCategory }},
	{TypeTag, func(rc RequestContext) bool { return rc.IsTag }},
	{TypeAuthor, func(rc RequestContext) bool { return rc.IsAuthor }},
	{TypeDate, func(rc RequestContext) bool { return rc.IsDate }},
	{TypeArchive, func(rc RequestContext) bool { return rc.IsArchive }},
}

// Resolve composes the full candidate list for ctx: each active category's
// candidates in activation order, the index fallback, the global transform
// chain, then the extension suffix.
func (h *Hierarchy) Resolve(ctx RequestContext) []string {
	var all []string
	for _, step := range activationOrder {
		if !step.active(ctx) {
			continue
		}
		all = append(all, h.category(step.kind, ctx)...)
	}
	all = append(all, h.category(TypeIndex, ctx)...)
	all = h.reg.apply(TypeGlobal, all)
	return h.suffixed(all)
}

// Templates returns one category's suffixed candidates, with that category's
// transforms applied, without composing the rest of the hierarchy. An empty
// list means the category contributes nothing for ctx.
func (h *Hierarchy) Templates(t TemplateType, ctx RequestContext) []string {
	return h.suffixed(h.category(t, ctx))
}

// category runs one resolver plus its transform chain, returning bare names.
func (h *Hierarchy) category(t TemplateType, ctx RequestContext) []string {
	return h.reg.apply(t, h.candidates(t, ctx))
}

func (h *Hierarchy) candidates(t TemplateType, ctx RequestContext) []string {
	switch t {
	case TypeIndex:
		return resolveIndex(ctx)
	case Type404:
		return resolve404(ctx)
	case TypeArchive:
		return resolveArchive(ctx)
	case TypePostTypeArchive:
		return h.resolvePostTypeArchive(ctx)
	case TypeAuthor:
		return resolveAuthor(ctx)
	case TypeCategory:
		return resolveCategory(ctx)
	case TypeTag:
		return resolveTag(ctx)
	case TypeTaxonomy:
		return resolveTaxonomy(ctx)
	case TypeDate:
		return resolveDate(ctx)
	case TypeHome:
		return resolveHome(ctx)
	case TypeFrontPage:
		return resolveFrontPage(ctx)
	case TypePage:
		return resolvePage(ctx)
	case TypeSearch:
		return resolveSearch(ctx)
	case TypeSingle:
		return resolveSingle(ctx)
	case TypeEmbed:
		return resolveEmbed(ctx)
	case TypeSingular:
		return resolveSingular(ctx)
	case TypeAttachment:
		return resolveAttachment(ctx)
	}
	return nil
}

// suffixed appends the extension to every bare name.
func (h *Hierarchy) suffixed(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	out := make([]string, len(names))
	for i, n := range names {
		if h.ext == "" {
			out[i] = n
			continue
		}
		out[i] = n + "." + h.ext
	}
	return out
}
