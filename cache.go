package themekit

import (
	"sync"
	"time"
)

// ContentCache is a TTL read-through cache over the Store, used on the
// classification hot path so resolving a queried object does not hit SQLite
// on every request. Resolution output itself is never cached; only content.
type ContentCache struct {
	mu      sync.RWMutex
	posts   map[string]PostRecord // keyed type + "/" + name, published only
	terms   map[string]Term       // keyed taxonomy + "/" + slug
	users   map[string]User       // keyed nicename
	fetched time.Time
	ttl     time.Duration
	store   *Store
}

// NewContentCache creates a ContentCache backed by the given Store.
func NewContentCache(s *Store, ttl time.Duration) *ContentCache {
	return &ContentCache{store: s, ttl: ttl}
}

func (c *ContentCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *ContentCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.terms = nil
	c.users = nil
	c.mu.Unlock()
}

func (c *ContentCache) load() error {
	if c.valid() {
		return nil
	}
	posts, err := c.store.ListPosts("")
	if err != nil {
		return err
	}
	terms, err := c.store.ListTerms()
	if err != nil {
		return err
	}
	users, err := c.store.ListUsers()
	if err != nil {
		return err
	}
	c.posts = make(map[string]PostRecord, len(posts))
	for _, p := range posts {
		c.posts[p.Type+"/"+p.Name] = p
	}
	c.terms = make(map[string]Term, len(terms))
	for _, t := range terms {
		c.terms[t.Taxonomy+"/"+t.Slug] = t
	}
	c.users = make(map[string]User, len(users))
	for _, u := range users {
		c.users[u.Nicename] = u
	}
	c.fetched = time.Now()
	return nil
}

// ensureLoaded refreshes the cache if stale. It tries a read lock first and
// only takes a write lock when a reload is needed.
func (c *ContentCache) ensureLoaded() error {
	c.mu.RLock()
	if c.valid() {
		c.mu.RUnlock()
		return nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// GetPost returns a published post by type and name.
func (c *ContentCache) GetPost(postType, name string) (PostRecord, error) {
	if err := c.ensureLoaded(); err != nil {
		return PostRecord{}, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.posts[postType+"/"+name]
	if !ok {
		return PostRecord{}, ErrNotFound
	}
	return p, nil
}

// ListPosts returns published posts of the given type, or every type when
// postType is empty. Listings pass through to the store so order stays
// newest-first; only keyed lookups are cached.
func (c *ContentCache) ListPosts(postType string) ([]PostRecord, error) {
	return c.store.ListPosts(postType)
}

// GetTerm returns a term by taxonomy and slug.
func (c *ContentCache) GetTerm(taxonomy, slug string) (Term, error) {
	if err := c.ensureLoaded(); err != nil {
		return Term{}, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.terms[taxonomy+"/"+slug]
	if !ok {
		return Term{}, ErrNotFound
	}
	return t, nil
}

// GetUser returns a user by nicename.
func (c *ContentCache) GetUser(nicename string) (User, error) {
	if err := c.ensureLoaded(); err != nil {
		return User{}, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	u, ok := c.users[nicename]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}
