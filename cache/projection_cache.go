package cache

import (
	"sync"
	"time"

	"github.com/capoeira360/Craft-Art-Market-sub000/catalog"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
)

const (
	TTL = 5 * time.Minute

	// DefaultMaxEntries bounds memory when visitors send many distinct
	// filter combinations.
	DefaultMaxEntries = 1024
)

// ── Projection cache ────────────────────────────────────────────────────────
// A view is keyed by everything it depends on: catalog kind, collection
// version and the normalized filter state. A change to any of them is a new
// key, so an entry can only go stale by age.
// Category match mode is part of the key as well.

type projectionEntry struct {
	view      models.CatalogView
	fetchedAt time.Time
}

type ProjectionCache struct {
	ttl        time.Duration
	maxEntries int
	now        func() time.Time

	mu      sync.RWMutex
	entries map[string]projectionEntry
}

func NewProjectionCache(ttl time.Duration, maxEntries int) *ProjectionCache {
	if ttl <= 0 {
		ttl = TTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &ProjectionCache{
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
		entries:    make(map[string]projectionEntry),
	}
}

// ProjectionKey joins the full dependency set of a projection.
func ProjectionKey(c *catalog.Collection, state models.FilterState) string {
	return string(c.Kind) + "@" + c.Version + "/" + string(c.MatchMode) + "|" + state.CacheKey()
}

func (c *ProjectionCache) Get(key string) (models.CatalogView, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if ok && c.now().Sub(e.fetchedAt) < c.ttl {
		return e.view, true
	}
	return models.CatalogView{}, false
}

func (c *ProjectionCache) Set(key string, view models.CatalogView) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.maxEntries {
		c.evictLocked()
	}
	c.entries[key] = projectionEntry{view: view, fetchedAt: c.now()}
}

func (c *ProjectionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// evictLocked drops expired entries, and everything if none had expired.
func (c *ProjectionCache) evictLocked() {
	now := c.now()
	for k, e := range c.entries {
		if now.Sub(e.fetchedAt) >= c.ttl {
			delete(c.entries, k)
		}
	}
	if len(c.entries) >= c.maxEntries {
		c.entries = make(map[string]projectionEntry)
	}
}
