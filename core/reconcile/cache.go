package reconcile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cachedPage holds a fetched page and its build time.
type cachedPage struct {
	page  *Page
	built time.Time
}

// PageCache coalesces identical concurrent page fetches and optionally reuses
// results for a TTL. It serves read-only views and is never used by Reconcile,
// which always fetches fresh data.
type PageCache struct {
	ttl   time.Duration
	mu    sync.RWMutex
	pages map[string]*cachedPage
	sf    singleflight.Group
	now   func() time.Time
}

// NewPageCache creates a page cache. A zero TTL disables reuse but keeps coalescing.
func NewPageCache(ttl time.Duration) *PageCache {
	return &PageCache{
		ttl:   ttl,
		pages: make(map[string]*cachedPage),
		now:   time.Now,
	}
}

// GetPage returns the page for (limit, offset) from cache or the adapter.
func (c *PageCache) GetPage(ctx context.Context, adapter Adapter, limit, offset int) (*Page, error) {
	key := fmt.Sprintf("%s|%d|%d", adapter.Name(), limit, offset)

	if page, ok := c.lookup(key); ok {
		return page, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		if page, ok := c.lookup(key); ok {
			return page, nil
		}

		page, err := adapter.FetchPage(ctx, limit, offset)
		if err != nil {
			return nil, &UpstreamError{Op: fmt.Sprintf("fetch page limit=%d offset=%d", limit, offset), Err: err}
		}

		if c.ttl > 0 {
			c.mu.Lock()
			c.pages[key] = &cachedPage{page: page, built: c.now()}
			c.mu.Unlock()
		}

		return page, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Page), nil
}

// Invalidate drops every cached page.
func (c *PageCache) Invalidate() {
	c.mu.Lock()
	c.pages = make(map[string]*cachedPage)
	c.mu.Unlock()
}

// lookup returns a fresh cached page.
func (c *PageCache) lookup(key string) (*Page, bool) {
	if c.ttl == 0 {
		return nil, false
	}

	c.mu.RLock()
	cached, ok := c.pages[key]
	c.mu.RUnlock()

	if !ok || c.now().Sub(cached.built) > c.ttl {
		return nil, false
	}
	return cached.page, true
}
