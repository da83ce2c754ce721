package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"shopassist/internal/search"
)

// entry stores one cached search result with expiry.
type entry struct {
	expiresAt time.Time
	result    search.Result
}

// Searcher caches results per query for a TTL. Failed results are never
// cached, so a transient provider outage does not stick for a whole TTL.
// Queries are matched case-insensitively after trimming.
type Searcher struct {
	S        search.Searcher
	TTL      time.Duration
	MaxItems int

	mu    sync.RWMutex
	items map[string]entry // key: normalized query
}

func (c *Searcher) Name() string { return c.S.Name() }

// Search returns the cached result for the query when still valid.
func (c *Searcher) Search(ctx context.Context, query string) (search.Result, error) {
	if c.S == nil || c.TTL <= 0 {
		return c.S.Search(ctx, query)
	}

	key := strings.ToLower(strings.TrimSpace(query))
	now := time.Now()

	c.mu.RLock()
	if e, ok := c.items[key]; ok && now.Before(e.expiresAt) {
		c.mu.RUnlock()
		return e.result, nil
	}
	c.mu.RUnlock()

	res, err := c.S.Search(ctx, query)
	if err != nil || res.Failed() {
		return res, err
	}

	c.mu.Lock()
	if c.items == nil {
		c.items = make(map[string]entry)
	}
	c.items[key] = entry{expiresAt: now.Add(c.TTL), result: res}
	// best-effort cap cache size: drop expired entries first, then arbitrary
	if c.MaxItems > 0 && len(c.items) > c.MaxItems {
		for k, v := range c.items {
			if now.After(v.expiresAt) {
				delete(c.items, k)
			}
			if len(c.items) <= c.MaxItems {
				break
			}
		}
		for k := range c.items {
			if len(c.items) <= c.MaxItems {
				break
			}
			delete(c.items, k)
		}
	}
	c.mu.Unlock()

	return res, nil
}
