package ratelimit

import (
	"context"
	"sync"
	"time"

	"shopassist/internal/search"
)

// MinInterval wraps a searcher and enforces a minimum time between calls.
// Concurrent calls will wait until the interval has elapsed since the last
// call, or return early if the context is canceled.
type MinInterval struct {
	S        search.Searcher
	Interval time.Duration
	mu       sync.Mutex
	last     time.Time
}

func (m *MinInterval) Name() string { return m.S.Name() }

func (m *MinInterval) Search(ctx context.Context, query string) (search.Result, error) {
	if m.Interval > 0 {
		// simple gate: ensure at least Interval since last
		m.mu.Lock()
		wait := time.Until(m.last.Add(m.Interval))
		m.mu.Unlock()
		if wait > 0 {
			t := time.NewTimer(wait)
			defer t.Stop()
			select {
			case <-ctx.Done():
				return search.Result{}, ctx.Err()
			case <-t.C:
			}
		}
	}
	res, err := m.S.Search(ctx, query)
	if m.Interval > 0 {
		m.mu.Lock()
		m.last = time.Now()
		m.mu.Unlock()
	}
	return res, err
}
