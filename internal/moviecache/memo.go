package moviecache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"trini/internal/candidate"
)

// sharedLookupTimeout bounds a backend call shared by several callers, which
// outlives the cancellation of whichever caller started it.
const sharedLookupTimeout = 10 * time.Second

type memoEntry struct {
	records []candidate.Raw
	expires time.Time
}

// Memo caches Lookup results in memory for ttl and collapses concurrent
// lookups of the same key into one backend call. Errors are not memoized.
type Memo struct {
	next    Lookup
	ttl     time.Duration
	now     func() time.Time
	group   singleflight.Group
	mu      sync.Mutex
	entries map[string]memoEntry
}

// NewMemo wraps next. A ttl of zero disables memoization but keeps
// duplicate suppression.
func NewMemo(next Lookup, ttl time.Duration) *Memo {
	return &Memo{
		next:    next,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoEntry),
	}
}

// Lookup returns memoized records for key, consulting the backend on a miss.
func (m *Memo) Lookup(ctx context.Context, key string) ([]candidate.Raw, error) {
	if records, ok := m.cached(key); ok {
		return records, nil
	}
	ch := m.group.DoChan(key, func() (any, error) {
		shared, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedLookupTimeout)
		defer cancel()
		records, err := m.next.Lookup(shared, key)
		if err != nil {
			return nil, err
		}
		if m.ttl > 0 {
			m.mu.Lock()
			m.entries[key] = memoEntry{records: records, expires: m.now().Add(m.ttl)}
			m.mu.Unlock()
		}
		return records, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		records, _ := res.Val.([]candidate.Raw)
		return records, nil
	}
}

// Invalidate drops every memoized key.
func (m *Memo) Invalidate() {
	m.mu.Lock()
	clear(m.entries)
	m.mu.Unlock()
}

func (m *Memo) cached(key string) ([]candidate.Raw, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if m.now().After(entry.expires) {
		delete(m.entries, key)
		return nil, false
	}
	return entry.records, true
}
