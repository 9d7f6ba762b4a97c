package repo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"shogi_insight/internal/domain/analysis"
	"shogi_insight/internal/domain/pattern"
	appErrors "shogi_insight/internal/errors"
)

// DefaultMemoryLimit bounds the in-memory stores when no limit is configured.
const DefaultMemoryLimit = 10000

type memoryEntry struct {
	matches pattern.Matches
	expires time.Time
}

// MemoryRecognitionCache is the in-process cache used when no redis is
// configured. Expired entries are swept on Set at most once per TTL, and a
// full cache evicts the entry closest to expiry.
type MemoryRecognitionCache struct {
	mu        sync.RWMutex
	entries   map[string]memoryEntry
	ttl       time.Duration
	limit     int
	nextSweep time.Time
	now       func() time.Time
}

// NewMemoryRecognitionCache keeps entries for ttl (forever when ttl is zero)
// and at most limit of them.
func NewMemoryRecognitionCache(ttl time.Duration, limit int) *MemoryRecognitionCache {
	if limit <= 0 {
		limit = DefaultMemoryLimit
	}
	return &MemoryRecognitionCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		limit:   limit,
		now:     time.Now,
	}
}

func (c *MemoryRecognitionCache) Get(_ context.Context, board string) (pattern.Matches, error) {
	c.mu.RLock()
	e, ok := c.entries[board]
	c.mu.RUnlock()

	if !ok || c.expired(e, c.now()) {
		return pattern.Matches{}, appErrors.ErrCacheMiss
	}
	return e.matches, nil
}

func (c *MemoryRecognitionCache) Set(_ context.Context, board string, m pattern.Matches) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.ttl > 0 && !now.Before(c.nextSweep) {
		for k, e := range c.entries {
			if c.expired(e, now) {
				delete(c.entries, k)
			}
		}
		c.nextSweep = now.Add(c.ttl)
	}
	if _, ok := c.entries[board]; !ok && len(c.entries) >= c.limit {
		c.evictOldest()
	}

	c.entries[board] = memoryEntry{matches: m, expires: now.Add(c.ttl)}
	return nil
}

func (c *MemoryRecognitionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *MemoryRecognitionCache) expired(e memoryEntry, now time.Time) bool {
	return c.ttl > 0 && now.After(e.expires)
}

func (c *MemoryRecognitionCache) evictOldest() {
	var oldest string
	var at time.Time
	for k, e := range c.entries {
		if oldest == "" || e.expires.Before(at) {
			oldest, at = k, e.expires
		}
	}
	delete(c.entries, oldest)
}

// MemoryAnalysisArchive is the in-process archive used when no mongo is
// configured. It keeps the most recent analyses in a ring; saving into a full
// ring drops the oldest.
type MemoryAnalysisArchive struct {
	mu       sync.RWMutex
	analyses map[string]analysis.Analysis
	ring     []string
	next     int
	size     int
}

func NewMemoryAnalysisArchive(limit int) *MemoryAnalysisArchive {
	if limit <= 0 {
		limit = DefaultMemoryLimit
	}
	return &MemoryAnalysisArchive{
		analyses: make(map[string]analysis.Analysis),
		ring:     make([]string, limit),
	}
}

func (m *MemoryAnalysisArchive) Save(_ context.Context, a analysis.Analysis) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.analyses[a.ID]; ok {
		m.analyses[a.ID] = a
		return nil
	}
	if m.size == len(m.ring) {
		delete(m.analyses, m.ring[m.next])
	} else {
		m.size++
	}
	m.ring[m.next] = a.ID
	m.next = (m.next + 1) % len(m.ring)
	m.analyses[a.ID] = a
	return nil
}

func (m *MemoryAnalysisArchive) Get(_ context.Context, id string) (analysis.Analysis, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.analyses[id]
	if !ok {
		return analysis.Analysis{}, fmt.Errorf("%w: %s", appErrors.ErrAnalysisNotFound, id)
	}
	return a, nil
}

// Recent returns up to limit analyses, newest first.
func (m *MemoryAnalysisArchive) Recent(_ context.Context, limit int) ([]analysis.Analysis, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := m.size
	if limit > 0 && n > limit {
		n = limit
	}
	out := make([]analysis.Analysis, 0, n)
	for i := 1; i <= n; i++ {
		id := m.ring[(m.next-i+len(m.ring))%len(m.ring)]
		out = append(out, m.analyses[id])
	}
	return out, nil
}

func (m *MemoryAnalysisArchive) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.analyses)
}
