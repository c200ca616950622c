package compare

import (
	"sort"
	"strings"
	"sync"
	"time"

	"pricescout/internal/models"
)

// ResultCache memoizes comparison outcomes for a bounded duration. An
// expired entry is treated as absent and dropped on read; the next
// successful computation overwrites it. There is no capacity bound —
// the key space is (query, platform set) and grows with distinct queries.
type ResultCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

type cacheEntry struct {
	result    models.ComparisonResult
	createdAt time.Time
}

func NewResultCache(ttl time.Duration) *ResultCache {
	return &ResultCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Key derives a deterministic cache key from the query title and the
// platform set. Platforms are deduplicated and sorted so request order
// never splits the cache.
func Key(title string, platforms []string) string {
	seen := make(map[string]struct{}, len(platforms))
	uniq := make([]string, 0, len(platforms))
	for _, p := range platforms {
		p = strings.ToLower(strings.TrimSpace(p))
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		uniq = append(uniq, p)
	}
	sort.Strings(uniq)
	return title + "_" + strings.Join(uniq, ",")
}

func (c *ResultCache) Get(key string) (models.ComparisonResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return models.ComparisonResult{}, false
	}
	if c.now().Sub(entry.createdAt) >= c.ttl {
		delete(c.entries, key)
		return models.ComparisonResult{}, false
	}
	return entry.result, true
}

func (c *ResultCache) Put(key string, result models.ComparisonResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{result: result, createdAt: c.now()}
}
