package stealth

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
)

// RobotsChecker caches and checks robots.txt rules per origin.
// Entries older than cacheTTL are refetched lazily on the next lookup.
type RobotsChecker struct {
	rules    map[string]*robotstxt.RobotsData
	expiry   map[string]time.Time
	mu       sync.RWMutex
	client   *http.Client
	cacheTTL time.Duration
	enabled  bool
	now      func() time.Time
}

// NewRobotsChecker creates a robots.txt checker. When enabled is false
// every URL is allowed without consulting the origin.
func NewRobotsChecker(client *http.Client, enabled bool, cacheTTL time.Duration) *RobotsChecker {
	if cacheTTL <= 0 {
		cacheTTL = 1 * time.Hour
	}
	return &RobotsChecker{
		rules:    make(map[string]*robotstxt.RobotsData),
		expiry:   make(map[string]time.Time),
		client:   client,
		cacheTTL: cacheTTL,
		enabled:  enabled,
		now:      time.Now,
	}
}

// IsAllowed checks if the given URL may be fetched by userAgent. If the
// origin's robots.txt cannot be fetched or parsed the request is allowed:
// the comparison should not go dark because a policy file is unreachable.
func (r *RobotsChecker) IsAllowed(userAgent, rawURL string) bool {
	if !r.enabled {
		return true
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return true
	}

	origin := u.Scheme + "://" + u.Host
	data, err := r.getRobots(origin)
	if err != nil {
		return true
	}

	group := data.FindGroup(userAgent)
	return group.Test(u.Path)
}

func (r *RobotsChecker) getRobots(origin string) (*robotstxt.RobotsData, error) {
	r.mu.RLock()
	data, ok := r.rules[origin]
	exp, expOK := r.expiry[origin]
	r.mu.RUnlock()

	if ok && expOK && r.now().Before(exp) {
		return data, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock
	if data, ok := r.rules[origin]; ok {
		if exp, ok := r.expiry[origin]; ok && r.now().Before(exp) {
			return data, nil
		}
		// Stale entry: drop and refetch
		delete(r.rules, origin)
		delete(r.expiry, origin)
	}

	resp, err := r.client.Get(origin + "/robots.txt")
	if err != nil {
		return nil, fmt.Errorf("fetch robots.txt: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read robots.txt: %w", err)
	}

	data, err = robotstxt.FromStatusAndBytes(resp.StatusCode, body)
	if err != nil {
		return nil, fmt.Errorf("parse robots.txt: %w", err)
	}

	r.rules[origin] = data
	r.expiry[origin] = r.now().Add(r.cacheTTL)
	return data, nil
}
