package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"pricescout/internal/httputil"
	"pricescout/internal/stealth"
)

// PageFetcher retrieves raw markup for a URL. An empty string with a nil
// error means "no data from this source" and is not a failure.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// BackoffFunc maps a zero-based attempt number to the delay before the
// next attempt.
type BackoffFunc func(attempt int) time.Duration

// ExponentialBackoff waits 2^attempt seconds: 1s, 2s, 4s, ...
func ExponentialBackoff(attempt int) time.Duration {
	return time.Duration(1<<uint(attempt)) * time.Second
}

// Fetcher retrieves search result pages with bounded retries. A URL
// disallowed by robots.txt, or one that keeps failing after all retries,
// yields empty content so one dead source cannot abort a comparison.
type Fetcher struct {
	client     *http.Client
	robots     *stealth.RobotsChecker
	userAgent  string
	maxRetries int
	backoff    BackoffFunc
	sleep      func(ctx context.Context, d time.Duration) error

	// fallback, when set, is consulted after the static fetch comes back
	// empty (e.g. a headless browser for JS-rendered result pages).
	fallback PageFetcher
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithBackoff overrides the backoff policy.
func WithBackoff(b BackoffFunc) Option {
	return func(f *Fetcher) { f.backoff = b }
}

// WithSleep overrides the sleep function (used by tests to avoid real waits).
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(f *Fetcher) { f.sleep = sleep }
}

// WithFallback sets a secondary fetcher tried when the static fetch
// produces no content.
func WithFallback(fb PageFetcher) Option {
	return func(f *Fetcher) { f.fallback = fb }
}

// NewFetcher creates a Fetcher. robots may be nil when policy checking is
// handled elsewhere or disabled.
func NewFetcher(client *http.Client, robots *stealth.RobotsChecker, userAgent string, maxRetries int, opts ...Option) *Fetcher {
	f := &Fetcher{
		client:     client,
		robots:     robots,
		userAgent:  userAgent,
		maxRetries: maxRetries,
		backoff:    ExponentialBackoff,
		sleep:      sleepCtx,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the page markup, or "" when the URL is disallowed by the
// origin's crawl policy or every attempt failed.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.robots != nil && !f.robots.IsAllowed(f.userAgent, url) {
		return "", nil
	}

	body, err := f.fetchWithRetry(ctx, url)
	if err != nil {
		return "", err
	}
	if body == "" && f.fallback != nil {
		return f.fallback.Fetch(ctx, url)
	}
	return body, nil
}

func (f *Fetcher) fetchWithRetry(ctx context.Context, url string) (string, error) {
	for attempt := 0; attempt < f.maxRetries; attempt++ {
		body, err := f.attempt(ctx, url)
		if err == nil {
			return body, nil
		}
		if attempt == f.maxRetries-1 {
			break
		}
		if serr := f.sleep(ctx, f.backoff(attempt)); serr != nil {
			return "", serr
		}
	}
	// Exhausted retries: contribute nothing rather than failing the
	// whole comparison.
	return "", nil
}

func (f *Fetcher) attempt(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	body, err := httputil.ReadBody(resp)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
