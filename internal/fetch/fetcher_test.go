package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"pricescout/internal/stealth"
)

func TestExponentialBackoff(t *testing.T) {
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 1 * time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
	}
	for _, tt := range tests {
		if got := ExponentialBackoff(tt.attempt); got != tt.want {
			t.Errorf("ExponentialBackoff(%d) = %v; want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestFetchRetriesThenSucceeds(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("<html>payload</html>"))
	}))
	defer srv.Close()

	var slept []time.Duration
	f := NewFetcher(srv.Client(), nil, "test-agent", 5,
		WithSleep(func(ctx context.Context, d time.Duration) error {
			slept = append(slept, d)
			return nil
		}))

	body, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if body != "<html>payload</html>" {
		t.Errorf("body = %q; want page payload", body)
	}
	if len(slept) != 2 || slept[0] != 1*time.Second || slept[1] != 2*time.Second {
		t.Errorf("backoff sleeps = %v; want [1s 2s]", slept)
	}
}

func TestFetchExhaustedRetriesYieldsEmpty(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewFetcher(srv.Client(), nil, "test-agent", 3,
		WithSleep(func(ctx context.Context, d time.Duration) error { return nil }))

	body, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch after exhausted retries returned error: %v", err)
	}
	if body != "" {
		t.Errorf("body = %q; want empty content", body)
	}
	if got := hits.Load(); got != 3 {
		t.Errorf("server hit %d times; want 3", got)
	}
}

func TestFetchDisallowedByRobotsSkipsNetwork(t *testing.T) {
	var pageHits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("User-agent: *\nDisallow: /search\n"))
	})
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		pageHits.Add(1)
		w.Write([]byte("<html>should not be fetched</html>"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	robots := stealth.NewRobotsChecker(srv.Client(), true, time.Hour)
	f := NewFetcher(srv.Client(), robots, "test-agent", 3)

	body, err := f.Fetch(context.Background(), srv.URL+"/search?q=widget")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if body != "" {
		t.Errorf("body = %q; want empty for disallowed URL", body)
	}
	if pageHits.Load() != 0 {
		t.Errorf("disallowed page fetched %d times; want 0", pageHits.Load())
	}
}

func TestFetchSleepAbortsOnCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	f := NewFetcher(srv.Client(), nil, "test-agent", 5,
		WithSleep(func(ctx context.Context, d time.Duration) error {
			cancel()
			return ctx.Err()
		}))

	if _, err := f.Fetch(ctx, srv.URL); err == nil {
		t.Error("Fetch with cancelled context returned nil error")
	}
}
