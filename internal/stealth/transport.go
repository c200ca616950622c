package stealth

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// PoliteTransport is an http.RoundTripper that applies the outbound
// request pipeline: DefaultHeaders → RateLimiter → Proxy → Send.
// Robots evaluation happens before the request is built (see fetch.Fetcher)
// so a disallowed URL never reaches this transport.
type PoliteTransport struct {
	Base        http.RoundTripper
	UserAgent   string
	Headers     map[string]string
	Proxy       *ProxyPool
	RateLimiter *rate.Limiter
}

func (t *PoliteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", t.UserAgent)
	for k, v := range t.Headers {
		if req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}

	if t.RateLimiter != nil {
		if err := t.RateLimiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	transport := t.Base
	if t.Proxy != nil {
		transport = t.Proxy.Pick().Transport()
	}
	if transport == nil {
		transport = http.DefaultTransport
	}

	return transport.RoundTrip(req)
}
