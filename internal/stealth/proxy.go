package stealth

import (
	"math/rand/v2"
	"net/http"
	"net/url"
	"sync"
)

// ProxyProvider abstracts a proxy backend.
type ProxyProvider interface {
	Transport() http.RoundTripper
	Name() string
}

// ProxyPool picks a random provider per request so consecutive fetches
// spread across the configured proxies.
type ProxyPool struct {
	providers []ProxyProvider
}

// NewProxyPool creates a pool from raw proxy URLs. Returns nil when the
// list is empty, which callers treat as "connect directly".
func NewProxyPool(rawURLs []string) *ProxyPool {
	providers := make([]ProxyProvider, 0, len(rawURLs))
	for _, raw := range rawURLs {
		if raw == "" {
			continue
		}
		providers = append(providers, &HTTPProxyProvider{RawURL: raw, Label: raw})
	}
	if len(providers) == 0 {
		return nil
	}
	return &ProxyPool{providers: providers}
}

// Pick returns a random provider from the pool.
func (p *ProxyPool) Pick() ProxyProvider {
	return p.providers[rand.IntN(len(p.providers))]
}

// HTTPProxyProvider wraps a generic HTTP/SOCKS5 proxy URL.
type HTTPProxyProvider struct {
	RawURL    string
	Label     string
	transport http.RoundTripper
	once      sync.Once
}

func (h *HTTPProxyProvider) Name() string { return h.Label }

func (h *HTTPProxyProvider) Transport() http.RoundTripper {
	h.once.Do(func() {
		proxyURL, err := url.Parse(h.RawURL)
		if err != nil {
			h.transport = http.DefaultTransport
			return
		}
		h.transport = &http.Transport{
			Proxy:             http.ProxyURL(proxyURL),
			DisableKeepAlives: true,
		}
	})
	return h.transport
}
