package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Scraping
	ScrapeTimeout  time.Duration
	MaxRetries     int
	UserAgent      string
	DefaultHeaders map[string]string

	// Politeness
	RespectRobots  bool
	RobotsCacheTTL time.Duration
	RatePerSecond  float64
	RateBurst      int

	// Proxy
	UseProxies bool
	Proxies    []string

	// Headless fallback
	HeadlessFallback bool

	// Comparison
	SupportedPlatforms []string
	MinMatchScore      float64
	MaxPerPlatform     int
	CacheDuration      time.Duration
	MaxConcurrent      int

	// HTTP server
	HTTPPort string
	APIKey   string
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ScrapeTimeout:  15 * time.Second,
		MaxRetries:     5,
		UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/133.0.0.0 Safari/537.36",
		DefaultHeaders: defaultHeaders(),

		RespectRobots:  true,
		RobotsCacheTTL: 1 * time.Hour,
		RatePerSecond:  2.0,
		RateBurst:      3,

		SupportedPlatforms: []string{"amazon", "flipkart", "myntra"},
		MinMatchScore:      70,
		MaxPerPlatform:     5,
		CacheDuration:      30 * time.Minute,
		MaxConcurrent:      5,

		HTTPPort: "8080",
	}
}

// LoadFromEnv loads .env file (if present) then overrides config from environment variables.
func (c *Config) LoadFromEnv() {
	// Auto-load .env file; silently ignored if missing
	_ = godotenv.Load()

	if v := os.Getenv("SCRAPING_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.ScrapeTimeout = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxRetries = n
		}
	}
	if v := os.Getenv("CACHE_DURATION_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.CacheDuration = time.Duration(n) * time.Minute
		}
	}
	if v := os.Getenv("MIN_MATCH_SCORE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.MinMatchScore = f
		}
	}
	if v := os.Getenv("MAX_PRODUCTS_PER_PLATFORM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxPerPlatform = n
		}
	}
	if v := os.Getenv("SUPPORTED_PLATFORMS"); v != "" {
		c.SupportedPlatforms = splitList(v)
	}
	if v := os.Getenv("USE_PROXIES"); strings.EqualFold(v, "true") {
		c.UseProxies = true
	}
	if v := os.Getenv("PROXY_LIST"); v != "" {
		c.Proxies = splitList(v)
	}
	if v := os.Getenv("RESPECT_ROBOTS_TXT"); strings.EqualFold(v, "false") {
		c.RespectRobots = false
	}
	if v := os.Getenv("ROBOTS_CACHE_DURATION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RobotsCacheTTL = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("PRICESCOUT_RATE_PER_SECOND"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.RatePerSecond = f
		}
	}
	if v := os.Getenv("PRICESCOUT_RATE_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RateBurst = n
		}
	}
	if v := os.Getenv("PRICESCOUT_MAX_CONCURRENT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.MaxConcurrent = n
		}
	}
	if v := os.Getenv("PRICESCOUT_USER_AGENT"); v != "" {
		c.UserAgent = v
	}
	if v := os.Getenv("PRICESCOUT_HEADLESS_FALLBACK"); strings.EqualFold(v, "true") {
		c.HeadlessFallback = true
	}
	if v := os.Getenv("PORT"); v != "" {
		c.HTTPPort = v
	}
	if v := os.Getenv("PRICESCOUT_API_KEY"); v != "" {
		c.APIKey = v
	}
}

// IsSupported reports whether the platform identifier is in the supported set.
func (c *Config) IsSupported(platform string) bool {
	platform = strings.ToLower(platform)
	for _, p := range c.SupportedPlatforms {
		if p == platform {
			return true
		}
	}
	return false
}

func defaultHeaders() map[string]string {
	return map[string]string{
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
		"Accept-Language":           "en-US,en;q=0.5",
		"Accept-Encoding":           "gzip, deflate, br",
		"Connection":                "keep-alive",
		"Upgrade-Insecure-Requests": "1",
		"Cache-Control":             "no-cache",
		"Pragma":                    "no-cache",
		"Sec-Fetch-Dest":            "document",
		"Sec-Fetch-Mode":            "navigate",
		"Sec-Fetch-Site":            "none",
		"Sec-Fetch-User":            "?1",
		"DNT":                       "1",
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.ToLower(p))
		}
	}
	return out
}
