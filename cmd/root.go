package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"pricescout/config"
	"pricescout/internal/compare"
	"pricescout/internal/fetch"
	"pricescout/internal/httputil"
	"pricescout/internal/platform"
	"pricescout/internal/stealth"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "pricescout",
	Short: "PriceScout - cross-platform product price comparison",
	Long:  "A Go-based CLI tool and MCP server that compares product prices across e-commerce platforms.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().Bool("respect-robots", true, "Respect robots.txt rules")
	rootCmd.PersistentFlags().Bool("use-proxies", false, "Route requests through the configured proxy list")
	rootCmd.PersistentFlags().Bool("headless-fallback", false, "Render JS-heavy pages with a headless browser when static fetch fails")
	rootCmd.PersistentFlags().Float64("min-score", 0, "Minimum title match score (0-100)")
}

func initConfig() {
	cfg = config.DefaultConfig()
	cfg.LoadFromEnv()

	// Override from flags
	if v, _ := rootCmd.PersistentFlags().GetBool("respect-robots"); !v {
		cfg.RespectRobots = false
	}
	if v, _ := rootCmd.PersistentFlags().GetBool("use-proxies"); v {
		cfg.UseProxies = true
	}
	if v, _ := rootCmd.PersistentFlags().GetBool("headless-fallback"); v {
		cfg.HeadlessFallback = true
	}
	if v, _ := rootCmd.PersistentFlags().GetFloat64("min-score"); v > 0 {
		cfg.MinMatchScore = v
	}
}

// buildComparer wires the full pipeline from config: polite transport,
// robots gate, fetcher, extractor registry, result cache.
func buildComparer() *compare.Comparer {
	initPlatforms()

	limiter := rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst)

	var proxyPool *stealth.ProxyPool
	if cfg.UseProxies {
		proxyPool = stealth.NewProxyPool(cfg.Proxies)
	}

	transport := &stealth.PoliteTransport{
		Base: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
		},
		UserAgent:   cfg.UserAgent,
		Headers:     cfg.DefaultHeaders,
		Proxy:       proxyPool,
		RateLimiter: limiter,
	}
	client := httputil.NewHTTPClient(transport, cfg.ScrapeTimeout)

	robotsClient := httputil.NewHTTPClient(nil, cfg.ScrapeTimeout)
	robots := stealth.NewRobotsChecker(robotsClient, cfg.RespectRobots, cfg.RobotsCacheTTL)

	var opts []fetch.Option
	if cfg.HeadlessFallback {
		opts = append(opts, fetch.WithFallback(fetch.NewHeadlessFetcher()))
	}
	fetcher := fetch.NewFetcher(client, robots, cfg.UserAgent, cfg.MaxRetries, opts...)

	cache := compare.NewResultCache(cfg.CacheDuration)
	return compare.New(fetcher, cache, cfg)
}

// initPlatforms registers all supported platform extractors.
func initPlatforms() {
	platform.Register(platform.Amazon{})
	platform.Register(platform.Flipkart{})
	platform.Register(platform.Myntra{})
}
