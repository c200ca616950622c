// Package compare orchestrates a product comparison across platforms:
// validate, check the cache, fan out one fetch-extract-score pipeline per
// platform, aggregate and rank, then memoize the outcome.
package compare

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"pricescout/config"
	"pricescout/internal/fetch"
	"pricescout/internal/match"
	"pricescout/internal/models"
	"pricescout/internal/normalize"
	"pricescout/internal/platform"
)

var (
	// ErrInvalidPlatform means at least one requested platform is not in
	// the supported set. No network activity happens in this case.
	ErrInvalidPlatform = errors.New("unsupported platform")
	// ErrNoMatch means every platform came back with zero qualifying listings.
	ErrNoMatch = errors.New("no matching products found on any platform")
	// ErrInternal wraps unexpected pipeline faults.
	ErrInternal = errors.New("comparison failed")
)

// Comparer runs comparison requests. Safe for concurrent use; the result
// cache and the robots cache inside the fetcher are the only shared state,
// both mutex-guarded. Two concurrent identical requests may both miss the
// cache and recompute — redundant work, last write wins.
type Comparer struct {
	fetcher fetch.PageFetcher
	cache   *ResultCache
	cfg     *config.Config
	now     func() time.Time
}

func New(fetcher fetch.PageFetcher, cache *ResultCache, cfg *config.Config) *Comparer {
	return &Comparer{
		fetcher: fetcher,
		cache:   cache,
		cfg:     cfg,
		now:     time.Now,
	}
}

// Compare searches every requested platform for the product title and
// returns the merged, scored, per-platform-ranked result. One platform
// failing — network, markup, anything — contributes an empty sublist and
// never aborts its siblings.
func (c *Comparer) Compare(ctx context.Context, title string, platforms []string) (*models.ComparisonResult, error) {
	requested := make([]string, 0, len(platforms))
	var unsupported []string
	for _, p := range platforms {
		p = strings.ToLower(strings.TrimSpace(p))
		if !c.cfg.IsSupported(p) {
			unsupported = append(unsupported, p)
			continue
		}
		requested = append(requested, p)
	}
	if len(unsupported) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPlatform, strings.Join(unsupported, ", "))
	}
	if len(requested) == 0 {
		return nil, fmt.Errorf("%w: no platforms requested", ErrInvalidPlatform)
	}

	key := Key(title, requested)
	if cached, ok := c.cache.Get(key); ok {
		return &cached, nil
	}

	// One branch per platform; a branch never returns an error so a
	// failure cannot cancel its siblings through the group context.
	perPlatform := make([][]models.ComparisonProduct, len(requested))
	g, gctx := errgroup.WithContext(ctx)
	limit := c.cfg.MaxConcurrent
	if limit <= 0 {
		// SetLimit(0) would block every branch forever.
		limit = len(requested)
	}
	g.SetLimit(limit)
	for i, name := range requested {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					reportProgress(gctx, fmt.Sprintf("%s: pipeline panic: %v", name, r))
					perPlatform[i] = nil
				}
			}()
			perPlatform[i] = c.searchPlatform(gctx, name, title)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// Concatenate in requested-platform order; each sublist is already
	// price-sorted.
	var all []models.ComparisonProduct
	for _, products := range perPlatform {
		all = append(all, products...)
	}
	if len(all) == 0 {
		return nil, ErrNoMatch
	}

	result := models.ComparisonResult{
		BestPlatform: bestByDisplayPrice(all).Platform,
		Products:     all,
		Timestamp:    c.now(),
	}
	c.cache.Put(key, result)
	return &result, nil
}

// searchPlatform runs the fetch → extract → normalize → score → rank
// pipeline for one platform. Every failure collapses to an empty slice.
func (c *Comparer) searchPlatform(ctx context.Context, name, query string) []models.ComparisonProduct {
	ext, err := platform.Get(name)
	if err != nil {
		reportProgress(ctx, fmt.Sprintf("%s: %v", name, err))
		return nil
	}

	markup, err := c.fetcher.Fetch(ctx, ext.SearchURL(query))
	if err != nil || markup == "" {
		reportProgress(ctx, fmt.Sprintf("%s: no content", name))
		return nil
	}

	raw := ext.Extract(markup, c.cfg.MaxPerPlatform)
	products := make([]models.ComparisonProduct, 0, len(raw))
	for _, l := range raw {
		ids := normalize.ExtractIdentifiers(l.Title)
		products = append(products, models.ComparisonProduct{
			Platform:    name,
			Title:       l.Title,
			Price:       l.Price,
			MatchScore:  match.Score(query, l.Title),
			ProductURL:  l.URL,
			ImageURL:    l.ImageURL,
			ModelNumber: ids.ModelNumber,
			Brand:       ids.Brand,
		})
	}

	products = match.Filter(products, c.cfg.MinMatchScore)
	match.SortByPrice(products)
	reportProgress(ctx, fmt.Sprintf("%s: %d qualifying listings", name, len(products)))
	return products
}

// bestByDisplayPrice picks the entry whose display price string compares
// lowest. NOTE: this is a lexicographic comparison of the raw price text,
// not of parsed amounts, preserved from the original service's behavior.
func bestByDisplayPrice(products []models.ComparisonProduct) models.ComparisonProduct {
	best := products[0]
	for _, p := range products[1:] {
		if p.Price < best.Price {
			best = p
		}
	}
	return best
}
