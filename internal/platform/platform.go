package platform

import "pricescout/internal/models"

// Extractor turns one search results page into raw listings. Adding a
// platform means implementing this and registering it; the pipeline
// itself never changes.
type Extractor interface {
	// Name returns the platform identifier, e.g. "amazon".
	Name() string
	// SearchURL builds the absolute search URL for a product query.
	SearchURL(query string) string
	// Extract parses raw markup into at most limit listings. Containers
	// missing a title, price or detail link are skipped, not reported.
	Extract(markup string, limit int) []models.RawListing
}
