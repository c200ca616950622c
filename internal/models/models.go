package models

import "time"

// RawListing is one product entry as extracted from a platform's search
// results markup, before any normalization or scoring. Price keeps the
// platform-native formatting; URL is already resolved to absolute form.
type RawListing struct {
	Title    string
	Price    string
	URL      string
	ImageURL string
}

// Price is a parsed (amount, currency) pair. Amount is +Inf when the
// source text carried no parsable number, so such listings sort last
// instead of being dropped.
type Price struct {
	Amount   float64
	Currency string
}

// ComparisonProduct is one scored, externally visible listing.
type ComparisonProduct struct {
	Platform    string  `json:"platform"`
	Title       string  `json:"title"`
	Price       string  `json:"price"`
	MatchScore  float64 `json:"match_score"`
	ProductURL  string  `json:"product_url"`
	ImageURL    string  `json:"image_url,omitempty"`
	ModelNumber string  `json:"model_number,omitempty"`
	Brand       string  `json:"brand,omitempty"`
}

// ComparisonResult is the outcome of one comparison request. Products are
// ordered per requested platform, each platform's sublist sorted by
// ascending parsed price.
type ComparisonResult struct {
	BestPlatform string              `json:"best_platform"`
	Products     []ComparisonProduct `json:"products"`
	Timestamp    time.Time           `json:"timestamp"`
}
