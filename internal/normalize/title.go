package normalize

import (
	"regexp"
	"strings"
)

var (
	nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

	// Ordered model-number patterns; the first match wins.
	modelPatterns = []*regexp.Regexp{
		regexp.MustCompile(`[A-Z]{2,3}-\d{3,4}`),
		regexp.MustCompile(`[A-Z]{2,3}\d{3,4}`),
		regexp.MustCompile(`\d{4}[A-Z]{2,3}`),
	}

	knownBrands = []string{"samsung", "apple", "sony", "lg", "nike", "adidas", "puma"}
)

// Title strips non-alphanumeric characters, collapses whitespace and
// lowercases, so punctuation and spacing never affect match scores.
// Stripping happens before collapsing: a standalone punctuation token
// would otherwise leave a double space behind. Idempotent: normalizing
// a normalized title is a no-op.
func Title(s string) string {
	s = nonAlnum.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), " ")
	return strings.ToLower(s)
}

// Identifiers holds the model number and brand recognized in a title.
type Identifiers struct {
	ModelNumber string
	Brand       string
}

// ExtractIdentifiers pulls a model number and a known brand from a raw
// listing title. The brand check only looks at the title's prefix, which
// is where the platforms put it.
func ExtractIdentifiers(title string) Identifiers {
	var id Identifiers
	for _, p := range modelPatterns {
		if m := p.FindString(title); m != "" {
			id.ModelNumber = m
			break
		}
	}

	lower := strings.ToLower(title)
	for _, brand := range knownBrands {
		if strings.HasPrefix(lower, brand) {
			id.Brand = brand
			break
		}
	}
	return id
}
