// Package match scores listings against a query and ranks them by price.
// Everything here is pure: no I/O, deterministic for identical inputs.
package match

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"pricescout/internal/models"
	"pricescout/internal/normalize"
)

// Score returns a 0–100 similarity between two titles, insensitive to
// token order: both sides are normalized, their tokens sorted, and the
// sorted forms compared by edit distance. Identical token sets in any
// order score 100.
func Score(query, title string) float64 {
	a := sortTokens(normalize.Title(query))
	b := sortTokens(normalize.Title(title))

	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}

	dist := levenshtein.ComputeDistance(a, b)
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	return 100 * (1 - float64(dist)/float64(longest))
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// Filter drops products scoring below the minimum.
func Filter(products []models.ComparisonProduct, minScore float64) []models.ComparisonProduct {
	kept := make([]models.ComparisonProduct, 0, len(products))
	for _, p := range products {
		if p.MatchScore >= minScore {
			kept = append(kept, p)
		}
	}
	return kept
}

// SortByPrice orders products ascending by parsed price amount, converted
// to the default currency so mixed-currency listings compare in one unit.
// Unparsable prices carry a +Inf amount and therefore sort last.
func SortByPrice(products []models.ComparisonProduct) {
	sort.SliceStable(products, func(i, j int) bool {
		return comparableAmount(products[i].Price) < comparableAmount(products[j].Price)
	})
}

func comparableAmount(priceText string) float64 {
	p := normalize.ParsePrice(priceText)
	return normalize.Convert(p.Amount, p.Currency, normalize.DefaultCurrency)
}
