package cmd

import (
	"fmt"
	"os"

	"pricescout/internal/models"
)

// printComparisonTable prints a comparison result in a human-friendly
// card layout.
func printComparisonTable(result *models.ComparisonResult) {
	fmt.Fprintf(os.Stdout, "Best platform: %s\n", result.BestPlatform)

	for i, p := range result.Products {
		fmt.Fprintln(os.Stdout)
		fmt.Fprintf(os.Stdout, " %d. [%s] %s\n", i+1, p.Platform, truncate(p.Title, 80))
		line := fmt.Sprintf("    Price: %s  |  Match: %.0f%%", p.Price, p.MatchScore)
		if p.Brand != "" {
			line += "  |  Brand: " + p.Brand
		}
		if p.ModelNumber != "" {
			line += "  |  Model: " + p.ModelNumber
		}
		fmt.Fprintln(os.Stdout, line)
		fmt.Fprintf(os.Stdout, "    %s\n", p.ProductURL)
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
