package platform

import (
	"fmt"
	"net/url"
	"strings"

	"pricescout/internal/models"
)

const myntraOrigin = "https://www.myntra.com"

// Myntra extracts listings from myntra.com search result pages. A result
// card splits brand and product name across two nodes, so the title is
// their combination when both are present.
type Myntra struct{}

func (Myntra) Name() string { return "myntra" }

func (Myntra) SearchURL(query string) string {
	return fmt.Sprintf("%s/%s", myntraOrigin, url.PathEscape(query))
}

func (Myntra) Extract(markup string, limit int) []models.RawListing {
	doc, err := parseHTML(markup)
	if err != nil {
		return nil
	}

	containers := findAll(doc, byTagClass("li", "product-base"))
	listings := make([]models.RawListing, 0, limit)
	for _, c := range containers {
		if len(listings) >= limit {
			break
		}

		brandNode := findFirst(c, byTagClass("h3", "product-brand"))
		priceNode := findFirst(c, byTagClass("span", "product-discountedPrice"))
		link := findFirst(c, byTagClass("a", "product-base-link"))
		if brandNode == nil || priceNode == nil || link == nil {
			continue
		}

		title := nodeText(brandNode)
		if nameNode := findFirst(c, byTagClass("h4", "product-product")); nameNode != nil {
			if name := nodeText(nameNode); name != "" {
				title = strings.TrimSpace(title + " " + name)
			}
		}
		price := nodeText(priceNode)
		href := attrVal(link, "href")
		if title == "" || price == "" || href == "" {
			continue
		}

		listings = append(listings, models.RawListing{
			Title:    title,
			Price:    price,
			URL:      resolveURL(myntraOrigin, href),
			ImageURL: firstImageSrc(c),
		})
	}
	return listings
}
