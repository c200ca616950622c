package platform

import (
	"fmt"
	"net/url"

	"pricescout/internal/models"
)

const flipkartOrigin = "https://www.flipkart.com"

// Flipkart extracts listings from flipkart.com search result pages.
// Flipkart's markup uses short hashed class names that change with site
// deploys; the anchors below track the currently shipped markup.
type Flipkart struct{}

func (Flipkart) Name() string { return "flipkart" }

func (Flipkart) SearchURL(query string) string {
	return fmt.Sprintf("%s/search?q=%s", flipkartOrigin, url.QueryEscape(query))
}

func (Flipkart) Extract(markup string, limit int) []models.RawListing {
	doc, err := parseHTML(markup)
	if err != nil {
		return nil
	}

	containers := findAll(doc, byTagClass("div", "_1AtVbE"))
	listings := make([]models.RawListing, 0, limit)
	for _, c := range containers {
		if len(listings) >= limit {
			break
		}

		titleNode := findFirst(c, byTagClass("div", "_4rR01T"))
		priceNode := findFirst(c, byTagClass("div", "_30jeq3"))
		link := findFirst(c, byTagClass("a", "_1fQZEK"))
		if titleNode == nil || priceNode == nil || link == nil {
			continue
		}

		title := nodeText(titleNode)
		price := nodeText(priceNode)
		href := attrVal(link, "href")
		if title == "" || price == "" || href == "" {
			continue
		}

		listings = append(listings, models.RawListing{
			Title:    title,
			Price:    price,
			URL:      resolveURL(flipkartOrigin, href),
			ImageURL: firstImageSrc(c),
		})
	}
	return listings
}
