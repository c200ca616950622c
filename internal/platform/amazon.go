package platform

import (
	"fmt"
	"net/url"

	"pricescout/internal/models"

	"golang.org/x/net/html"
)

const amazonOrigin = "https://www.amazon.in"

// Amazon extracts listings from amazon.in search result pages. Each
// result lives in a container marked data-component-type="s-search-result";
// the whole-rupee price span carries no currency symbol, so one is
// prefixed to keep price text uniform with the other platforms.
type Amazon struct{}

func (Amazon) Name() string { return "amazon" }

func (Amazon) SearchURL(query string) string {
	return fmt.Sprintf("%s/s?k=%s", amazonOrigin, url.QueryEscape(query))
}

func (Amazon) Extract(markup string, limit int) []models.RawListing {
	doc, err := parseHTML(markup)
	if err != nil {
		return nil
	}

	containers := findAll(doc, byTagAttr("div", "data-component-type", "s-search-result"))
	listings := make([]models.RawListing, 0, limit)
	for _, c := range containers {
		if len(listings) >= limit {
			break
		}

		heading := findFirst(c, byTag("h2"))
		if heading == nil {
			continue
		}
		link := findFirst(heading, byTag("a"))
		if link == nil {
			continue
		}
		titleNode := findFirst(link, byTag("span"))
		priceNode := findFirst(c, byTagClass("span", "a-price-whole"))
		if titleNode == nil || priceNode == nil {
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
			Price:    "₹" + price,
			URL:      resolveURL(amazonOrigin, href),
			ImageURL: firstImageSrc(c),
		})
	}
	return listings
}

func firstImageSrc(c *html.Node) string {
	if img := findFirst(c, byTag("img")); img != nil {
		return attrVal(img, "src")
	}
	return ""
}
