package jolly

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// listingURLs extracts detail-page URLs from the rendered list page source,
// skipping listings the site flags as unavailable for the selected dates.
// Order follows the document; duplicates are left to the caller.
func listingURLs(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse list page: %w", err)
	}

	var urls []string
	doc.Find(qListing).Each(func(_ int, s *goquery.Selection) {
		if s.Find(qUnavailable).Length() > 0 {
			return
		}
		if url, ok := s.Attr("data-url"); ok && url != "" {
			urls = append(urls, url)
		}
	})
	return urls, nil
}
