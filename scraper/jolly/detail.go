package jolly

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"

	"github.com/emncan/jolly-scraper/models"
)

var tagRe = regexp.MustCompile(`<[^>]*>`)

// extractDetails visits a hotel detail page and builds its record. The bool
// result reports whether a record was produced: a missing price element or
// a missing "Genel Bilgiler" tab abandons this hotel without failing the
// run. Optional fields degrade to empty on lookup failure.
func (s *Scraper) extractDetails(ctx context.Context, partialURL string) (*models.Hotel, bool) {
	fullURL := partialURL
	if strings.HasPrefix(partialURL, "/") {
		fullURL = siteBase + partialURL
	}

	// The price element is required; without it there is nothing to score.
	var price string
	if err := s.run(ctx, detailTimeout,
		chromedp.Navigate(fullURL),
		chromedp.Text(selDetailPrice, &price, chromedp.ByQuery),
	); err != nil {
		s.logger.Warn("[detail] Price element missing for %s: %v — skipping hotel", fullURL, err)
		return nil, false
	}

	// Cancellation policy arrives as an HTML fragment in a data attribute.
	cancelHTML, _ := s.readAttr(ctx, selCancelPolicy, "data-content")
	cancelPolicy := strings.TrimSpace(stripTags(cancelHTML))
	if cancelPolicy == "" {
		s.logger.Debug("[detail] No cancellation policy found for %s", fullURL)
	}

	var recommended *string
	if val, found := s.readAttr(ctx, selRecommend, "data-content"); found {
		recommended = &val
	}

	// The general-information tab holds everything else; without it the
	// record would be mostly empty, so the hotel is skipped.
	if !s.clickIfPresent(ctx, selGeneralInfoTab) {
		s.logger.Info("[detail] 'Genel Bilgiler' tab missing for %s — skipping hotel", fullURL)
		return nil, false
	}
	if err := s.run(ctx, detailTimeout, chromedp.Sleep(detailSettle)); err != nil {
		s.logger.Warn("[detail] Settle after tab click failed for %s: %v", fullURL, err)
		return nil, false
	}

	var html string
	if err := s.run(ctx, detailTimeout, chromedp.OuterHTML("html", &html)); err != nil {
		s.logger.Warn("[detail] Could not read page source for %s: %v — skipping hotel", fullURL, err)
		return nil, false
	}

	h := parseDetailHTML(html)
	h.DetailPageURL = fullURL
	h.Price = strings.TrimSpace(price)
	h.CancelPolicy = cancelPolicy
	h.RecommendedHotel = recommended
	return h, true
}

// parseDetailHTML extracts the general-information fields from a detail
// page's HTML source.
func parseDetailHTML(html string) *models.Hotel {
	h := &models.Hotel{}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return h
	}

	h.Name = strings.TrimSpace(doc.Find(qTitle).First().AttrOr("title", ""))

	if frags := textFragments(doc.Find(qLocation).First()); len(frags) > 0 {
		h.Location = frags[0]
	}

	// Accommodation plan text can be split over several nodes; the trimmed
	// fragments are concatenated directly, in document order.
	h.AccommodationTypes = strings.Join(textFragments(doc.Find(qAccommodation)), "")

	doc.Find(qTimeTitle).Each(func(_ int, s *goquery.Selection) {
		val := strings.TrimSpace(s.NextAllFiltered("span").First().Text())
		switch {
		case strings.Contains(s.Text(), "Check-in"):
			h.CheckinTime = val
		case strings.Contains(s.Text(), "Check-out"):
			h.CheckoutTime = val
		}
	})

	featuresFound := false
	doc.Find(qHotelDetailBox).Each(func(_ int, box *goquery.Selection) {
		if featuresFound {
			return
		}
		title := box.Find("header span.title").First().Text()
		if !strings.Contains(title, "Otel Özellikleri") {
			return
		}
		h.Features = strings.Join(textFragments(box.Find(qFeatureItems)), ", ")
		featuresFound = true
	})

	return h
}

// textFragments walks the selection in document order and returns every
// non-empty text node, trimmed.
func textFragments(sel *goquery.Selection) []string {
	var out []string
	sel.Contents().Each(func(_ int, c *goquery.Selection) {
		if goquery.NodeName(c) == "#text" {
			if t := strings.TrimSpace(c.Text()); t != "" {
				out = append(out, t)
			}
			return
		}
		out = append(out, textFragments(c)...)
	})
	return out
}

// stripTags removes HTML tags from an attribute fragment.
func stripTags(s string) string {
	return tagRe.ReplaceAllString(s, "")
}

// readAttr reads an attribute through document.querySelector, reporting
// whether the element exists at all. Lookup failures are soft: the caller
// treats a missing element as an absent optional field.
func (s *Scraper) readAttr(ctx context.Context, selector, attr string) (string, bool) {
	js := fmt.Sprintf(`(function() {
		var elem = document.querySelector(%q);
		if (!elem) { return {found: false, value: ""}; }
		return {found: true, value: elem.getAttribute(%q) || ""};
	})()`, selector, attr)

	var res struct {
		Found bool   `json:"found"`
		Value string `json:"value"`
	}
	if err := s.run(ctx, formWait, chromedp.Evaluate(js, &res)); err != nil {
		s.logger.Debug("[detail] Attribute read %s@%s failed: %v", selector, attr, err)
		return "", false
	}
	return res.Value, res.Found
}

// clickIfPresent clicks the first element matching the selector, reporting
// whether it existed.
func (s *Scraper) clickIfPresent(ctx context.Context, selector string) bool {
	js := fmt.Sprintf(`(function() {
		var elem = document.querySelector(%q);
		if (!elem) { return false; }
		elem.click();
		return true;
	})()`, selector)

	var clicked bool
	if err := s.run(ctx, formWait, chromedp.Evaluate(js, &clicked)); err != nil {
		s.logger.Debug("[detail] Click %s failed: %v", selector, err)
		return false
	}
	return clicked
}
