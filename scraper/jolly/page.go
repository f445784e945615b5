package jolly

import (
	"context"
	"errors"
	"fmt"

	"github.com/chromedp/chromedp"
)

// resultsPage implements ResultsPage against the live search-results tab.
// All element lookups go through document.evaluate so a missing element is
// reported instead of blocking on chromedp's implicit waits.
type resultsPage struct {
	ctx context.Context
}

func newResultsPage(ctx context.Context) *resultsPage {
	return &resultsPage{ctx: ctx}
}

func (p *resultsPage) ScrollBy(pixels int) error {
	return chromedp.Run(p.ctx,
		chromedp.Evaluate(fmt.Sprintf(`window.scrollBy(0, %d);`, pixels), nil))
}

func (p *resultsPage) StatusVisible() (bool, error) {
	js := fmt.Sprintf(`(function() {
		var r = document.evaluate(%q, document, null, XPathResult.FIRST_ORDERED_NODE_TYPE, null);
		var elem = r.singleNodeValue;
		if (!elem) { return "missing"; }
		var box = elem.getBoundingClientRect(),
			cx = box.left + box.width / 2,
			cy = box.top + box.height / 2,
			top = document.elementFromPoint(cx, cy);
		return top === elem ? "visible" : "hidden";
	})()`, xpLoadStatus)

	var state string
	if err := chromedp.Run(p.ctx, chromedp.Evaluate(js, &state)); err != nil {
		return false, err
	}
	if state == "missing" {
		return false, errors.New("status element not found")
	}
	return state == "visible", nil
}

func (p *resultsPage) StatusText() (string, error) {
	js := fmt.Sprintf(`(function() {
		var r = document.evaluate(%q, document, null, XPathResult.FIRST_ORDERED_NODE_TYPE, null);
		var elem = r.singleNodeValue;
		return elem ? elem.textContent : "";
	})()`, xpLoadStatus)

	var text string
	if err := chromedp.Run(p.ctx, chromedp.Evaluate(js, &text)); err != nil {
		return "", err
	}
	return text, nil
}

func (p *resultsPage) ClickLoadMore() error {
	js := fmt.Sprintf(`(function() {
		var r = document.evaluate(%q, document, null, XPathResult.FIRST_ORDERED_NODE_TYPE, null);
		var btn = r.singleNodeValue;
		if (!btn) { return false; }
		btn.click();
		return true;
	})()`, xpLoadMore)

	var clicked bool
	if err := chromedp.Run(p.ctx, chromedp.Evaluate(js, &clicked)); err != nil {
		return err
	}
	if !clicked {
		return errors.New("load-more control not found")
	}
	return nil
}
