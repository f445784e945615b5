package jolly

import (
	"strings"
	"time"

	"github.com/emncan/jolly-scraper/utils"
)

// completionPhrase is the status-text fragment the site shows once every
// result is rendered ("you have viewed everything").
const completionPhrase = "tamamını görüntülediniz"

// LoadState is the terminal state of a result-list loading run.
type LoadState int

const (
	// LoadComplete means the status line reported that every listing is
	// rendered.
	LoadComplete LoadState = iota
	// LoadStuck means the status line or the load-more control became
	// unreachable. Listings rendered so far are used as-is.
	LoadStuck
)

// ResultsPage is the minimal browser surface the loader drives. The chromedp
// implementation lives in page.go; tests substitute a scripted fake.
type ResultsPage interface {
	// ScrollBy advances the viewport by the given number of pixels.
	ScrollBy(pixels int) error
	// StatusVisible reports whether the status line is the topmost element
	// at its own visual centre. This accounts for overlays covering the
	// element, not just scroll offset.
	StatusVisible() (bool, error)
	// StatusText reads the status line's current text.
	StatusText() (string, error)
	// ClickLoadMore activates the "load more" control.
	ClickLoadMore() error
}

// Loader drives the result list's scroll-and-click loop until the site
// reports completion or the page stops cooperating. Termination is not
// guaranteed by construction: it relies on the completion phrase eventually
// appearing, or on the scroll-attempt cap cutting the loop short.
type Loader struct {
	page   ResultsPage
	logger *utils.Logger

	scrollStep int
	maxScrolls int

	// Settle delays give lazily rendered content time to appear. Tests set
	// them to zero.
	scrollSettle time.Duration
	loadSettle   time.Duration

	activations int
}

// NewLoader creates a Loader over the given page with production settle
// delays.
func NewLoader(page ResultsPage, logger *utils.Logger, scrollStep, maxScrolls int) *Loader {
	return &Loader{
		page:         page,
		logger:       logger,
		scrollStep:   scrollStep,
		maxScrolls:   maxScrolls,
		scrollSettle: 2 * time.Second,
		loadSettle:   5 * time.Second,
	}
}

// Run executes the loading loop and returns its terminal state. LoadStuck is
// a graceful halt, not a failure: the caller proceeds with whatever listings
// are already rendered.
func (l *Loader) Run() LoadState {
	for {
		if !l.scrollStatusIntoView() {
			l.logger.Warn("[loader] Status line could not be brought into view — using listings rendered so far")
			return LoadStuck
		}

		text, err := l.page.StatusText()
		if err != nil {
			l.logger.Warn("[loader] Could not read status line: %v", err)
			return LoadStuck
		}

		status := strings.ToLower(strings.TrimSpace(text))
		l.logger.Debug("[loader] Status: %q", status)

		if strings.Contains(status, completionPhrase) {
			l.logger.Info("[loader] All listings rendered after %d load-more activations", l.activations)
			return LoadComplete
		}

		if err := l.page.ClickLoadMore(); err != nil {
			l.logger.Warn("[loader] Load-more control unreachable: %v — using listings rendered so far", err)
			return LoadStuck
		}
		l.activations++
		l.logger.Debug("[loader] Clicked load-more (%d so far)", l.activations)
		time.Sleep(l.loadSettle)
	}
}

// Activations returns how many times the load-more control was clicked.
func (l *Loader) Activations() int {
	return l.activations
}

// scrollStatusIntoView advances the viewport in fixed increments until the
// status line is visible or the attempt cap is reached.
func (l *Loader) scrollStatusIntoView() bool {
	visible, err := l.page.StatusVisible()
	if err != nil {
		l.logger.Warn("[loader] Status line lookup failed: %v", err)
		return false
	}

	for attempts := 0; !visible && attempts < l.maxScrolls; attempts++ {
		if err := l.page.ScrollBy(l.scrollStep); err != nil {
			l.logger.Warn("[loader] Scroll failed: %v", err)
			return false
		}
		time.Sleep(l.scrollSettle)

		if visible, err = l.page.StatusVisible(); err != nil {
			l.logger.Warn("[loader] Status line lookup failed: %v", err)
			return false
		}
	}

	return visible
}
