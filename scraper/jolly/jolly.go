package jolly

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/emncan/jolly-scraper/config"
	"github.com/emncan/jolly-scraper/models"
	"github.com/emncan/jolly-scraper/utils"
)

// Settle delays mirror the timing the site needs between interactions.
const (
	autocompleteSettle = 2 * time.Second
	calendarSettle     = 1 * time.Second
	partySettle        = 1 * time.Second
	adultStepSettle    = 500 * time.Millisecond
	searchSettle       = 8 * time.Second
	finalSettle        = 5 * time.Second
	detailSettle       = 3 * time.Second

	formWait      = 10 * time.Second
	openTimeout   = 30 * time.Second
	detailTimeout = 30 * time.Second
)

// Scraper orchestrates a full jollytur.com search run: form filling, result
// loading and per-hotel detail extraction. A run is strictly sequential —
// one browser session, one tab, one pass over the listings.
type Scraper struct {
	cfg        *config.Config
	logger     *utils.Logger
	retry      *utils.RetryConfig
	seen       *utils.URLSet
	decorators []SessionDecorator
}

// New creates a ready-to-use Scraper.
func New(cfg *config.Config, logger *utils.Logger) *Scraper {
	return &Scraper{
		cfg:    cfg,
		logger: logger,
		retry: &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   2 * time.Second,
			Logger:      logger,
		},
		seen: utils.NewURLSet(),
		decorators: []SessionDecorator{
			NewUserAgentPool(cfg.UserAgents),
			NewProxyPool(cfg.Proxies),
		},
	}
}

// Scrape runs the whole search and returns the extracted hotel records in
// document order. The browser session is released on every exit path.
func (s *Scraper) Scrape() ([]*models.Hotel, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", s.cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.WindowSize(1300, 1000),
	)
	if s.cfg.ChromeBin != "" {
		opts = append(opts, chromedp.ExecPath(s.cfg.ChromeBin))
	}
	for _, d := range s.decorators {
		opts = d.Apply(opts)
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	defer cancelAlloc()

	ctx, cancelCtx := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelCtx()

	if err := s.openSite(ctx); err != nil {
		return nil, err
	}
	if err := s.setDestination(ctx); err != nil {
		return nil, err
	}
	if err := s.selectDates(ctx); err != nil {
		return nil, err
	}
	if err := s.adjustAdultCount(ctx); err != nil {
		return nil, err
	}
	if err := s.submitSearch(ctx); err != nil {
		return nil, err
	}

	loader := NewLoader(newResultsPage(ctx), s.logger, s.cfg.ScrollStepPx, s.cfg.MaxScrolls)
	if state := loader.Run(); state == LoadStuck {
		s.logger.Warn("[jolly] Result list only partially loaded — continuing with rendered listings")
	}
	time.Sleep(finalSettle)

	var html string
	if err := s.run(ctx, formWait, chromedp.OuterHTML("html", &html)); err != nil {
		return nil, fmt.Errorf("read list page source: %w", err)
	}

	urls, err := listingURLs(html)
	if err != nil {
		return nil, err
	}
	s.logger.Info("[jolly] Found %d available hotels in the result list", len(urls))

	var hotels []*models.Hotel
	for _, u := range urls {
		if !s.seen.Add(u) {
			s.logger.Debug("[jolly] Skipping duplicate listing: %s", u)
			continue
		}
		if h, ok := s.extractDetails(ctx, u); ok {
			s.logger.Info("[jolly] Extracted: %s", h.Name)
			hotels = append(hotels, h)
		}
	}

	s.logger.Info("[jolly] Run complete — %d hotels extracted", len(hotels))
	return hotels, nil
}

// run executes chromedp actions under a bounded timeout so a missing
// element can never hang the run.
func (s *Scraper) run(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	tctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return chromedp.Run(tctx, actions...)
}

func (s *Scraper) openSite(ctx context.Context) error {
	s.logger.Info("[jolly] Opening %s", entryURL)
	return s.retry.Do("open-site", func() error {
		return s.run(ctx, openTimeout,
			chromedp.Navigate(entryURL),
			chromedp.WaitVisible(selDestinationInput, chromedp.ByQuery),
		)
	})
}

func (s *Scraper) setDestination(ctx context.Context) error {
	s.logger.Info("[jolly] Destination: %s", s.cfg.Destination)
	if err := s.run(ctx, formWait,
		chromedp.Click(selDestinationInput, chromedp.ByQuery),
		chromedp.Clear(selDestinationInput, chromedp.ByQuery),
		chromedp.SendKeys(selDestinationInput, s.cfg.Destination, chromedp.ByQuery),
		chromedp.Sleep(autocompleteSettle),
	); err != nil {
		return fmt.Errorf("set destination: %w", err)
	}
	return nil
}

// selectDates opens the date widget, pages the calendar forward until the
// target month and year are displayed (bounded), then clicks the check-in
// and check-out day cells.
func (s *Scraper) selectDates(ctx context.Context) error {
	s.logger.Info("[jolly] Dates: %s %s, days %s–%s",
		s.cfg.TargetMonth, s.cfg.TargetYear, s.cfg.CheckinDay, s.cfg.CheckoutDay)

	if err := s.run(ctx, formWait,
		chromedp.Click(selDateRow, chromedp.ByQuery),
		chromedp.WaitVisible(selCalendarTitle, chromedp.ByQuery),
	); err != nil {
		return fmt.Errorf("open date widget: %w", err)
	}

	found := false
	for page := 0; page < s.cfg.MaxCalendarPages; page++ {
		var month, year string
		if err := s.run(ctx, formWait,
			chromedp.Text(selCalendarMonth, &month, chromedp.ByQuery),
			chromedp.Text(selCalendarYear, &year, chromedp.ByQuery),
		); err != nil {
			return fmt.Errorf("read calendar header: %w", err)
		}

		if strings.TrimSpace(month) == s.cfg.TargetMonth && strings.TrimSpace(year) == s.cfg.TargetYear {
			found = true
			break
		}

		if err := s.run(ctx, formWait,
			chromedp.Click(selCalendarNext, chromedp.ByQuery),
			chromedp.Sleep(calendarSettle),
		); err != nil {
			return fmt.Errorf("page calendar forward: %w", err)
		}
	}
	if !found {
		return fmt.Errorf("calendar: %s %s not reachable within %d steps",
			s.cfg.TargetMonth, s.cfg.TargetYear, s.cfg.MaxCalendarPages)
	}

	for _, day := range []string{s.cfg.CheckinDay, s.cfg.CheckoutDay} {
		daySel := fmt.Sprintf(xpCalendarDay, day)
		if err := s.run(ctx, formWait,
			chromedp.Click(daySel, chromedp.BySearch),
			chromedp.Sleep(calendarSettle),
		); err != nil {
			return fmt.Errorf("select day %s: %w", day, err)
		}
	}
	return nil
}

// adjustAdultCount opens the party-size control and normalises the adult
// count: decrement to a known baseline of one, then increment to the target.
func (s *Scraper) adjustAdultCount(ctx context.Context) error {
	s.logger.Info("[jolly] Adults: %d", s.cfg.AdultCount)

	// The dropdown sometimes needs a second activation to expand fully.
	if err := s.run(ctx, formWait,
		chromedp.Click(selPersonCount, chromedp.ByQuery),
		chromedp.Sleep(partySettle),
		chromedp.Click(selPersonCount, chromedp.ByQuery),
		chromedp.Sleep(partySettle),
	); err != nil {
		return fmt.Errorf("open party-size control: %w", err)
	}

	current, err := s.readAdultCount(ctx)
	if err != nil {
		return err
	}

	for steps := 0; current > 1 && steps < config.MaxAdults; steps++ {
		if err := s.run(ctx, formWait,
			chromedp.Click(xpAdultDec, chromedp.BySearch),
			chromedp.Sleep(adultStepSettle),
		); err != nil {
			return fmt.Errorf("decrement adults: %w", err)
		}
		if current, err = s.readAdultCount(ctx); err != nil {
			return err
		}
	}

	for i := 0; i < s.cfg.AdultCount-1; i++ {
		if err := s.run(ctx, formWait,
			chromedp.Click(xpAdultInc, chromedp.BySearch),
			chromedp.Sleep(adultStepSettle),
		); err != nil {
			return fmt.Errorf("increment adults: %w", err)
		}
	}
	return nil
}

func (s *Scraper) readAdultCount(ctx context.Context) (int, error) {
	var text string
	if err := s.run(ctx, formWait,
		chromedp.Text(xpAdultCount, &text, chromedp.BySearch),
	); err != nil {
		return 0, fmt.Errorf("read adult count: %w", err)
	}

	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("adult count %q is not a number: %w", text, err)
	}
	return n, nil
}

func (s *Scraper) submitSearch(ctx context.Context) error {
	s.logger.Info("[jolly] Submitting search")
	if err := s.run(ctx, formWait+searchSettle,
		chromedp.Click(selSearchButton, chromedp.ByQuery),
		chromedp.Sleep(searchSettle),
	); err != nil {
		return fmt.Errorf("submit search: %w", err)
	}
	return nil
}
