// Package rod provides a browser-rendering implementation of
// tourpipe.Fetcher using Chrome automation. It is the escalation path for
// listing pages that ship as JavaScript shells with no server-rendered
// content.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod/lib/proto"
	"github.com/tourfame/tourpipe"
)

// DefaultNavigationTimeout bounds a single page navigation.
const DefaultNavigationTimeout = 30 * time.Second

// DefaultSettleDelay is applied after network idle to let deferred
// rendering (lazy images, late carousels) finish before the DOM is
// serialized.
const DefaultSettleDelay = 2 * time.Second

// requestIdleWindow is how long the network must be quiet before a page
// counts as idle.
const requestIdleWindow = 300 * time.Millisecond

// Ensure Fetcher implements tourpipe.Fetcher at compile time.
var _ tourpipe.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser
// automation. Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager     *BrowserManager
	navTimeout  time.Duration
	settleDelay time.Duration
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithNavigationTimeout sets the per-page navigation timeout.
// Defaults to DefaultNavigationTimeout if not specified.
func WithNavigationTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.navTimeout = d
	}
}

// WithSettleDelay sets the fixed delay applied after network idle.
// Defaults to DefaultSettleDelay if not specified.
func WithSettleDelay(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.settleDelay = d
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome
// browser. Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...FetcherOption) (*Fetcher, error) {
	manager, err := NewBrowserManager()
	if err != nil {
		return nil, err
	}

	f := &Fetcher{
		manager:     manager,
		navTimeout:  DefaultNavigationTimeout,
		settleDelay: DefaultSettleDelay,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Fetch navigates to the URL, waits for network activity to quiet down
// plus the settle delay, and returns the fully rendered HTML. The page is
// closed on every exit path.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	browser := f.manager.Browser()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fmt.Errorf("creating page: %w", err)
	}
	defer page.Close()

	page = page.Context(ctx).Timeout(f.navTimeout)

	if err := page.Navigate(url); err != nil {
		return "", fmt.Errorf("navigating to %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("waiting for load of %s: %w", url, err)
	}

	// Wait until the network is quiet; SPA listings keep loading tour
	// cards well past the load event.
	wait := page.WaitRequestIdle(requestIdleWindow, nil, nil, nil)
	wait()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(f.settleDelay):
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("serializing DOM of %s: %w", url, err)
	}

	f.manager.IncrementPageCount()
	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}
