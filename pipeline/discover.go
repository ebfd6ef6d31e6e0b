package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/tourfame/tourpipe"
	"github.com/tourfame/tourpipe/bloom"
)

// DefaultFetchDelay is the pause between page fetches within a crawl.
const DefaultFetchDelay = 1 * time.Second

// DefaultMaxDetailPages caps how many detail pages one job visits.
const DefaultMaxDetailPages = 10

// DiscoveryResult is everything link discovery found for one listing:
// the deduplicated PDF links and the pages fetched along the way, kept
// so later stages can extract from page content when no brochure exists.
type DiscoveryResult struct {
	Links []tourpipe.DocumentLink
	Pages []*tourpipe.FetchResult
}

// LinkDiscoverer runs the two-hop listing crawl.
type LinkDiscoverer interface {
	Discover(ctx context.Context, listingURL string) (*DiscoveryResult, error)
}

// Ensure Discoverer implements LinkDiscoverer at compile time.
var _ LinkDiscoverer = (*Discoverer)(nil)

// Discoverer crawls a listing page and the detail pages behind it,
// collecting PDF brochure links. The listing fetch failing is fatal;
// each detail page failing is logged and skipped. Detail pages are
// visited sequentially with a fixed delay and deduplicated across the
// whole crawl.
type Discoverer struct {
	fetcher tourpipe.PageFetcher
	details tourpipe.DetailLinkSelector
	pdfs    tourpipe.PDFLinkSelector
	limiter tourpipe.DomainLimiter
	logger  *slog.Logger

	fetchDelay     time.Duration
	maxDetailPages int
}

// DiscovererOption configures a Discoverer.
type DiscovererOption func(*Discoverer)

// WithFetchDelay sets the pause between detail-page fetches.
// Defaults to DefaultFetchDelay.
func WithFetchDelay(d time.Duration) DiscovererOption {
	return func(dc *Discoverer) {
		dc.fetchDelay = d
	}
}

// WithMaxDetailPages caps detail pages visited per listing.
// Defaults to DefaultMaxDetailPages.
func WithMaxDetailPages(n int) DiscovererOption {
	return func(dc *Discoverer) {
		dc.maxDetailPages = n
	}
}

// WithDomainLimiter adds per-domain rate limiting on top of the fixed
// fetch delay.
func WithDomainLimiter(l tourpipe.DomainLimiter) DiscovererOption {
	return func(dc *Discoverer) {
		dc.limiter = l
	}
}

// NewDiscoverer creates a Discoverer.
func NewDiscoverer(fetcher tourpipe.PageFetcher, details tourpipe.DetailLinkSelector, pdfs tourpipe.PDFLinkSelector, logger *slog.Logger, opts ...DiscovererOption) *Discoverer {
	d := &Discoverer{
		fetcher:        fetcher,
		details:        details,
		pdfs:           pdfs,
		logger:         logger,
		fetchDelay:     DefaultFetchDelay,
		maxDetailPages: DefaultMaxDetailPages,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Discover runs the two-hop crawl from the listing URL.
func (d *Discoverer) Discover(ctx context.Context, listingURL string) (*DiscoveryResult, error) {
	if err := d.wait(ctx, listingURL); err != nil {
		return nil, err
	}

	listing, err := d.fetcher.FetchPage(ctx, listingURL)
	if err != nil {
		return nil, err
	}

	result := &DiscoveryResult{
		Pages: []*tourpipe.FetchResult{listing},
	}

	visited := bloom.NewDefaultFilter()
	visited.Add(listingURL)
	seenPDFs := make(map[string]bool)

	// PDFs linked straight off the listing. Their owning tour, if any,
	// is whatever the brochure URL itself names.
	listingPDFs, err := d.pdfs.ExtractPDFLinks(listing.HTML, listingURL, tourpipe.SourceListing)
	if err != nil {
		return nil, err
	}
	for _, link := range listingPDFs {
		appendPDF(result, seenPDFs, link)
	}

	detailLinks, err := d.details.ExtractDetailLinks(listing.HTML, listingURL)
	if err != nil {
		return nil, err
	}
	if len(detailLinks) > d.maxDetailPages {
		detailLinks = detailLinks[:d.maxDetailPages]
	}

	for _, detail := range detailLinks {
		if !visited.AddIfNew(detail.URL) {
			continue
		}

		if err := d.delay(ctx); err != nil {
			return nil, err
		}
		if err := d.wait(ctx, detail.URL); err != nil {
			return nil, err
		}

		page, err := d.fetcher.FetchPage(ctx, detail.URL)
		if err != nil {
			d.logger.Warn("detail page fetch failed",
				"url", detail.URL,
				"err", err,
			)
			continue
		}
		result.Pages = append(result.Pages, page)

		links, err := d.pdfs.ExtractPDFLinks(page.HTML, detail.URL, tourpipe.SourceDetail)
		if err != nil {
			d.logger.Warn("pdf extraction failed",
				"url", detail.URL,
				"err", err,
			)
			continue
		}

		tourID := tourpipe.TourIDFromURL(detail.URL)
		for _, link := range links {
			link.TourID = tourID
			appendPDF(result, seenPDFs, link)
		}
	}

	return result, nil
}

// appendPDF adds a link unless its URL was already collected, keeping
// first-seen tagging.
func appendPDF(result *DiscoveryResult, seen map[string]bool, link tourpipe.DocumentLink) {
	if seen[link.URL] {
		return
	}
	seen[link.URL] = true
	result.Links = append(result.Links, link)
}

// delay pauses between fetches, honoring cancellation.
func (d *Discoverer) delay(ctx context.Context) error {
	if d.fetchDelay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d.fetchDelay):
		return nil
	}
}

// wait applies per-domain rate limiting when configured.
func (d *Discoverer) wait(ctx context.Context, rawURL string) error {
	if d.limiter == nil {
		return nil
	}
	return d.limiter.Wait(ctx, Domain(rawURL))
}
