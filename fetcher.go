package tourpipe

import "context"

// FetchMethod identifies which fetch strategy produced a page.
type FetchMethod string

// Fetch strategies, cheapest first.
const (
	FetchDirect   FetchMethod = "direct"   // plain HTTP GET
	FetchRendered FetchMethod = "rendered" // headless browser rendering
)

// FetchResult holds the HTML of a fetched page and the strategy that
// produced it. Results are consumed once by the next pipeline stage.
type FetchResult struct {
	URL    string
	HTML   string
	Method FetchMethod
}

// Fetcher retrieves HTML from a URL using a single strategy.
// Implementations may use plain HTTP or browser automation.
type Fetcher interface {
	// Fetch retrieves the HTML for the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// PageFetcher retrieves a page, choosing between fetch strategies.
// Implementations hide the direct-vs-rendered escalation decision.
type PageFetcher interface {
	FetchPage(ctx context.Context, url string) (*FetchResult, error)
}

// BinaryFetcher retrieves raw document bytes from a URL.
// Tour-agency origins frequently serve PDFs with broken certificate chains
// and wrong content types, so implementations relax TLS verification and
// report the declared content type without trusting it.
type BinaryFetcher interface {
	FetchBytes(ctx context.Context, url string) (data []byte, contentType string, err error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
