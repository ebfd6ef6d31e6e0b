package tourpipe

import (
	"net/url"
	"strings"
)

// LinkSource identifies the kind of page a document link was found on.
type LinkSource string

// Pages a PDF link can be discovered on.
const (
	SourceListing LinkSource = "listing" // page enumerating multiple tours
	SourceDetail  LinkSource = "detail"  // page describing one tour
)

// DetailLink is a candidate tour detail-page URL discovered on a listing.
type DetailLink struct {
	URL   string
	Title string
}

// DocumentLink is a candidate PDF brochure URL.
type DocumentLink struct {
	URL    string
	Text   string
	Source LinkSource

	// TourID is the trailing segment of the detail-page URL the link was
	// found on, when discovered via a listing→detail crawl. Empty for
	// links found directly on listing pages.
	TourID string
}

// DetailLinkSelector extracts candidate detail-page links from HTML.
// Results are deduplicated by absolute URL in discovery order and capped.
type DetailLinkSelector interface {
	ExtractDetailLinks(html string, baseURL string) ([]DetailLink, error)
}

// PDFLinkSelector extracts candidate PDF brochure links from HTML.
// Multiple independent strategies feed one shared dedup set, so a link
// found by several strategies counts once.
type PDFLinkSelector interface {
	ExtractPDFLinks(html string, baseURL string, source LinkSource) ([]DocumentLink, error)
}

// IsPDFURL reports whether the URL points at a PDF: the path ends in
// ".pdf" (case-insensitive) or the URL contains ".pdf?".
func IsPDFURL(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	if strings.Contains(lower, ".pdf?") {
		return true
	}
	u, err := url.Parse(lower)
	if err != nil {
		return strings.HasSuffix(lower, ".pdf")
	}
	return strings.HasSuffix(u.Path, ".pdf")
}

// TourIDFromURL returns the trailing path segment of a detail-page URL,
// used as the owning tour identifier for PDFs found on that page.
// Returns "" for the site root or unparseable URLs.
func TourIDFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	path := strings.TrimSuffix(u.Path, "/")
	if path == "" {
		return ""
	}
	if idx := strings.LastIndex(path, "/"); idx != -1 {
		return path[idx+1:]
	}
	return path
}
