// Package goquery provides CSS-selector based link discovery over
// listing and detail pages of travel-agency sites.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tourfame/tourpipe"
)

// DefaultMaxDetailLinks caps how many detail links one discovery call
// returns.
const DefaultMaxDetailLinks = 50

// defaultPathPatterns match URL paths that agency sites use for tour
// detail pages.
var defaultPathPatterns = []string{
	"/itinerary/", "/tour/", "/tours/", "/tur/", "/turlar/",
	"/package/", "/paket/", "/trip/", "/gezi/",
}

// defaultClassPatterns match markup class names wrapping tour cards.
var defaultClassPatterns = []string{
	"tour", "tur-", "package", "paket", "trip", "card-title", "item-title",
}

// categoryPathMarkers identify obvious non-detail destinations that the
// broad class heuristic would otherwise pick up.
var categoryPathMarkers = []string{
	"/category/", "/categories/", "/kategori/", "/tag/", "/etiket/",
	"/blog/", "/page/", "/sayfa/",
}

// Ensure DetailSelector implements tourpipe.DetailLinkSelector at compile time.
var _ tourpipe.DetailLinkSelector = (*DetailSelector)(nil)

// DetailSelector extracts candidate tour detail-page links from listing
// HTML using ordered heuristics: URL-path patterns first, then markup
// class-name patterns. Earlier heuristics take priority for ordering;
// first-seen wins for dedup.
type DetailSelector struct {
	MaxLinks      int
	PathPatterns  []string
	ClassPatterns []string
}

// NewDetailSelector creates a DetailSelector with default heuristics.
func NewDetailSelector() *DetailSelector {
	return &DetailSelector{
		MaxLinks:      DefaultMaxDetailLinks,
		PathPatterns:  defaultPathPatterns,
		ClassPatterns: defaultClassPatterns,
	}
}

// ExtractDetailLinks parses HTML and returns detail links in discovery
// order, deduplicated by absolute URL and truncated to MaxLinks.
// Malformed href values are skipped, never fatal.
func (s *DetailSelector) ExtractDetailLinks(html string, baseURL string) ([]tourpipe.DetailLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, tourpipe.Errorf(tourpipe.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, tourpipe.Errorf(tourpipe.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []tourpipe.DetailLink

	add := func(sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || strings.TrimSpace(href) == "" {
			return
		}
		if isNonHTTPLink(href) {
			return
		}
		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}
		if !isSameHost(base, resolved) {
			return
		}
		if !looksLikeDetailURL(resolved) {
			return
		}
		if seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, tourpipe.DetailLink{
			URL:   resolved,
			Title: strings.TrimSpace(sel.Text()),
		})
	}

	// Heuristic 1: anchors whose path matches a known detail pattern.
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if s.matchesPathPattern(href) {
			add(sel)
		}
	})

	// Heuristic 2: anchors inside elements whose class names look like
	// tour cards. Broader, so it runs second.
	for _, pattern := range s.ClassPatterns {
		doc.Find(`[class*="` + pattern + `"] a[href], a[class*="` + pattern + `"]`).Each(func(_ int, sel *goquery.Selection) {
			add(sel)
		})
	}

	if s.MaxLinks > 0 && len(links) > s.MaxLinks {
		links = links[:s.MaxLinks]
	}

	return links, nil
}

func (s *DetailSelector) matchesPathPattern(href string) bool {
	lower := strings.ToLower(href)
	for _, p := range s.PathPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// looksLikeDetailURL filters out obvious non-detail destinations:
// the site root and category/tag/blog pages.
func looksLikeDetailURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	path := strings.TrimSuffix(u.Path, "/")
	if path == "" {
		return false
	}
	lower := strings.ToLower(u.Path)
	for _, marker := range categoryPathMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}
	return true
}

// resolveURL resolves a relative URL against a base URL.
// Returns "" for unparseable hrefs.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// isSameHost checks if the resolved URL has the same host as the base URL.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

// isNonHTTPLink reports javascript:, mailto:, tel: and fragment links.
func isNonHTTPLink(href string) bool {
	lower := strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(lower, "javascript:") ||
		strings.HasPrefix(lower, "mailto:") ||
		strings.HasPrefix(lower, "tel:") ||
		strings.HasPrefix(lower, "#")
}
