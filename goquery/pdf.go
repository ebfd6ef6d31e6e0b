package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tourfame/tourpipe"
)

// pdfKeywords match anchor text that advertises a brochure download.
// Localized for the Turkish agency sites the pipeline targets.
var pdfKeywords = []string{
	"pdf", "broşür", "brosur", "brochure", "indir", "download",
	"itinerary", "program",
}

// handlerAttrs are inline event-handler attributes scanned for quoted
// PDF paths (e.g. onclick="window.open('/files/tour.pdf')").
var handlerAttrs = []string{"onclick", "onmousedown", "onmouseup"}

// dataAttrs are data attributes that agency themes stuff PDF URLs into.
var dataAttrs = []string{"data-pdf", "data-file", "data-url"}

// handlerPDFRe extracts a quoted path containing ".pdf" from inline
// handler code.
var handlerPDFRe = regexp.MustCompile(`['"]([^'"]*\.pdf[^'"]*)['"]`)

// Ensure PDFSelector implements tourpipe.PDFLinkSelector at compile time.
var _ tourpipe.PDFLinkSelector = (*PDFSelector)(nil)

// PDFSelector extracts candidate PDF brochure links from HTML.
// Four independent strategies run over the same parsed page, all feeding
// one shared dedup set so a link found twice counts once:
//
//  1. anchors whose href ends in or contains ".pdf"
//  2. anchors whose text matches a PDF keyword AND whose href contains
//     "pdf"; text alone is not sufficient
//  3. inline event-handler attributes containing a quoted .pdf path
//  4. data-pdf/data-file/data-url attributes containing "pdf"
type PDFSelector struct{}

// NewPDFSelector creates a new PDFSelector.
func NewPDFSelector() *PDFSelector {
	return &PDFSelector{}
}

// ExtractPDFLinks parses HTML and returns PDF links tagged with the kind
// of page they were found on. Results are deduplicated by absolute URL
// in discovery order.
func (s *PDFSelector) ExtractPDFLinks(html string, baseURL string, source tourpipe.LinkSource) ([]tourpipe.DocumentLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, tourpipe.Errorf(tourpipe.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, tourpipe.Errorf(tourpipe.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []tourpipe.DocumentLink

	add := func(rawURL, text string) {
		resolved := resolveURL(base, rawURL)
		if resolved == "" {
			return
		}
		if seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, tourpipe.DocumentLink{
			URL:    resolved,
			Text:   strings.TrimSpace(text),
			Source: source,
		})
	}

	// Strategy 1: hrefs that end in or contain .pdf.
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if strings.Contains(strings.ToLower(href), ".pdf") {
			add(href, sel.Text())
		}
	})

	// Strategy 2: keyword-labeled anchors whose href mentions pdf.
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !strings.Contains(strings.ToLower(href), "pdf") {
			return
		}
		text := strings.ToLower(sel.Text())
		for _, kw := range pdfKeywords {
			if strings.Contains(text, kw) {
				add(href, sel.Text())
				return
			}
		}
	})

	// Strategy 3: inline event handlers opening a PDF.
	for _, attr := range handlerAttrs {
		doc.Find("[" + attr + "]").Each(func(_ int, sel *goquery.Selection) {
			code, _ := sel.Attr(attr)
			if m := handlerPDFRe.FindStringSubmatch(code); m != nil {
				add(m[1], sel.Text())
			}
		})
	}

	// Strategy 4: explicit data attributes.
	for _, attr := range dataAttrs {
		doc.Find("[" + attr + "]").Each(func(_ int, sel *goquery.Selection) {
			value, _ := sel.Attr(attr)
			if strings.Contains(strings.ToLower(value), "pdf") {
				add(value, sel.Text())
			}
		})
	}

	return links, nil
}
