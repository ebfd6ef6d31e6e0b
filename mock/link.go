package mock

import "github.com/tourfame/tourpipe"

var _ tourpipe.DetailLinkSelector = (*DetailLinkSelector)(nil)

// DetailLinkSelector is a mock implementation of tourpipe.DetailLinkSelector.
type DetailLinkSelector struct {
	ExtractDetailLinksFn func(html string, baseURL string) ([]tourpipe.DetailLink, error)
}

func (s *DetailLinkSelector) ExtractDetailLinks(html string, baseURL string) ([]tourpipe.DetailLink, error) {
	return s.ExtractDetailLinksFn(html, baseURL)
}

var _ tourpipe.PDFLinkSelector = (*PDFLinkSelector)(nil)

// PDFLinkSelector is a mock implementation of tourpipe.PDFLinkSelector.
type PDFLinkSelector struct {
	ExtractPDFLinksFn func(html string, baseURL string, source tourpipe.LinkSource) ([]tourpipe.DocumentLink, error)
}

func (s *PDFLinkSelector) ExtractPDFLinks(html string, baseURL string, source tourpipe.LinkSource) ([]tourpipe.DocumentLink, error) {
	return s.ExtractPDFLinksFn(html, baseURL, source)
}
