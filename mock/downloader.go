package mock

import (
	"context"

	"github.com/tourfame/tourpipe"
)

var _ tourpipe.DocumentDownloader = (*DocumentDownloader)(nil)

// DocumentDownloader is a mock implementation of tourpipe.DocumentDownloader.
type DocumentDownloader struct {
	DownloadFn func(ctx context.Context, link tourpipe.DocumentLink, jobID string) *tourpipe.StoredDocument
}

func (d *DocumentDownloader) Download(ctx context.Context, link tourpipe.DocumentLink, jobID string) *tourpipe.StoredDocument {
	return d.DownloadFn(ctx, link, jobID)
}

var _ tourpipe.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of tourpipe.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *tourpipe.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *tourpipe.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}

var _ tourpipe.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of tourpipe.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*tourpipe.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*tourpipe.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ tourpipe.Converter = (*Converter)(nil)

// Converter is a mock implementation of tourpipe.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
