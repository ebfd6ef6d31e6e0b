// Package pipeline orchestrates the tour acquisition flow: fetch
// strategy selection, link discovery, document download, text recovery
// and record extraction.
package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/tourfame/tourpipe"
)

// DefaultMinContentLength is the quality gate for direct HTTP fetches.
// JavaScript-shell pages return a skeleton well under this size, so
// anything shorter escalates to browser rendering.
const DefaultMinContentLength = 1000

// Ensure Selector implements tourpipe.PageFetcher at compile time.
var _ tourpipe.PageFetcher = (*Selector)(nil)

// Selector fetches pages with the cheapest strategy that yields real
// content: direct HTTP first, browser rendering when the direct result
// is missing or too small. Both strategies failing is a hard error.
type Selector struct {
	direct      tourpipe.Fetcher
	rendered    tourpipe.Fetcher
	minLen      int
	retryDelays []time.Duration
}

// SelectorOption configures a Selector.
type SelectorOption func(*Selector)

// WithMinContentLength sets the direct-fetch quality gate.
// Defaults to DefaultMinContentLength.
func WithMinContentLength(n int) SelectorOption {
	return func(s *Selector) {
		s.minLen = n
	}
}

// WithRetryDelays sets the backoff delays for direct fetch retries.
// Defaults to DefaultRetryDelays.
func WithRetryDelays(delays []time.Duration) SelectorOption {
	return func(s *Selector) {
		s.retryDelays = delays
	}
}

// NewSelector creates a Selector escalating from direct to rendered.
func NewSelector(direct, rendered tourpipe.Fetcher, opts ...SelectorOption) *Selector {
	s := &Selector{
		direct:      direct,
		rendered:    rendered,
		minLen:      DefaultMinContentLength,
		retryDelays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchPage retrieves the page, recording which strategy produced it.
func (s *Selector) FetchPage(ctx context.Context, url string) (*tourpipe.FetchResult, error) {
	html, directErr := FetchWithRetryDelays(ctx, url, s.direct.Fetch, nil, s.retryDelays)
	if directErr == nil && len(strings.TrimSpace(html)) >= s.minLen {
		return &tourpipe.FetchResult{URL: url, HTML: html, Method: tourpipe.FetchDirect}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	html, renderedErr := s.rendered.Fetch(ctx, url)
	if renderedErr != nil {
		if directErr != nil {
			return nil, tourpipe.Errorf(tourpipe.EUNAVAILABLE,
				"both fetch strategies failed for %s: direct: %v; rendered: %v", url, directErr, renderedErr)
		}
		return nil, renderedErr
	}

	return &tourpipe.FetchResult{URL: url, HTML: html, Method: tourpipe.FetchRendered}, nil
}

// Close releases resources held by both fetchers.
func (s *Selector) Close() error {
	directErr := s.direct.Close()
	renderedErr := s.rendered.Close()
	if directErr != nil {
		return directErr
	}
	return renderedErr
}
