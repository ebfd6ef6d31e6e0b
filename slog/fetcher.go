// Package slog provides logging decorators for tourpipe services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/tourfame/tourpipe"
)

// Ensure LoggingPageFetcher implements tourpipe.PageFetcher.
var _ tourpipe.PageFetcher = (*LoggingPageFetcher)(nil)

// LoggingPageFetcher wraps a PageFetcher and logs each fetch with the
// strategy that produced it. The direct-vs-rendered split is the main
// thing operators want to see when a site stops yielding tours.
type LoggingPageFetcher struct {
	next   tourpipe.PageFetcher
	logger *slog.Logger
}

// NewLoggingPageFetcher creates a new LoggingPageFetcher.
func NewLoggingPageFetcher(next tourpipe.PageFetcher, logger *slog.Logger) *LoggingPageFetcher {
	return &LoggingPageFetcher{next: next, logger: logger}
}

// FetchPage delegates to the wrapped fetcher and logs the operation.
func (f *LoggingPageFetcher) FetchPage(ctx context.Context, url string) (result *tourpipe.FetchResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		}
		if result != nil {
			attrs = append(attrs, "method", result.Method, "bytes", len(result.HTML))
		}
		f.logger.Info("page fetch", attrs...)
	}(time.Now())
	return f.next.FetchPage(ctx, url)
}
