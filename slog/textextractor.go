package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/tourfame/tourpipe"
)

// Ensure LoggingTextExtractor implements tourpipe.TextExtractor.
var _ tourpipe.TextExtractor = (*LoggingTextExtractor)(nil)

// LoggingTextExtractor wraps a TextExtractor and logs which recovery
// method produced the text. OCR escalations are slow and cost model
// calls, so they are worth seeing in the logs.
type LoggingTextExtractor struct {
	next   tourpipe.TextExtractor
	logger *slog.Logger
}

// NewLoggingTextExtractor creates a new LoggingTextExtractor.
func NewLoggingTextExtractor(next tourpipe.TextExtractor, logger *slog.Logger) *LoggingTextExtractor {
	return &LoggingTextExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingTextExtractor) Extract(ctx context.Context, pdfURL string, jobID string) (text *tourpipe.ExtractedText, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", pdfURL,
			"job", jobID,
			"duration", time.Since(begin),
			"err", err,
		}
		if text != nil {
			attrs = append(attrs, "method", text.Method, "chars", len(text.Content))
		}
		e.logger.Info("text extraction", attrs...)
	}(time.Now())
	return e.next.Extract(ctx, pdfURL, jobID)
}
