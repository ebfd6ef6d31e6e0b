package mock

import (
	"context"

	"github.com/tourfame/tourpipe"
)

var _ tourpipe.TextLayerExtractor = (*TextLayerExtractor)(nil)

// TextLayerExtractor is a mock implementation of tourpipe.TextLayerExtractor.
type TextLayerExtractor struct {
	ExtractTextFn func(ctx context.Context, pdfPath string) (string, error)
}

func (e *TextLayerExtractor) ExtractText(ctx context.Context, pdfPath string) (string, error) {
	return e.ExtractTextFn(ctx, pdfPath)
}

var _ tourpipe.PageRasterizer = (*PageRasterizer)(nil)

// PageRasterizer is a mock implementation of tourpipe.PageRasterizer.
type PageRasterizer struct {
	RasterizePageFn func(ctx context.Context, pdfPath string, page int, destDir string) (string, error)
}

func (r *PageRasterizer) RasterizePage(ctx context.Context, pdfPath string, page int, destDir string) (string, error) {
	return r.RasterizePageFn(ctx, pdfPath, page, destDir)
}

var _ tourpipe.Transcriber = (*Transcriber)(nil)

// Transcriber is a mock implementation of tourpipe.Transcriber.
type Transcriber struct {
	TranscribeImageFn func(ctx context.Context, image []byte, mimeType string) (string, error)
}

func (t *Transcriber) TranscribeImage(ctx context.Context, image []byte, mimeType string) (string, error) {
	return t.TranscribeImageFn(ctx, image, mimeType)
}

var _ tourpipe.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of tourpipe.TextExtractor.
type TextExtractor struct {
	ExtractFn func(ctx context.Context, pdfURL string, jobID string) (*tourpipe.ExtractedText, error)
}

func (e *TextExtractor) Extract(ctx context.Context, pdfURL string, jobID string) (*tourpipe.ExtractedText, error) {
	return e.ExtractFn(ctx, pdfURL, jobID)
}
