package pipeline

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/tourfame/tourpipe"
)

// DefaultMinTextLength is the text-layer quality gate. Scanned
// brochures often carry a vestigial text layer of a few dozen
// characters; anything under this escalates to OCR.
const DefaultMinTextLength = 100

// DefaultMaxOCRPages bounds the OCR fallback. Brochures beyond this
// length are almost always catalogs, and each page costs a model call.
const DefaultMaxOCRPages = 15

// pageBreak separates transcribed pages in assembled OCR output.
const pageBreak = "\n\n--- page break ---\n\n"

// Ensure TextEngine implements tourpipe.TextExtractor at compile time.
var _ tourpipe.TextExtractor = (*TextEngine)(nil)

// TextEngine turns a PDF URL into plain text. It tries the embedded
// text layer first and falls back to rasterizing pages and transcribing
// them with a vision model. OCR output is preferred only when it is
// strictly longer than the text layer; both coming back empty is a
// terminal error for the document.
type TextEngine struct {
	fetcher     tourpipe.BinaryFetcher
	textLayer   tourpipe.TextLayerExtractor
	rasterizer  tourpipe.PageRasterizer
	transcriber tourpipe.Transcriber
	storage     tourpipe.ObjectStorage
	logger      *slog.Logger

	minTextLen  int
	maxOCRPages int
}

// TextEngineOption configures a TextEngine.
type TextEngineOption func(*TextEngine)

// WithMinTextLength sets the text-layer quality gate.
// Defaults to DefaultMinTextLength.
func WithMinTextLength(n int) TextEngineOption {
	return func(e *TextEngine) {
		e.minTextLen = n
	}
}

// WithMaxOCRPages caps how many pages the OCR fallback processes.
// Defaults to DefaultMaxOCRPages.
func WithMaxOCRPages(n int) TextEngineOption {
	return func(e *TextEngine) {
		e.maxOCRPages = n
	}
}

// NewTextEngine creates a TextEngine.
func NewTextEngine(fetcher tourpipe.BinaryFetcher, textLayer tourpipe.TextLayerExtractor, rasterizer tourpipe.PageRasterizer, transcriber tourpipe.Transcriber, storage tourpipe.ObjectStorage, logger *slog.Logger, opts ...TextEngineOption) *TextEngine {
	e := &TextEngine{
		fetcher:     fetcher,
		textLayer:   textLayer,
		rasterizer:  rasterizer,
		transcriber: transcriber,
		storage:     storage,
		logger:      logger,
		minTextLen:  DefaultMinTextLength,
		maxOCRPages: DefaultMaxOCRPages,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract downloads the PDF and recovers its text. Temporary files are
// removed on every exit path.
func (e *TextEngine) Extract(ctx context.Context, pdfURL string, jobID string) (*tourpipe.ExtractedText, error) {
	tmpDir, err := os.MkdirTemp("", "tourpipe-pdf-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	data, _, err := e.fetcher.FetchBytes(ctx, pdfURL)
	if err != nil {
		return nil, err
	}

	pdfPath := filepath.Join(tmpDir, "document.pdf")
	if err := os.WriteFile(pdfPath, data, 0o644); err != nil {
		return nil, err
	}

	layerText, err := e.textLayer.ExtractText(ctx, pdfPath)
	if err != nil {
		e.logger.Warn("text layer extraction failed",
			"url", pdfURL,
			"err", err,
		)
		layerText = ""
	}
	layerText = strings.TrimSpace(layerText)

	if len(layerText) >= e.minTextLen {
		return e.result(layerText, tourpipe.MethodTextLayer, pdfURL), nil
	}

	ocrText, err := e.transcribePages(ctx, pdfPath, tmpDir, jobID)
	if err != nil {
		return nil, err
	}

	// Keep the text layer unless OCR genuinely recovered more.
	if len(ocrText) > len(layerText) {
		return e.result(ocrText, tourpipe.MethodOCR, pdfURL), nil
	}
	if layerText != "" {
		return e.result(layerText, tourpipe.MethodTextLayer, pdfURL), nil
	}

	return nil, tourpipe.Errorf(tourpipe.EINTERNAL, "no text recovered from %s", pdfURL)
}

// transcribePages rasterizes pages until the document runs out or the
// page cap is hit, uploading each image and transcribing it. Per-page
// transcription failures are logged and skipped.
func (e *TextEngine) transcribePages(ctx context.Context, pdfPath, tmpDir, jobID string) (string, error) {
	var pages []string

	for page := 1; page <= e.maxOCRPages; page++ {
		imagePath, err := e.rasterizer.RasterizePage(ctx, pdfPath, page, tmpDir)
		if err != nil {
			if err := ctx.Err(); err != nil {
				return "", err
			}
			// Past the end of the document.
			break
		}

		image, err := os.ReadFile(imagePath)
		if err != nil {
			return "", err
		}

		key := fmt.Sprintf("jobs/%s/ocr/page-%d.png", jobID, page)
		if _, err := e.storage.Put(ctx, key, image, "image/png"); err != nil {
			e.logger.Warn("page image upload failed",
				"key", key,
				"err", err,
			)
		}

		text, err := e.transcriber.TranscribeImage(ctx, image, "image/png")
		if err != nil {
			if err := ctx.Err(); err != nil {
				return "", err
			}
			e.logger.Warn("page transcription failed",
				"page", page,
				"err", err,
			)
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}

	return strings.Join(pages, pageBreak), nil
}

// result assembles an ExtractedText with its content hash.
func (e *TextEngine) result(content string, method tourpipe.ExtractMethod, sourceURL string) *tourpipe.ExtractedText {
	return &tourpipe.ExtractedText{
		Content:     content,
		Method:      method,
		SourceURL:   sourceURL,
		ContentHash: hashContent(content),
	}
}

// hashContent computes the xxHash of content as a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}
