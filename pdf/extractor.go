// Package pdf provides PDF text-layer extraction and page rasterization
// for brochure documents.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tourfame/tourpipe"
)

// Ensure TextLayerExtractor implements tourpipe.TextLayerExtractor at compile time.
var _ tourpipe.TextLayerExtractor = (*TextLayerExtractor)(nil)

// TextLayerExtractor pulls embedded text out of a PDF file. Scanned
// brochures have no text layer and come back empty; callers decide
// whether to escalate to OCR.
type TextLayerExtractor struct{}

// NewTextLayerExtractor creates a new TextLayerExtractor.
func NewTextLayerExtractor() *TextLayerExtractor {
	return &TextLayerExtractor{}
}

// ExtractText returns the concatenated text layer of the PDF at path.
// An unreadable or malformed file is an error; a well-formed file with
// no text layer returns an empty string and no error.
func (e *TextLayerExtractor) ExtractText(ctx context.Context, pdfPath string) (text string, err error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// The parser panics on some malformed agency brochures instead of
	// returning an error.
	defer func() {
		if r := recover(); r != nil {
			err = tourpipe.Errorf(tourpipe.EINVALID, "malformed PDF %s: %v", pdfPath, r)
		}
	}()

	f, reader, err := pdf.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	b, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("reading text layer of %s: %w", pdfPath, err)
	}
	if _, err := buf.ReadFrom(b); err != nil {
		return "", fmt.Errorf("reading text layer of %s: %w", pdfPath, err)
	}

	return strings.TrimSpace(buf.String()), nil
}
