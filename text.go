package tourpipe

import "context"

// ExtractMethod identifies how text was recovered from a PDF.
type ExtractMethod string

// Text recovery methods.
const (
	MethodTextLayer ExtractMethod = "text_layer" // embedded digital text
	MethodOCR       ExtractMethod = "ocr"        // rasterize + vision model
	MethodHTML      ExtractMethod = "html"       // converted page content, no PDF involved
)

// ExtractedText is plain text recovered from a PDF, with provenance.
// Content is never empty on success; the absence of text is an explicit
// failure, not an empty success.
type ExtractedText struct {
	Content     string
	Method      ExtractMethod
	SourceURL   string
	ContentHash string
}

// TextLayerExtractor pulls embedded digital text from a PDF file.
// Fast, but fails (or yields almost nothing) on scanned documents.
type TextLayerExtractor interface {
	ExtractText(ctx context.Context, pdfPath string) (string, error)
}

// PageRasterizer converts one PDF page into an image file under destDir.
// An error for a page past the end of the document means "no more pages",
// which callers treat as the end of rasterization, not a failure.
type PageRasterizer interface {
	RasterizePage(ctx context.Context, pdfPath string, page int, destDir string) (imagePath string, err error)
}

// Transcriber transcribes all visible text from a page image,
// preserving structure. Used as the OCR fallback for scanned PDFs.
type Transcriber interface {
	TranscribeImage(ctx context.Context, image []byte, mimeType string) (string, error)
}

// TextExtractor converts a PDF at a URL into plain text, deciding between
// text-layer extraction and the OCR fallback.
type TextExtractor interface {
	Extract(ctx context.Context, pdfURL string, jobID string) (*ExtractedText, error)
}
