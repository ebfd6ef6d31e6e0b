package pdf

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/tourfame/tourpipe"
)

// DefaultRasterDPI balances OCR legibility against upload size.
const DefaultRasterDPI = 150

// Ensure Rasterizer implements tourpipe.PageRasterizer at compile time.
var _ tourpipe.PageRasterizer = (*Rasterizer)(nil)

// Rasterizer renders single PDF pages to PNG images by shelling out to
// pdftoppm from poppler-utils.
type Rasterizer struct {
	binary string
	dpi    int
}

// RasterizerOption configures a Rasterizer.
type RasterizerOption func(*Rasterizer)

// WithBinary overrides the pdftoppm binary path.
func WithBinary(path string) RasterizerOption {
	return func(r *Rasterizer) {
		r.binary = path
	}
}

// WithDPI sets the render resolution. Defaults to DefaultRasterDPI.
func WithDPI(dpi int) RasterizerOption {
	return func(r *Rasterizer) {
		r.dpi = dpi
	}
}

// NewRasterizer creates a new Rasterizer.
func NewRasterizer(opts ...RasterizerOption) *Rasterizer {
	r := &Rasterizer{
		binary: "pdftoppm",
		dpi:    DefaultRasterDPI,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RasterizePage renders one page (1-based) of the PDF to a PNG in
// destDir and returns its path. Asking for a page past the end of the
// document returns an ENOTFOUND error, which callers use as the
// page-loop stop signal.
func (r *Rasterizer) RasterizePage(ctx context.Context, pdfPath string, page int, destDir string) (string, error) {
	if page < 1 {
		return "", tourpipe.Errorf(tourpipe.EINVALID, "page must be >= 1, got %d", page)
	}

	prefix := filepath.Join(destDir, fmt.Sprintf("page-%d", page))

	cmd := exec.CommandContext(ctx, r.binary,
		"-png",
		"-r", fmt.Sprint(r.dpi),
		"-f", fmt.Sprint(page),
		"-l", fmt.Sprint(page),
		pdfPath,
		prefix,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("pdftoppm page %d of %s: %w: %s", page, pdfPath, err, out)
	}

	// pdftoppm pads the page number in the output name depending on the
	// document's page count, so probe the known variants.
	for _, name := range candidateNames(prefix, page) {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	}

	return "", tourpipe.Errorf(tourpipe.ENOTFOUND, "page %d not rendered for %s", page, pdfPath)
}

// candidateNames lists the output paths pdftoppm may have produced for
// the given page, unpadded first.
func candidateNames(prefix string, page int) []string {
	return []string{
		fmt.Sprintf("%s-%d.png", prefix, page),
		fmt.Sprintf("%s-%02d.png", prefix, page),
		fmt.Sprintf("%s-%03d.png", prefix, page),
	}
}
