// Package trafilatura extracts main content from agency pages, dropping
// navigation, footers and booking widgets before text reaches the
// language model.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"

	"github.com/tourfame/tourpipe"
)

// Ensure Extractor implements tourpipe.Extractor at compile time.
var _ tourpipe.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. Pages where
// trafilatura finds no main content node fall back to the raw body so
// that sparsely structured agency sites still yield text.
func (e *Extractor) Extract(rawHTML string) (*tourpipe.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, tourpipe.Errorf(tourpipe.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	contentHTML := rawHTML
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &tourpipe.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
