package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourfame/tourpipe"
	"github.com/tourfame/tourpipe/goquery"
)

func TestPDFSelector_ExtractPDFLinks(t *testing.T) {
	t.Parallel()

	t.Run("finds direct pdf hrefs", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/files/kapadokya.pdf">Kapadokya Programı</a>
			<a href="/files/ege.PDF?v=3">Ege</a>
			<a href="/tours/kapadokya">Not a PDF</a>
		</body></html>`

		s := goquery.NewPDFSelector()
		links, err := s.ExtractPDFLinks(html, "https://example.com", tourpipe.SourceDetail)

		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, "https://example.com/files/kapadokya.pdf", links[0].URL)
		assert.Equal(t, "Kapadokya Programı", links[0].Text)
		assert.Equal(t, tourpipe.SourceDetail, links[0].Source)
	})

	t.Run("keyword text requires pdf in href", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/download?type=pdf&id=42">Broşür İndir</a>
			<a href="/download?id=43">Broşür İndir</a>
		</body></html>`

		s := goquery.NewPDFSelector()
		links, err := s.ExtractPDFLinks(html, "https://example.com", tourpipe.SourceListing)

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Contains(t, links[0].URL, "type=pdf")
	})

	t.Run("finds quoted pdf paths in inline handlers", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<button onclick="window.open('/docs/program.pdf')">Programı Gör</button>
		</body></html>`

		s := goquery.NewPDFSelector()
		links, err := s.ExtractPDFLinks(html, "https://example.com", tourpipe.SourceDetail)

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/docs/program.pdf", links[0].URL)
	})

	t.Run("finds data attributes", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div data-pdf="/docs/tur.pdf">Tur</div>
			<span data-file="/docs/brosur.pdf">Broşür</span>
			<span data-url="/docs/plain.html">Not PDF</span>
		</body></html>`

		s := goquery.NewPDFSelector()
		links, err := s.ExtractPDFLinks(html, "https://example.com", tourpipe.SourceDetail)

		require.NoError(t, err)
		require.Len(t, links, 2)
	})

	t.Run("strategies share one dedup set", func(t *testing.T) {
		t.Parallel()

		// The same document referenced by href, keyword anchor, onclick
		// and data attribute must appear exactly once.
		html := `<html><body>
			<a href="/docs/tur.pdf">Program</a>
			<a href="/docs/tur.pdf">PDF İndir</a>
			<button onclick="open('/docs/tur.pdf')">Gör</button>
			<div data-pdf="/docs/tur.pdf">Tur</div>
			<a href="/docs/other.pdf">Diğer</a>
		</body></html>`

		s := goquery.NewPDFSelector()
		links, err := s.ExtractPDFLinks(html, "https://example.com", tourpipe.SourceDetail)

		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, "https://example.com/docs/tur.pdf", links[0].URL)
		assert.Equal(t, "https://example.com/docs/other.pdf", links[1].URL)
	})

	t.Run("empty page yields no links", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewPDFSelector()
		links, err := s.ExtractPDFLinks("<html><body></body></html>", "https://example.com", tourpipe.SourceListing)

		require.NoError(t, err)
		assert.Empty(t, links)
	})
}
