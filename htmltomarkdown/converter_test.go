package htmltomarkdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourfame/tourpipe"
	"github.com/tourfame/tourpipe/htmltomarkdown"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Kapadokya Turu</h1><p>3 gece 4 gün konaklamalı tur.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Kapadokya Turu")
		assert.Contains(t, md, "3 gece 4 gün")
	})

	t.Run("converts itinerary lists", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>1. Gün: İstanbul çıkış</li><li>2. Gün: Göreme</li></ul>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "- 1. Gün: İstanbul çıkış")
		assert.Contains(t, md, "- 2. Gün: Göreme")
	})

	t.Run("preserves price tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Oda</th><th>Fiyat</th></tr></thead>
<tbody><tr><td>Çift kişilik</td><td>12.500 TL</td></tr></tbody>
</table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Oda")
		assert.Contains(t, md, "12.500 TL")
		assert.Contains(t, md, "|")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   ")

		require.Error(t, err)
		assert.Equal(t, tourpipe.EINVALID, tourpipe.ErrorCode(err))
	})
}
