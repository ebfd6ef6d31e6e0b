package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tourfame/tourpipe"
)

func TestParseContacts(t *testing.T) {
	t.Parallel()

	t.Run("normalizes both numbers", func(t *testing.T) {
		t.Parallel()

		got := parseContacts(`{"whatsapp": "+90 (532) 111 22 33", "phone": "0212 444 55 66"}`)

		assert.Equal(t, tourpipe.ContactInfo{
			Whatsapp: "+905321112233",
			Phone:    "02124445566",
		}, got)
	})

	t.Run("missing fields stay absent", func(t *testing.T) {
		t.Parallel()

		got := parseContacts(`{"phone": "0212 444 55 66"}`)

		assert.Empty(t, got.Whatsapp)
		assert.Equal(t, "02124445566", got.Phone)
	})

	t.Run("unparseable response is the zero value", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, tourpipe.ContactInfo{}, parseContacts("I could not find any numbers."))
	})
}

func TestStripHTML(t *testing.T) {
	t.Parallel()

	t.Run("plain text passes through", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "call 0212 444 55 66", stripHTML("call 0212 444 55 66"))
	})

	t.Run("markup is reduced to text", func(t *testing.T) {
		t.Parallel()

		got := stripHTML(`<html><head><style>body{}</style></head><body><p>İletişim:</p><span>0212 444 55 66</span><script>var x=1;</script></body></html>`)

		assert.Equal(t, "İletişim: 0212 444 55 66", got)
	})
}

func TestBuildTourPrompt(t *testing.T) {
	t.Parallel()

	prompt := buildTourPrompt("Kapadokya Turu 3 gece 4 gün")

	assert.Contains(t, prompt, "<source>")
	assert.Contains(t, prompt, "Kapadokya Turu")
}
