package tourpipe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tourfame/tourpipe"
)

func TestIsPDFURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want bool
	}{
		{"https://example.com/brochure.pdf", true},
		{"https://example.com/brochure.PDF", true},
		{"https://example.com/files/tour.pdf?v=2", true},
		{"https://example.com/download?file=tour.pdf&x=1", false},
		{"https://example.com/download?file=tour.pdf?x=1", true},
		{"https://example.com/brochure.pdfx", false},
		{"https://example.com/tour", false},
		{"https://example.com/", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tourpipe.IsPDFURL(tt.url), tt.url)
	}
}

func TestTourIDFromURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want string
	}{
		{"https://example.com/Itinerary/ABC1", "ABC1"},
		{"https://example.com/tours/kapadokya-turu/", "kapadokya-turu"},
		{"https://example.com/", ""},
		{"https://example.com", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tourpipe.TourIDFromURL(tt.url), tt.url)
	}
}
