package gemini

import (
	"context"

	"google.golang.org/genai"

	"github.com/tourfame/tourpipe"
)

// Ensure Transcriber implements tourpipe.Transcriber at compile time.
var _ tourpipe.Transcriber = (*Transcriber)(nil)

// Transcriber turns rasterized brochure pages into text using Gemini's
// vision input. It is the OCR fallback for scanned PDFs with no text
// layer.
type Transcriber struct {
	client *genai.Client
}

// NewTranscriber creates a new Transcriber.
func NewTranscriber(client *genai.Client) *Transcriber {
	return &Transcriber{client: client}
}

// TranscribeImage returns all visible text in the page image.
func (tr *Transcriber) TranscribeImage(ctx context.Context, image []byte, mimeType string) (string, error) {
	if len(image) == 0 {
		return "", tourpipe.Errorf(tourpipe.EINVALID, "image required")
	}
	if mimeType == "" {
		mimeType = "image/png"
	}

	result, err := tr.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{
				{InlineData: &genai.Blob{Data: image, MIMEType: mimeType}},
				{Text: "Transcribe all visible text in this image. " +
					"Preserve the reading order and line structure. " +
					"Include prices, dates and itinerary details exactly as written. " +
					"Respond with the transcribed text only."},
			},
		}},
		nil,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", tourpipe.Errorf(tourpipe.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}
