// Package gemini implements the model-backed extraction interfaces
// using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/tourfame/tourpipe"
)

const model = "gemini-2.5-flash"

// maxInputRunes caps the text sent in one extraction prompt. Brochure
// text rarely comes close; the cap guards against pathological pages.
const maxInputRunes = 400000

// Ensure TourExtractor implements tourpipe.TourExtractor at compile time.
var _ tourpipe.TourExtractor = (*TourExtractor)(nil)

// TourExtractor asks Gemini to pull structured tour records out of
// brochure or page text. The raw model output is returned as-is: the
// model routinely emits malformed JSON and downstream repair owns
// making sense of it.
type TourExtractor struct {
	client *genai.Client
}

// NewTourExtractor creates a new TourExtractor.
func NewTourExtractor(client *genai.Client) *TourExtractor {
	return &TourExtractor{client: client}
}

// ExtractTours returns the model's raw response for the given text.
func (e *TourExtractor) ExtractTours(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", tourpipe.Errorf(tourpipe.EINVALID, "text required")
	}
	if runes := []rune(text); len(runes) > maxInputRunes {
		text = string(runes[:maxInputRunes])
	}

	result, err := e.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: buildTourPrompt(text)}},
		}},
		buildTourConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", tourpipe.Errorf(tourpipe.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// buildTourConfig returns the GenerateContentConfig for tour extraction.
func buildTourConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You extract package tour offers from travel agency text. " +
					"Respond with a JSON array of tour objects and nothing else. " +
					"Each object may have: title (string, required), description (string), " +
					"days (integer), nights (integer), price (number), currency (string), " +
					"destinations (array of strings), includes (array of strings), " +
					"excludes (array of strings). Omit fields you cannot find. " +
					"If the text contains no tours, respond with [].",
			}},
		},
		Temperature: &temp,
	}
}

// buildTourPrompt builds the user prompt around the source text.
func buildTourPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString("<source>\n")
	sb.WriteString(text)
	sb.WriteString("\n</source>\n\n")
	fmt.Fprintf(&sb, "Extract every package tour offer from the source above.")
	return sb.String()
}
