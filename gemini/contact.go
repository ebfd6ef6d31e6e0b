package gemini

import (
	"context"
	"encoding/json"
	"strings"

	"golang.org/x/net/html"
	"google.golang.org/genai"

	"github.com/tourfame/tourpipe"
)

// Ensure ContactExtractor implements tourpipe.ContactExtractor at compile time.
var _ tourpipe.ContactExtractor = (*ContactExtractor)(nil)

// ContactExtractor asks Gemini for agency contact numbers found in page
// or brochure text. Contact info is best effort: every failure path
// returns an empty ContactInfo and a nil error so a flaky model call
// never sinks the record it would have enriched.
type ContactExtractor struct {
	client *genai.Client
}

// NewContactExtractor creates a new ContactExtractor.
func NewContactExtractor(client *genai.Client) *ContactExtractor {
	return &ContactExtractor{client: client}
}

// ExtractContacts returns normalized WhatsApp and phone numbers found in
// the text, or the zero value when nothing could be extracted.
func (e *ContactExtractor) ExtractContacts(ctx context.Context, text string) (tourpipe.ContactInfo, error) {
	text = stripHTML(text)
	if strings.TrimSpace(text) == "" {
		return tourpipe.ContactInfo{}, nil
	}

	result, err := e.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{
				Text: "Find the travel agency's WhatsApp number and phone number " +
					"in the following text:\n\n" + text,
			}},
		}},
		buildContactConfig(),
	)
	if err != nil || result == nil {
		return tourpipe.ContactInfo{}, nil
	}

	return parseContacts(result.Text()), nil
}

// buildContactConfig constrains the model to a fixed JSON shape so the
// response parses without repair.
func buildContactConfig() *genai.GenerateContentConfig {
	temp := float32(0.0)
	return &genai.GenerateContentConfig{
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"whatsapp": {
					Type:        genai.TypeString,
					Description: "WhatsApp number if present, empty string otherwise",
					Nullable:    genai.Ptr(true),
				},
				"phone": {
					Type:        genai.TypeString,
					Description: "Phone number if present, empty string otherwise",
					Nullable:    genai.Ptr(true),
				},
			},
		},
	}
}

// parseContacts decodes and normalizes the model's response. Anything
// unparseable comes back as the zero value.
func parseContacts(raw string) tourpipe.ContactInfo {
	var payload struct {
		Whatsapp string `json:"whatsapp"`
		Phone    string `json:"phone"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return tourpipe.ContactInfo{}
	}
	return tourpipe.ContactInfo{
		Whatsapp: tourpipe.NormalizeContactNumber(payload.Whatsapp),
		Phone:    tourpipe.NormalizeContactNumber(payload.Phone),
	}
}

// stripHTML returns the text content of s if it contains markup,
// otherwise s unchanged. Detail pages are passed in raw when no
// brochure exists for a tour.
func stripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}

	node, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				sb.WriteString(t)
				sb.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(node)

	return strings.TrimSpace(sb.String())
}
