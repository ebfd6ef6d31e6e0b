//go:build integration

package gemini_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/tourfame/tourpipe/gemini"
)

func TestTourExtractor_Integration_ReturnsJSONArray(t *testing.T) {
	t.Parallel()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	require.NoError(t, err)

	e := gemini.NewTourExtractor(client)

	raw, err := e.ExtractTours(ctx, "Kapadokya Turu: 3 gece 4 gün, 12.500 TL. "+
		"Dahil: ulaşım, kahvaltı. Hariç: öğle yemekleri.")

	require.NoError(t, err)
	assert.Contains(t, raw, "Kapadokya")
}

func TestContactExtractor_Integration_FindsNumbers(t *testing.T) {
	t.Parallel()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	require.NoError(t, err)

	e := gemini.NewContactExtractor(client)

	info, err := e.ExtractContacts(ctx, "Rezervasyon için WhatsApp: +90 532 111 22 33")

	require.NoError(t, err)
	assert.Equal(t, "+905321112233", info.Whatsapp)
}
