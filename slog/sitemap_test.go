package slog_test

import (
	"bytes"
	"context"
	stdslog "log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourfame/tourpipe"
	"github.com/tourfame/tourpipe/mock"
	"github.com/tourfame/tourpipe/slog"
)

func TestLoggingSitemapService_LogsCount(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

	next := &mock.SitemapService{
		DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *tourpipe.URLFilter) ([]string, error) {
			return []string{
				"https://example.com/tours/kapadokya",
				"https://example.com/tours/ege",
			}, nil
		},
	}

	s := slog.NewLoggingSitemapService(next, logger)
	urls, err := s.DiscoverURLs(context.Background(), "https://example.com", nil)

	require.NoError(t, err)
	assert.Len(t, urls, 2)
	assert.Contains(t, buf.String(), "sitemap discovery")
	assert.Contains(t, buf.String(), "count=2")
}
