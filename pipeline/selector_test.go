package pipeline_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourfame/tourpipe"
	"github.com/tourfame/tourpipe/mock"
	"github.com/tourfame/tourpipe/pipeline"
)

func TestSelector_FetchPage(t *testing.T) {
	t.Parallel()

	bigPage := "<html>" + strings.Repeat("tour content ", 100) + "</html>"

	t.Run("direct result over the gate wins", func(t *testing.T) {
		t.Parallel()

		direct := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return bigPage, nil
			},
		}
		rendered := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				t.Fatal("rendered fetcher should not be called")
				return "", nil
			},
		}

		s := pipeline.NewSelector(direct, rendered)
		result, err := s.FetchPage(context.Background(), "https://example.com/turlar")

		require.NoError(t, err)
		assert.Equal(t, tourpipe.FetchDirect, result.Method)
		assert.Equal(t, bigPage, result.HTML)
	})

	t.Run("short direct result escalates to rendered", func(t *testing.T) {
		t.Parallel()

		direct := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html><div id=app></div></html>", nil
			},
		}
		rendered := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return bigPage, nil
			},
		}

		s := pipeline.NewSelector(direct, rendered)
		result, err := s.FetchPage(context.Background(), "https://example.com/turlar")

		require.NoError(t, err)
		assert.Equal(t, tourpipe.FetchRendered, result.Method)
	})

	t.Run("direct failure escalates to rendered", func(t *testing.T) {
		t.Parallel()

		calls := 0
		direct := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				calls++
				return "", tourpipe.Errorf(tourpipe.EUNAVAILABLE, "status 403")
			},
		}
		rendered := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return bigPage, nil
			},
		}

		s := pipeline.NewSelector(direct, rendered, pipeline.WithRetryDelays(fastDelays()))
		result, err := s.FetchPage(context.Background(), "https://example.com/turlar")

		require.NoError(t, err)
		assert.Equal(t, tourpipe.FetchRendered, result.Method)
		assert.Equal(t, 4, calls, "direct fetch should be retried before escalating")
	})

	t.Run("both strategies failing is an error", func(t *testing.T) {
		t.Parallel()

		direct := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", tourpipe.Errorf(tourpipe.EUNAVAILABLE, "status 500")
			},
		}
		rendered := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", tourpipe.Errorf(tourpipe.EINTERNAL, "browser crashed")
			},
		}

		s := pipeline.NewSelector(direct, rendered, pipeline.WithRetryDelays(fastDelays()))
		_, err := s.FetchPage(context.Background(), "https://example.com/turlar")

		require.Error(t, err)
		assert.Equal(t, tourpipe.EUNAVAILABLE, tourpipe.ErrorCode(err))
		assert.Contains(t, err.Error(), "both fetch strategies failed")
	})

	t.Run("custom gate", func(t *testing.T) {
		t.Parallel()

		direct := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "tiny but enough", nil
			},
		}

		s := pipeline.NewSelector(direct, nil, pipeline.WithMinContentLength(5))
		result, err := s.FetchPage(context.Background(), "https://example.com/turlar")

		require.NoError(t, err)
		assert.Equal(t, tourpipe.FetchDirect, result.Method)
	})
}

func fastDelays() []time.Duration {
	return []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond}
}

func TestSelector_Close(t *testing.T) {
	t.Parallel()

	directClosed, renderedClosed := false, false
	direct := &mock.Fetcher{CloseFn: func() error { directClosed = true; return nil }}
	rendered := &mock.Fetcher{CloseFn: func() error { renderedClosed = true; return nil }}

	s := pipeline.NewSelector(direct, rendered)
	require.NoError(t, s.Close())

	assert.True(t, directClosed)
	assert.True(t, renderedClosed)
}
