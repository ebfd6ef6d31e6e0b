package pipeline_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourfame/tourpipe"
	"github.com/tourfame/tourpipe/mock"
	"github.com/tourfame/tourpipe/pipeline"
)

func TestDownloader_Download(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.DiscardHandler)

	t.Run("stores PDF under job-scoped key", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.BinaryFetcher{
			FetchBytesFn: func(ctx context.Context, url string) ([]byte, string, error) {
				return []byte("%PDF-1.4"), "application/pdf", nil
			},
		}
		var putKey string
		storage := &mock.ObjectStorage{
			PutFn: func(ctx context.Context, key string, data []byte, contentType string) (*tourpipe.StoredObject, error) {
				putKey = key
				return &tourpipe.StoredObject{Key: key, URL: "https://files.example.com/" + key}, nil
			},
		}

		dl := pipeline.NewDownloader(fetcher, storage, logger)
		doc := dl.Download(context.Background(), tourpipe.DocumentLink{
			URL:    "https://example.com/docs/kapadokya.pdf",
			TourID: "kapadokya",
		}, "job-1")

		assert.True(t, doc.Success)
		assert.Empty(t, doc.Error)
		assert.Equal(t, "kapadokya", doc.TourID)
		assert.True(t, strings.HasPrefix(putKey, "jobs/job-1/docs/"), "key %q", putKey)
		assert.True(t, strings.HasSuffix(putKey, ".pdf"))
		assert.Equal(t, putKey, doc.StorageKey)
	})

	t.Run("fetch failure is recorded, not raised", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.BinaryFetcher{
			FetchBytesFn: func(ctx context.Context, url string) ([]byte, string, error) {
				return nil, "", tourpipe.Errorf(tourpipe.EUNAVAILABLE, "status 404")
			},
		}

		dl := pipeline.NewDownloader(fetcher, nil, logger)
		doc := dl.Download(context.Background(), tourpipe.DocumentLink{
			URL: "https://example.com/docs/gone.pdf",
		}, "job-1")

		assert.False(t, doc.Success)
		assert.Contains(t, doc.Error, "404")
		assert.Equal(t, "job-1", doc.JobID)
	})

	t.Run("wrong content type proceeds anyway", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.BinaryFetcher{
			FetchBytesFn: func(ctx context.Context, url string) ([]byte, string, error) {
				return []byte("%PDF-1.4"), "text/html", nil
			},
		}
		storage := &mock.ObjectStorage{
			PutFn: func(ctx context.Context, key string, data []byte, contentType string) (*tourpipe.StoredObject, error) {
				return &tourpipe.StoredObject{Key: key, URL: "u"}, nil
			},
		}

		dl := pipeline.NewDownloader(fetcher, storage, logger)
		doc := dl.Download(context.Background(), tourpipe.DocumentLink{
			URL: "https://example.com/download?id=1&type=pdf",
		}, "job-1")

		assert.True(t, doc.Success)
	})

	t.Run("storage failure is recorded", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.BinaryFetcher{
			FetchBytesFn: func(ctx context.Context, url string) ([]byte, string, error) {
				return []byte("%PDF-1.4"), "application/pdf", nil
			},
		}
		storage := &mock.ObjectStorage{
			PutFn: func(ctx context.Context, key string, data []byte, contentType string) (*tourpipe.StoredObject, error) {
				return nil, tourpipe.Errorf(tourpipe.EINTERNAL, "disk full")
			},
		}

		dl := pipeline.NewDownloader(fetcher, storage, logger)
		doc := dl.Download(context.Background(), tourpipe.DocumentLink{
			URL: "https://example.com/docs/a.pdf",
		}, "job-1")

		assert.False(t, doc.Success)
		assert.Contains(t, doc.Error, "disk full")
	})
}

func TestDownloader_DownloadAll(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.DiscardHandler)

	t.Run("one result per link, failures included", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.BinaryFetcher{
			FetchBytesFn: func(ctx context.Context, url string) ([]byte, string, error) {
				if strings.Contains(url, "bad") {
					return nil, "", tourpipe.Errorf(tourpipe.EUNAVAILABLE, "status 500")
				}
				return []byte("%PDF-1.4"), "application/pdf", nil
			},
		}
		storage := &mock.ObjectStorage{
			PutFn: func(ctx context.Context, key string, data []byte, contentType string) (*tourpipe.StoredObject, error) {
				return &tourpipe.StoredObject{Key: key, URL: "u"}, nil
			},
		}

		dl := pipeline.NewDownloader(fetcher, storage, logger, pipeline.WithDownloadDelay(0))
		docs, err := dl.DownloadAll(context.Background(), []tourpipe.DocumentLink{
			{URL: "https://example.com/docs/good.pdf"},
			{URL: "https://example.com/docs/bad.pdf"},
			{URL: "https://example.com/docs/also-good.pdf"},
		}, "job-1")

		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.True(t, docs[0].Success)
		assert.False(t, docs[1].Success)
		assert.True(t, docs[2].Success)
	})

	t.Run("empty links yields empty result", func(t *testing.T) {
		t.Parallel()

		dl := pipeline.NewDownloader(nil, nil, logger, pipeline.WithDownloadDelay(0))
		docs, err := dl.DownloadAll(context.Background(), nil, "job-1")

		require.NoError(t, err)
		assert.Empty(t, docs)
	})
}
