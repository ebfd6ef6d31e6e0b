package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tourfame/tourpipe"
)

// Ensure Downloader implements tourpipe.DocumentDownloader at compile time.
var _ tourpipe.DocumentDownloader = (*Downloader)(nil)

// Downloader fetches PDF documents and persists them to object storage.
// Individual failures are recorded on the StoredDocument instead of
// raised, so a batch keeps going past dead links.
type Downloader struct {
	fetcher tourpipe.BinaryFetcher
	storage tourpipe.ObjectStorage
	logger  *slog.Logger

	delay time.Duration
}

// DownloaderOption configures a Downloader.
type DownloaderOption func(*Downloader)

// WithDownloadDelay sets the pause between downloads in DownloadAll.
// Defaults to DefaultFetchDelay.
func WithDownloadDelay(d time.Duration) DownloaderOption {
	return func(dl *Downloader) {
		dl.delay = d
	}
}

// NewDownloader creates a Downloader.
func NewDownloader(fetcher tourpipe.BinaryFetcher, storage tourpipe.ObjectStorage, logger *slog.Logger, opts ...DownloaderOption) *Downloader {
	dl := &Downloader{
		fetcher: fetcher,
		storage: storage,
		logger:  logger,
		delay:   DefaultFetchDelay,
	}
	for _, opt := range opts {
		opt(dl)
	}
	return dl
}

// Download fetches one PDF and stores it under a key derived from the
// job and the current time. A content type other than application/pdf
// is logged and accepted; agency servers routinely mislabel brochures.
func (dl *Downloader) Download(ctx context.Context, link tourpipe.DocumentLink, jobID string) *tourpipe.StoredDocument {
	doc := &tourpipe.StoredDocument{
		JobID:     jobID,
		SourceURL: link.URL,
		TourID:    link.TourID,
		CreatedAt: time.Now().UTC(),
	}

	data, contentType, err := dl.fetcher.FetchBytes(ctx, link.URL)
	if err != nil {
		doc.Error = err.Error()
		return doc
	}

	if !strings.Contains(strings.ToLower(contentType), "pdf") {
		dl.logger.Warn("unexpected content type",
			"url", link.URL,
			"contentType", contentType,
		)
	}

	key := fmt.Sprintf("jobs/%s/docs/%d.pdf", jobID, time.Now().UnixNano())
	obj, err := dl.storage.Put(ctx, key, data, "application/pdf")
	if err != nil {
		doc.Error = err.Error()
		return doc
	}

	doc.StorageKey = obj.Key
	doc.StorageURL = obj.URL
	doc.Success = true
	return doc
}

// DownloadAll downloads links sequentially with the configured delay
// between requests. The returned slice has one entry per link, failures
// included.
func (dl *Downloader) DownloadAll(ctx context.Context, links []tourpipe.DocumentLink, jobID string) ([]*tourpipe.StoredDocument, error) {
	var docs []*tourpipe.StoredDocument
	for i, link := range links {
		if i > 0 && dl.delay > 0 {
			select {
			case <-ctx.Done():
				return docs, ctx.Err()
			case <-time.After(dl.delay):
			}
		}
		docs = append(docs, dl.Download(ctx, link, jobID))
	}
	return docs, nil
}
