// Package mock provides hand-written mocks for tourpipe interfaces.
package mock

import (
	"context"

	"github.com/tourfame/tourpipe"
)

var _ tourpipe.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of tourpipe.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ tourpipe.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of tourpipe.PageFetcher.
type PageFetcher struct {
	FetchPageFn func(ctx context.Context, url string) (*tourpipe.FetchResult, error)
}

func (f *PageFetcher) FetchPage(ctx context.Context, url string) (*tourpipe.FetchResult, error) {
	return f.FetchPageFn(ctx, url)
}

var _ tourpipe.BinaryFetcher = (*BinaryFetcher)(nil)

// BinaryFetcher is a mock implementation of tourpipe.BinaryFetcher.
type BinaryFetcher struct {
	FetchBytesFn func(ctx context.Context, url string) ([]byte, string, error)
}

func (f *BinaryFetcher) FetchBytes(ctx context.Context, url string) ([]byte, string, error) {
	return f.FetchBytesFn(ctx, url)
}

var _ tourpipe.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of tourpipe.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, domain)
}
