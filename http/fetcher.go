// Package http provides HTTP-based implementations of tourpipe fetchers
// for origins that don't require JavaScript rendering, plus sitemap-based
// URL discovery.
package http

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tourfame/tourpipe"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 15 * time.Second

// DefaultUserAgent is a desktop-browser User-Agent. Several agency sites
// return empty shells or 403s to default Go clients.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// Ensure Fetcher implements tourpipe.Fetcher at compile time.
var _ tourpipe.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// It does not execute JavaScript; callers escalate to a rendering fetcher
// when the result looks like an empty client-side shell.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
// Defaults to DefaultUserAgent if not specified.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
// Non-2xx responses are reported as errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// Ensure BinaryFetcher implements tourpipe.BinaryFetcher at compile time.
var _ tourpipe.BinaryFetcher = (*BinaryFetcher)(nil)

// BinaryFetcher downloads raw document bytes. TLS certificate validation
// is relaxed: brochure PDFs are routinely hosted on origins with broken
// certificate chains, and refusing them would lose the document. This is
// a deliberate trust trade-off for untrusted public brochures.
type BinaryFetcher struct {
	client    *http.Client
	userAgent string
}

// BinaryOption configures a BinaryFetcher.
type BinaryOption func(*BinaryFetcher)

// WithBinaryTimeout sets the timeout for downloads. Defaults to 60s.
func WithBinaryTimeout(d time.Duration) BinaryOption {
	return func(f *BinaryFetcher) {
		f.client.Timeout = d
	}
}

// WithBinaryUserAgent sets the User-Agent header. Defaults to DefaultUserAgent.
func WithBinaryUserAgent(ua string) BinaryOption {
	return func(f *BinaryFetcher) {
		f.userAgent = ua
	}
}

// NewBinaryFetcher creates a new BinaryFetcher.
func NewBinaryFetcher(opts ...BinaryOption) *BinaryFetcher {
	f := &BinaryFetcher{
		client: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec
			},
		},
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchBytes downloads the document at the URL and returns its bytes and
// the declared Content-Type. Non-2xx responses are reported as errors
// carrying the status code.
func (f *BinaryFetcher) FetchBytes(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	return data, resp.Header.Get("Content-Type"), nil
}
