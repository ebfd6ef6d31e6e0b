// Package bloom provides probabilistic URL deduplication for crawls.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// DefaultCapacity sizes the filter for a typical agency-site crawl:
// a handful of listing pages fanning out to detail pages and brochures.
const DefaultCapacity = 10000

// DefaultFalsePositiveRate is the accepted false positive rate. A false
// positive only costs us a skipped page, never a duplicate visit.
const DefaultFalsePositiveRate = 0.01

// Filter wraps a Bloom filter for crawl URL deduplication.
// Filter is not safe for concurrent use.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// NewDefaultFilter creates a filter with crawl-appropriate defaults.
func NewDefaultFilter() *Filter {
	return NewFilter(DefaultCapacity, DefaultFalsePositiveRate)
}

// Add records a URL as visited.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Seen returns true if the URL was probably recorded already.
// False positives are possible; false negatives are not.
func (f *Filter) Seen(url string) bool {
	return f.f.TestString(url)
}

// AddIfNew records the URL and reports whether it was new. This is the
// crawl frontier primitive: visit the page only when AddIfNew returns
// true.
func (f *Filter) AddIfNew(url string) bool {
	return !f.f.TestAndAddString(url)
}

// EstimatedCount returns the approximate number of recorded URLs.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
