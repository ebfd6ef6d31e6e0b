package mock

import (
	"context"

	"github.com/tourfame/tourpipe"
)

var _ tourpipe.TourExtractor = (*TourExtractor)(nil)

// TourExtractor is a mock implementation of tourpipe.TourExtractor.
type TourExtractor struct {
	ExtractToursFn func(ctx context.Context, text string) (string, error)
}

func (e *TourExtractor) ExtractTours(ctx context.Context, text string) (string, error) {
	return e.ExtractToursFn(ctx, text)
}

var _ tourpipe.ContactExtractor = (*ContactExtractor)(nil)

// ContactExtractor is a mock implementation of tourpipe.ContactExtractor.
type ContactExtractor struct {
	ExtractContactsFn func(ctx context.Context, text string) (tourpipe.ContactInfo, error)
}

func (e *ContactExtractor) ExtractContacts(ctx context.Context, text string) (tourpipe.ContactInfo, error) {
	if e.ExtractContactsFn == nil {
		return tourpipe.ContactInfo{}, nil
	}
	return e.ExtractContactsFn(ctx, text)
}
