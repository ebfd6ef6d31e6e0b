package mock

import (
	"context"

	"github.com/tourfame/tourpipe"
)

var _ tourpipe.ObjectStorage = (*ObjectStorage)(nil)

// ObjectStorage is a mock implementation of tourpipe.ObjectStorage.
type ObjectStorage struct {
	PutFn    func(ctx context.Context, key string, data []byte, contentType string) (*tourpipe.StoredObject, error)
	DeleteFn func(ctx context.Context, key string) error
}

func (s *ObjectStorage) Put(ctx context.Context, key string, data []byte, contentType string) (*tourpipe.StoredObject, error) {
	return s.PutFn(ctx, key, data, contentType)
}

func (s *ObjectStorage) Delete(ctx context.Context, key string) error {
	if s.DeleteFn == nil {
		return nil
	}
	return s.DeleteFn(ctx, key)
}
