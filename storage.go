package tourpipe

import "context"

// StoredObject describes an object persisted to object storage.
type StoredObject struct {
	Key string
	URL string
}

// ObjectStorage persists binary objects under caller-chosen keys.
// The backend is assumed eventually consistent; Delete may legitimately
// fail with ENOTFOUND, which callers must tolerate.
type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (*StoredObject, error)
	Delete(ctx context.Context, key string) error
}
