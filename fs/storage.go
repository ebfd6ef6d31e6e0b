// Package fs provides file-based object storage for downloaded
// brochures and OCR page images.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/tourfame/tourpipe"
)

// Ensure Storage implements tourpipe.ObjectStorage at compile time.
var _ tourpipe.ObjectStorage = (*Storage)(nil)

// Storage implements tourpipe.ObjectStorage on the local filesystem.
// Keys map to paths under Dir; URLs are BaseURL + "/" + key so a static
// file server in front of Dir can serve the stored objects.
type Storage struct {
	dir     string
	baseURL string
}

// NewStorage creates a Storage rooted at dir. baseURL is the public
// prefix under which dir is served and may be empty for local-only use.
func NewStorage(dir, baseURL string) *Storage {
	return &Storage{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Put writes data under key, creating parent directories as needed.
// The contentType is accepted for interface compatibility; the
// filesystem has nowhere to record it.
func (s *Storage) Put(ctx context.Context, key string, data []byte, contentType string) (*tourpipe.StoredObject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rel, err := keyToPath(key)
	if err != nil {
		return nil, err
	}

	fullPath := filepath.Join(s.dir, rel)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return nil, err
	}

	return &tourpipe.StoredObject{
		Key: key,
		URL: s.baseURL + "/" + key,
	}, nil
}

// Delete removes the object stored under key. Deleting a missing key
// returns ENOTFOUND.
func (s *Storage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rel, err := keyToPath(key)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.dir, rel)
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return tourpipe.Errorf(tourpipe.ENOTFOUND, "object %q not found", key)
	}
	return os.Remove(fullPath)
}

// keyToPath validates a storage key and converts it to a relative file
// path. Keys are slash-separated and must stay inside the storage root.
func keyToPath(key string) (string, error) {
	key = strings.Trim(key, "/")
	if key == "" {
		return "", tourpipe.Errorf(tourpipe.EINVALID, "storage key required")
	}
	for _, part := range strings.Split(key, "/") {
		if part == "" || part == "." || part == ".." {
			return "", tourpipe.Errorf(tourpipe.EINVALID, "invalid storage key %q", key)
		}
	}
	return filepath.FromSlash(key), nil
}
