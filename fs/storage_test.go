package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourfame/tourpipe"
	"github.com/tourfame/tourpipe/fs"
)

func TestStorage_Put(t *testing.T) {
	t.Parallel()

	t.Run("writes object and returns key and URL", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		s := fs.NewStorage(dir, "https://files.example.com/")

		obj, err := s.Put(context.Background(), "jobs/j1/docs/brochure.pdf", []byte("%PDF"), "application/pdf")

		require.NoError(t, err)
		assert.Equal(t, "jobs/j1/docs/brochure.pdf", obj.Key)
		assert.Equal(t, "https://files.example.com/jobs/j1/docs/brochure.pdf", obj.URL)

		data, err := os.ReadFile(filepath.Join(dir, "jobs", "j1", "docs", "brochure.pdf"))
		require.NoError(t, err)
		assert.Equal(t, "%PDF", string(data))
	})

	t.Run("rejects empty and traversing keys", func(t *testing.T) {
		t.Parallel()

		s := fs.NewStorage(t.TempDir(), "")

		_, err := s.Put(context.Background(), "", []byte("x"), "")
		assert.Equal(t, tourpipe.EINVALID, tourpipe.ErrorCode(err))

		_, err = s.Put(context.Background(), "jobs/../../etc/passwd", []byte("x"), "")
		assert.Equal(t, tourpipe.EINVALID, tourpipe.ErrorCode(err))
	})

	t.Run("overwrites existing object", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		s := fs.NewStorage(dir, "")

		_, err := s.Put(context.Background(), "jobs/j1/a.txt", []byte("one"), "")
		require.NoError(t, err)
		_, err = s.Put(context.Background(), "jobs/j1/a.txt", []byte("two"), "")
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "jobs", "j1", "a.txt"))
		require.NoError(t, err)
		assert.Equal(t, "two", string(data))
	})
}

func TestStorage_Delete(t *testing.T) {
	t.Parallel()

	t.Run("removes stored object", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		s := fs.NewStorage(dir, "")

		_, err := s.Put(context.Background(), "jobs/j1/a.txt", []byte("x"), "")
		require.NoError(t, err)

		require.NoError(t, s.Delete(context.Background(), "jobs/j1/a.txt"))

		_, err = os.Stat(filepath.Join(dir, "jobs", "j1", "a.txt"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("missing key is ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		s := fs.NewStorage(t.TempDir(), "")

		err := s.Delete(context.Background(), "jobs/missing.txt")

		assert.Equal(t, tourpipe.ENOTFOUND, tourpipe.ErrorCode(err))
	})
}
