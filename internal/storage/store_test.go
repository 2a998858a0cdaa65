package storage

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, basePath string) (*DocumentStore, FileSystem) {
	t.Helper()
	fs := NewMemMapFileSystem()
	return NewDocumentStore(StoreConfig{BasePath: basePath, FileSystem: fs}), fs
}

func TestNewDocumentStore_Defaults(t *testing.T) {
	s := NewDocumentStore(StoreConfig{})
	assert.NotNil(t, s.logger)
	assert.NotNil(t, s.fs)
	assert.Equal(t, "", s.basePath)
}

func TestDocumentStore_ReadText(t *testing.T) {
	ctx := context.Background()

	t.Run("reads relative to base path", func(t *testing.T) {
		s, fs := newTestStore(t, "/docs")
		require.NoError(t, fs.MkdirAll("/docs", 0755))
		require.NoError(t, fs.WriteFile("/docs/resume.json", []byte(`{"title": "Engineer"}`), 0644))

		text, err := s.ReadText(ctx, "resume.json")
		require.NoError(t, err)
		assert.Equal(t, `{"title": "Engineer"}`, text)
	})

	t.Run("absolute paths ignore base path", func(t *testing.T) {
		s, fs := newTestStore(t, "/docs")
		require.NoError(t, fs.WriteFile("/elsewhere/job.yaml", []byte("title: Engineer"), 0644))

		text, err := s.ReadText(ctx, "/elsewhere/job.yaml")
		require.NoError(t, err)
		assert.Equal(t, "title: Engineer", text)
	})

	t.Run("missing file", func(t *testing.T) {
		s, _ := newTestStore(t, "")
		_, err := s.ReadText(ctx, "/nope.json")
		require.Error(t, err)

		var storageErr *StorageError
		require.True(t, errors.As(err, &storageErr))
		assert.Equal(t, "read document", storageErr.Operation)
		assert.Equal(t, "/nope.json", storageErr.Path)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("directory", func(t *testing.T) {
		s, fs := newTestStore(t, "")
		require.NoError(t, fs.MkdirAll("/dir", 0755))
		_, err := s.ReadText(ctx, "/dir")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is a directory")
	})

	t.Run("empty file", func(t *testing.T) {
		s, fs := newTestStore(t, "")
		require.NoError(t, fs.WriteFile("/blank.txt", []byte("  \n"), 0644))
		_, err := s.ReadText(ctx, "/blank.txt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "document is empty")
	})

	t.Run("oversized file", func(t *testing.T) {
		s, fs := newTestStore(t, "")
		require.NoError(t, fs.WriteFile("/big.txt", []byte(strings.Repeat("x", MaxDocumentSize+1)), 0644))
		_, err := s.ReadText(ctx, "/big.txt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "limit is")
	})
}

func TestDocumentStore_Exists(t *testing.T) {
	s, fs := newTestStore(t, "")
	require.NoError(t, fs.WriteFile("/a.json", []byte("{}"), 0644))
	require.NoError(t, fs.MkdirAll("/dir", 0755))

	assert.True(t, s.Exists("/a.json"))
	assert.False(t, s.Exists("/dir"))
	assert.False(t, s.Exists("/missing.json"))
}

func TestDocumentStore_ListDocuments(t *testing.T) {
	ctx := context.Background()
	s, fs := newTestStore(t, "")
	require.NoError(t, fs.MkdirAll("/jobs/archive", 0755))
	for _, name := range []string{"b.yaml", "a.json", "notes.pdf", "c.MD"} {
		require.NoError(t, fs.WriteFile("/jobs/"+name, []byte("x"), 0644))
	}

	paths, err := s.ListDocuments(ctx, "/jobs")
	require.NoError(t, err)
	assert.Equal(t, []string{"/jobs/a.json", "/jobs/b.yaml", "/jobs/c.MD"}, paths)

	_, err = s.ListDocuments(ctx, "/missing")
	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "list documents", storageErr.Operation)
}

func TestDocumentStore_WriteResult(t *testing.T) {
	ctx := context.Background()
	s, fs := newTestStore(t, "/out")

	require.NoError(t, s.WriteResult(ctx, "nested/result.json", []byte(`{"score": 42}`)))

	data, err := fs.ReadFile("/out/nested/result.json")
	require.NoError(t, err)
	assert.Equal(t, `{"score": 42}`, string(data))
}

func TestDocumentStore_WriteResultReadOnly(t *testing.T) {
	fs := NewAferoFileSystem(afero.NewReadOnlyFs(afero.NewMemMapFs()))
	s := NewDocumentStore(StoreConfig{FileSystem: fs})

	err := s.WriteResult(context.Background(), "/result.json", []byte("{}"))
	require.Error(t, err)
	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
}

func TestStorageError_Error(t *testing.T) {
	err := &StorageError{Operation: "read document", Path: "/x", Err: errors.New("boom")}
	assert.Equal(t, "storage error during read document (path: /x): boom", err.Error())
	assert.Equal(t, "storage error during list documents", (&StorageError{Operation: "list documents"}).Error())
}
