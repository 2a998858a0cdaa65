// Package storage loads resume, job and profile documents from disk and
// writes analysis results back.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// MaxDocumentSize bounds how much of a single document is read
const MaxDocumentSize = 1 << 20

// documentExtensions are the files picked up when listing a directory
var documentExtensions = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
	".md":   true,
	".txt":  true,
}

// StorageError represents a storage-related failure
type StorageError struct {
	Operation string
	Path      string
	Err       error
}

func (e *StorageError) Error() string {
	msg := fmt.Sprintf("storage error during %s", e.Operation)
	if e.Path != "" {
		msg += fmt.Sprintf(" (path: %s)", e.Path)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// StoreConfig holds configuration for the document store
type StoreConfig struct {
	// BasePath resolves relative paths; empty means the working directory
	BasePath   string
	Logger     *slog.Logger // Optional: defaults to slog.Default()
	FileSystem FileSystem   // Optional: defaults to the OS filesystem
}

// DocumentStore reads documents through a FileSystem
type DocumentStore struct {
	basePath string
	logger   *slog.Logger
	fs       FileSystem
}

// NewDocumentStore creates a document store
func NewDocumentStore(config StoreConfig) *DocumentStore {
	if config.FileSystem == nil {
		config.FileSystem = NewOSFileSystem()
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &DocumentStore{
		basePath: config.BasePath,
		logger:   config.Logger,
		fs:       config.FileSystem,
	}
}

// FileSystem returns the underlying filesystem
func (s *DocumentStore) FileSystem() FileSystem {
	return s.fs
}

// Resolve joins a relative path onto the base path
func (s *DocumentStore) Resolve(path string) string {
	if s.basePath == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.basePath, path)
}

// ReadText reads a whole document as text. Directories, empty files and files
// larger than MaxDocumentSize are rejected.
func (s *DocumentStore) ReadText(ctx context.Context, path string) (string, error) {
	full := s.Resolve(path)

	info, err := s.fs.Stat(full)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to stat document",
			"error", err,
			"path", full,
			"operation", "read",
		)
		return "", &StorageError{Operation: "read document", Path: full, Err: err}
	}
	if info.IsDir() {
		return "", &StorageError{Operation: "read document", Path: full, Err: fmt.Errorf("is a directory")}
	}
	if info.Size() > MaxDocumentSize {
		return "", &StorageError{
			Operation: "read document",
			Path:      full,
			Err:       fmt.Errorf("document is %d bytes, limit is %d", info.Size(), MaxDocumentSize),
		}
	}

	content, err := s.fs.ReadFile(full)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to read document",
			"error", err,
			"path", full,
			"operation", "read",
		)
		return "", &StorageError{Operation: "read document", Path: full, Err: err}
	}
	if strings.TrimSpace(string(content)) == "" {
		return "", &StorageError{Operation: "read document", Path: full, Err: fmt.Errorf("document is empty")}
	}

	s.logger.DebugContext(ctx, "document read",
		"path", full,
		"bytes", len(content),
	)
	return string(content), nil
}

// Exists reports whether a regular file exists at path
func (s *DocumentStore) Exists(path string) bool {
	info, err := s.fs.Stat(s.Resolve(path))
	return err == nil && !info.IsDir()
}

// ListDocuments returns the document files directly inside dir, sorted by name
func (s *DocumentStore) ListDocuments(ctx context.Context, dir string) ([]string, error) {
	full := s.Resolve(dir)
	entries, err := s.fs.ReadDir(full)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to read directory for listing",
			"error", err,
			"dir", full,
		)
		return nil, &StorageError{Operation: "list documents", Path: full, Err: err}
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !documentExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		paths = append(paths, filepath.Join(full, entry.Name()))
	}

	s.logger.DebugContext(ctx, "listed documents",
		"dir", full,
		"count", len(paths),
	)
	return paths, nil
}

// WriteResult writes data to path, creating parent directories
func (s *DocumentStore) WriteResult(ctx context.Context, path string, data []byte) error {
	full := s.Resolve(path)
	if dir := filepath.Dir(full); dir != "." {
		if err := s.fs.MkdirAll(dir, 0755); err != nil {
			return &StorageError{Operation: "write result - create directory", Path: dir, Err: err}
		}
	}
	if err := s.fs.WriteFile(full, data, 0644); err != nil {
		s.logger.ErrorContext(ctx, "failed to write result",
			"error", err,
			"path", full,
			"operation", "write",
		)
		return &StorageError{Operation: "write result", Path: full, Err: err}
	}

	s.logger.InfoContext(ctx, "result written",
		"path", full,
		"bytes", len(data),
	)
	return nil
}
