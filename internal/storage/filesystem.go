package storage

import (
	"os"

	"github.com/spf13/afero"
)

// FileSystem is the subset of filesystem operations the document store needs
type FileSystem interface {
	// MkdirAll creates a directory and any necessary parent directories
	MkdirAll(path string, perm os.FileMode) error
	// Stat returns a FileInfo describing the named file
	Stat(name string) (os.FileInfo, error)
	// ReadFile reads the file and returns its contents
	ReadFile(name string) ([]byte, error)
	// WriteFile writes data to a file
	WriteFile(name string, data []byte, perm os.FileMode) error
	// ReadDir lists a directory sorted by name
	ReadDir(name string) ([]os.FileInfo, error)
}

// aferoFileSystem adapts an afero.Fs to FileSystem
type aferoFileSystem struct {
	fs afero.Fs
}

func (a *aferoFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *aferoFileSystem) Stat(name string) (os.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFileSystem) ReadFile(name string) ([]byte, error) {
	return afero.ReadFile(a.fs, name)
}

func (a *aferoFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return afero.WriteFile(a.fs, name, data, perm)
}

func (a *aferoFileSystem) ReadDir(name string) ([]os.FileInfo, error) {
	return afero.ReadDir(a.fs, name)
}

// NewOSFileSystem returns a FileSystem that uses the actual OS filesystem
func NewOSFileSystem() FileSystem {
	return &aferoFileSystem{fs: afero.NewOsFs()}
}

// NewMemMapFileSystem returns a FileSystem backed by afero's in-memory filesystem
func NewMemMapFileSystem() FileSystem {
	return &aferoFileSystem{fs: afero.NewMemMapFs()}
}

// NewAferoFileSystem wraps an afero.Fs in the FileSystem interface
func NewAferoFileSystem(fs afero.Fs) FileSystem {
	return &aferoFileSystem{fs: fs}
}
