package storage

import (
	"context"
	"io"
	"time"

	"github.com/sdejongh/dircmp/pkg/models"
)

// FileInfo represents metadata about a file
type FileInfo struct {
	Path    string
	Size    int64
	ModTime time.Time
	IsDir   bool
}

// WalkFunc receives each regular file discovered by Walk.
// Returning an error stops the walk and is returned unchanged.
type WalkFunc func(entry models.FileEntry) error

// Backend defines the read-only operations a comparison run needs from a tree
type Backend interface {
	// Root returns the root path as supplied by the caller
	Root() string

	// Walk recursively hands every regular file under the root to fn
	Walk(ctx context.Context, fn WalkFunc) error

	// List returns all regular files under the root
	List(ctx context.Context) ([]models.FileEntry, error)

	// Open opens a file returned by Walk for reading
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Stat returns file metadata
	Stat(ctx context.Context, path string) (*FileInfo, error)

	// Close releases any resources held by the backend
	Close() error
}
