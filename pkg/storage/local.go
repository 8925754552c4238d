package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/sdejongh/dircmp/pkg/logging"
	"github.com/sdejongh/dircmp/pkg/models"
)

// Local is a filesystem-based storage backend
type Local struct {
	fs            afero.Fs
	rootPath      string
	walkRoot      string
	includeHidden bool
	hiddenMarker  string
	exclude       []string
	logger        logging.Logger
}

// Option configures a Local backend
type Option func(*Local)

// WithHidden controls whether hidden files and folders are enumerated
func WithHidden(include bool) Option {
	return func(l *Local) {
		l.includeHidden = include
	}
}

// WithHiddenMarker sets the leading character that marks a name as hidden
func WithHiddenMarker(marker string) Option {
	return func(l *Local) {
		if marker != "" {
			l.hiddenMarker = marker
		}
	}
}

// WithExclude skips files and folders matching any glob pattern
func WithExclude(patterns ...string) Option {
	return func(l *Local) {
		l.exclude = append(l.exclude, patterns...)
	}
}

// WithLogger records skipped non-regular files at debug level
func WithLogger(logger logging.Logger) Option {
	return func(l *Local) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLocal creates a backend rooted at rootPath on fs.
// The root must be an existing, readable directory.
func NewLocal(fs afero.Fs, rootPath string, opts ...Option) (*Local, error) {
	info, err := fs.Stat(rootPath)
	if err != nil {
		return nil, models.NewError(models.KindInvalidDirectory, rootPath, err)
	}
	if !info.IsDir() {
		return nil, models.NewError(models.KindInvalidDirectory, rootPath, fmt.Errorf("not a directory"))
	}

	dir, err := fs.Open(rootPath)
	if err != nil {
		return nil, models.NewError(models.KindInvalidDirectory, rootPath, err)
	}
	dir.Close()

	walkRoot := rootPath
	if lstater, ok := fs.(afero.Lstater); ok {
		linfo, _, err := lstater.LstatIfPossible(rootPath)
		if err == nil && linfo.Mode()&os.ModeSymlink != 0 {
			// A trailing separator makes Lstat follow a symlinked root
			walkRoot = rootPath + string(filepath.Separator)
		}
	}

	l := &Local{
		fs:           fs,
		rootPath:     rootPath,
		walkRoot:     walkRoot,
		hiddenMarker: models.DefaultHiddenMarker,
		logger:       logging.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

// NewOsLocal creates a read-only backend on the host filesystem
func NewOsLocal(rootPath string, opts ...Option) (*Local, error) {
	return NewLocal(afero.NewReadOnlyFs(afero.NewOsFs()), rootPath, opts...)
}

// Root returns the root path
func (l *Local) Root() string {
	return l.rootPath
}

// Walk recursively hands every regular file under the root to fn.
// The first unreadable directory aborts the walk.
func (l *Local) Walk(ctx context.Context, fn WalkFunc) error {
	return afero.Walk(l.fs, l.walkRoot, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return models.NewError(models.KindEnumeration, p, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if p == l.walkRoot {
			return nil
		}

		relPath, err := filepath.Rel(l.walkRoot, p)
		if err != nil {
			return models.NewError(models.KindEnumeration, p, err)
		}

		if info.IsDir() {
			if l.isHidden(info.Name()) || shouldExclude(relPath+"/", l.exclude) {
				return filepath.SkipDir
			}
			return nil
		}

		if l.isHidden(info.Name()) || shouldExclude(relPath, l.exclude) {
			return nil
		}

		// Symlinks, devices, sockets and pipes are not compared
		if !info.Mode().IsRegular() {
			l.logger.Debug(ctx, "Skipping non-regular file", logging.Fields{
				"path": p,
				"mode": info.Mode().Type().String(),
			})
			return nil
		}

		return fn(models.FileEntry{
			Path:         p,
			RelativePath: relPath,
			Size:         info.Size(),
		})
	})
}

// List returns all regular files under the root
func (l *Local) List(ctx context.Context) ([]models.FileEntry, error) {
	var files []models.FileEntry

	err := l.Walk(ctx, func(entry models.FileEntry) error {
		files = append(files, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// Open opens a file for reading
func (l *Local) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	file, err := l.fs.Open(path)
	if err != nil {
		return nil, models.NewError(models.KindComparison, path, err)
	}

	return file, nil
}

// Stat returns file metadata
func (l *Local) Stat(ctx context.Context, path string) (*FileInfo, error) {
	info, err := l.fs.Stat(path)
	if err != nil {
		return nil, models.NewError(models.KindComparison, path, err)
	}

	return &FileInfo{
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
		IsDir:   info.IsDir(),
	}, nil
}

// Close releases resources (no-op for local filesystem)
func (l *Local) Close() error {
	return nil
}

func (l *Local) isHidden(name string) bool {
	return !l.includeHidden && strings.HasPrefix(name, l.hiddenMarker)
}
