package compare

import (
	"context"
	"io"

	"github.com/sdejongh/dircmp/pkg/storage"
)

// Result represents the outcome of comparing two files
type Result string

const (
	// Same indicates files are byte-identical
	Same Result = "same"
	// Different indicates files differ
	Different Result = "different"
)

// Comparison holds the result of comparing two files
type Comparison struct {
	SourcePath    string
	TargetPath    string
	Result        Result
	Reason        string
	BytesCompared int64
}

// ReaderWrapper wraps a file reader before comparison (e.g. rate limiting)
type ReaderWrapper func(r io.Reader) io.Reader

// ProgressFunc receives the bytes compared so far for a source file
type ProgressFunc func(path string, current, total int64)

// Comparator defines the interface for file comparison algorithms.
// I/O failures are returned as errors and never reported as Different.
type Comparator interface {
	// Compare compares two files and returns the result
	Compare(ctx context.Context, source, target storage.Backend, sourcePath, targetPath string) (*Comparison, error)

	// Name returns the name of the comparison method
	Name() string
}
