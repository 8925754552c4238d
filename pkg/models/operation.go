package models

import (
	"fmt"
	"path/filepath"
	"time"
	"unicode/utf8"
)

// DefaultHiddenMarker is the leading character of hidden file and folder names
const DefaultHiddenMarker = "."

// MinBufferSize is the smallest accepted comparison buffer size in bytes
const MinBufferSize = 4096

// Operation represents the configuration of a single comparison run
type Operation struct {
	ID             string
	SourcePath     string
	TargetPath     string
	IncludeHidden  bool
	HiddenMarker   string
	Exclude        []string // Glob patterns skipped in both trees
	BufferSize     int
	BandwidthLimit int64 // bytes per second, 0 = unlimited
	CreatedAt      time.Time
}

// Validate checks if the operation configuration is valid
func (op *Operation) Validate() error {
	if op.SourcePath == "" {
		return &ValidationError{Field: "SourcePath", Message: "source path is required"}
	}
	if op.TargetPath == "" {
		return &ValidationError{Field: "TargetPath", Message: "target path is required"}
	}
	if utf8.RuneCountInString(op.HiddenMarker) != 1 {
		return &ValidationError{Field: "HiddenMarker", Message: "hidden marker must be a single character"}
	}
	if op.BufferSize < MinBufferSize {
		return &ValidationError{Field: "BufferSize", Message: fmt.Sprintf("buffer size must be at least %d bytes", MinBufferSize)}
	}
	for _, pattern := range op.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return &ValidationError{Field: "Exclude", Message: "invalid pattern " + pattern + ": " + err.Error()}
		}
	}
	if op.BandwidthLimit < 0 {
		return &ValidationError{Field: "BandwidthLimit", Message: "bandwidth limit cannot be negative"}
	}
	return nil
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
