package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies fatal errors of a comparison run
type ErrorKind string

const (
	// KindInvalidDirectory: a root does not exist or is not a directory
	KindInvalidDirectory ErrorKind = "invalid_directory"
	// KindEnumeration: a directory became unreadable during the walk
	KindEnumeration ErrorKind = "enumeration"
	// KindComparison: a file became unreadable during byte comparison
	KindComparison ErrorKind = "comparison"
)

// Sentinels for errors.Is checks against an *Error of the same kind
var (
	ErrInvalidDirectory = errors.New("invalid directory")
	ErrEnumeration      = errors.New("enumeration failed")
	ErrComparison       = errors.New("comparison failed")
)

// Error is a fatal, path-carrying error
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

// NewError creates an error of the given kind
func NewError(kind ErrorKind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

func (e *Error) Error() string {
	var prefix string
	switch e.Kind {
	case KindInvalidDirectory:
		prefix = "invalid directory path"
	case KindEnumeration:
		prefix = "failed to scan"
	case KindComparison:
		prefix = "failed to compare"
	default:
		prefix = string(e.Kind)
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", prefix, e.Path)
	}
	return fmt.Sprintf("%s: %s: %v", prefix, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidDirectory:
		return e.Kind == KindInvalidDirectory
	case ErrEnumeration:
		return e.Kind == KindEnumeration
	case ErrComparison:
		return e.Kind == KindComparison
	}
	return false
}
