package models

import (
	"time"
)

// Report represents the results of a comparison run
type Report struct {
	// Operation details
	OperationID   string
	SourcePath    string
	TargetPath    string
	IncludeHidden bool

	// Timing
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// Statistics
	Stats Statistics

	// Unmatched source files in ascending size order
	Unmatched []FileEntry

	// Overall status
	Status Status
}

// Statistics holds comparison run metrics
type Statistics struct {
	SourceFiles int
	SourceBytes int64

	TargetFiles   int
	TargetBuckets int // Distinct file sizes in the target tree

	// Byte comparisons performed (one per source/target pair)
	Comparisons   int
	BytesCompared int64

	Matched   int
	Unmatched int
}

// Status represents the overall result
type Status string

const (
	// StatusSuccess indicates the comparison ran to completion
	StatusSuccess Status = "success"
	// StatusFailed indicates the comparison was aborted by a fatal error
	StatusFailed Status = "failed"
	// StatusCancelled indicates the run was interrupted
	StatusCancelled Status = "cancelled"
)
