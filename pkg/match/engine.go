package match

import (
	"context"
	"errors"
	"time"

	"github.com/sdejongh/dircmp/pkg/compare"
	"github.com/sdejongh/dircmp/pkg/index"
	"github.com/sdejongh/dircmp/pkg/logging"
	"github.com/sdejongh/dircmp/pkg/models"
	"github.com/sdejongh/dircmp/pkg/storage"
)

// Phase names announced to the Reporter
const (
	PhasePreprocessing = "Preprocessing..."
	PhaseComparing     = "Comparing files..."
)

// Engine orchestrates a comparison run
type Engine struct {
	source     storage.Backend
	target     storage.Backend
	comparator compare.Comparator
	reporter   Reporter
	logger     logging.Logger
	operation  *models.Operation
}

// NewEngine creates a new comparison engine
func NewEngine(
	source, target storage.Backend,
	comparator compare.Comparator,
	reporter Reporter,
	logger logging.Logger,
	operation *models.Operation,
) *Engine {
	if reporter == nil {
		reporter = NopReporter{}
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Engine{
		source:     source,
		target:     target,
		comparator: comparator,
		reporter:   reporter,
		logger:     logger,
		operation:  operation,
	}
}

// Run indexes the target tree, then resolves every source file against it.
// On error the returned report only carries the failed status.
func (e *Engine) Run(ctx context.Context) (*models.Report, error) {
	report := &models.Report{
		OperationID:   e.operation.ID,
		SourcePath:    e.source.Root(),
		TargetPath:    e.target.Root(),
		IncludeHidden: e.operation.IncludeHidden,
		StartTime:     time.Now(),
		Status:        models.StatusSuccess,
	}

	logger := e.logger.WithFields(logging.Fields{"operation_id": e.operation.ID})
	logger.Info(ctx, "Starting comparison", logging.Fields{
		"source":         report.SourcePath,
		"target":         report.TargetPath,
		"include_hidden": report.IncludeHidden,
		"comparator":     e.comparator.Name(),
	})

	e.reporter.Phase(PhasePreprocessing)

	// The whole target tree is indexed before any candidate is resolved;
	// a partial index would report false unmatched files.
	builder := index.NewBuilder()
	err := e.target.Walk(ctx, func(entry models.FileEntry) error {
		builder.Add(entry)
		return nil
	})
	if err != nil {
		return e.fail(ctx, logger, report, "Target scan failed", err)
	}
	idx := builder.Build()
	report.Stats.TargetFiles = idx.Len()
	report.Stats.TargetBuckets = idx.Buckets()

	logger.Info(ctx, "Target indexed", logging.Fields{
		"files":   idx.Len(),
		"buckets": idx.Buckets(),
	})

	sourceFiles, err := e.source.List(ctx)
	if err != nil {
		return e.fail(ctx, logger, report, "Source scan failed", err)
	}
	candidates := index.SortBySize(sourceFiles)
	report.Stats.SourceFiles = len(candidates)
	report.Stats.SourceBytes = index.TotalSize(candidates)

	logger.Info(ctx, "Source scanned", logging.Fields{
		"files": report.Stats.SourceFiles,
		"bytes": report.Stats.SourceBytes,
	})

	e.reporter.Phase(PhaseComparing)

	resolver := NewResolver(e.source, e.target, e.comparator, e.reporter, logger)
	resolution, err := resolver.Resolve(ctx, candidates, idx)
	if err != nil {
		return e.fail(ctx, logger, report, "Comparison aborted", err)
	}

	report.Unmatched = resolution.Unmatched
	report.Stats.Matched = resolution.Matched
	report.Stats.Unmatched = len(resolution.Unmatched)
	report.Stats.Comparisons = resolution.Comparisons
	report.Stats.BytesCompared = resolution.BytesCompared
	e.finish(report)

	logger.Info(ctx, "Comparison completed", logging.Fields{
		"duration":       report.Duration.String(),
		"matched":        report.Stats.Matched,
		"unmatched":      report.Stats.Unmatched,
		"comparisons":    report.Stats.Comparisons,
		"bytes_compared": report.Stats.BytesCompared,
	})

	return report, nil
}

func (e *Engine) fail(ctx context.Context, logger logging.Logger, report *models.Report, msg string, err error) (*models.Report, error) {
	report.Status = models.StatusFailed
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		report.Status = models.StatusCancelled
	}
	e.finish(report)
	logger.Error(ctx, msg, err, logging.Fields{"status": report.Status})
	return report, err
}

func (e *Engine) finish(report *models.Report) {
	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(report.StartTime)
}
