// Package match resolves the files of a source tree against the content of a
// target tree and reports the source files that have no byte-identical copy.
package match

import (
	"context"

	"github.com/sdejongh/dircmp/pkg/compare"
	"github.com/sdejongh/dircmp/pkg/index"
	"github.com/sdejongh/dircmp/pkg/logging"
	"github.com/sdejongh/dircmp/pkg/models"
	"github.com/sdejongh/dircmp/pkg/storage"
)

// Resolution is the outcome of resolving a candidate sequence
type Resolution struct {
	// Unmatched candidates in traversal order
	Unmatched []models.FileEntry

	Matched       int
	Comparisons   int
	BytesCompared int64
}

// Resolver classifies source candidates as matched or unmatched
type Resolver struct {
	source     storage.Backend
	target     storage.Backend
	comparator compare.Comparator
	reporter   Reporter
	logger     logging.Logger
}

// NewResolver creates a resolver. A nil reporter or logger disables that output.
func NewResolver(
	source, target storage.Backend,
	comparator compare.Comparator,
	reporter Reporter,
	logger logging.Logger,
) *Resolver {
	if reporter == nil {
		reporter = NopReporter{}
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Resolver{
		source:     source,
		target:     target,
		comparator: comparator,
		reporter:   reporter,
		logger:     logger,
	}
}

// Resolve looks up every candidate's size in idx and byte-compares it with the
// same-size target files until one is identical. Candidates are processed in
// the given order, which is also the order of Resolution.Unmatched.
// The first comparison error aborts the run.
func (r *Resolver) Resolve(ctx context.Context, candidates []models.FileEntry, idx *index.SizeIndex) (*Resolution, error) {
	res := &Resolution{}
	total := len(candidates)

	r.reporter.Start(total)
	defer r.reporter.Finish()

	for i, candidate := range candidates {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		matched, err := r.resolveOne(ctx, candidate, idx.Lookup(candidate.Size), res)
		if err != nil {
			r.logger.Error(ctx, "Comparison failed", err, logging.Fields{"path": candidate.Path})
			return nil, err
		}

		if matched {
			res.Matched++
		} else {
			res.Unmatched = append(res.Unmatched, candidate)
		}

		r.reporter.Update(i+1, total)
	}

	return res, nil
}

// resolveOne reports whether any path in bucket is byte-identical to candidate
func (r *Resolver) resolveOne(ctx context.Context, candidate models.FileEntry, bucket []string, res *Resolution) (bool, error) {
	if len(bucket) == 0 {
		r.logger.Debug(ctx, "No target file of the same size", logging.Fields{
			"path": candidate.Path,
			"size": candidate.Size,
		})
		return false, nil
	}

	for _, targetPath := range bucket {
		comparison, err := r.comparator.Compare(ctx, r.source, r.target, candidate.Path, targetPath)
		if err != nil {
			return false, err
		}
		res.Comparisons++
		res.BytesCompared += comparison.BytesCompared

		if comparison.Result == compare.Same {
			r.logger.Debug(ctx, "Match found", logging.Fields{
				"path":   candidate.Path,
				"target": targetPath,
			})
			return true, nil
		}
	}

	r.logger.Debug(ctx, "No identical target file", logging.Fields{
		"path":       candidate.Path,
		"candidates": len(bucket),
	})
	return false, nil
}
