package compare

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/sdejongh/dircmp/pkg/models"
	"github.com/sdejongh/dircmp/pkg/storage"
)

// Minimum and default buffer sizes for each side of a comparison
const (
	MinBufferSize     = models.MinBufferSize
	DefaultBufferSize = 64 * 1024
)

// BinaryComparator compares files byte-by-byte.
// Sizes are checked first so differently sized files are never read.
type BinaryComparator struct {
	bufferSize     int
	bufferPool     *sync.Pool
	progressReport ProgressFunc  // Optional progress callback
	readerWrapper  ReaderWrapper // Optional reader wrapper (e.g., for rate limiting)
}

// NewBinaryComparator creates a new byte-by-byte comparator
func NewBinaryComparator(bufferSize int) *BinaryComparator {
	if bufferSize < MinBufferSize {
		bufferSize = MinBufferSize
	}
	return &BinaryComparator{
		bufferSize: bufferSize,
		bufferPool: &sync.Pool{
			New: func() interface{} {
				buf := make([]byte, bufferSize)
				return &buf
			},
		},
	}
}

// SetProgressCallback sets the progress reporting callback
func (c *BinaryComparator) SetProgressCallback(callback ProgressFunc) {
	c.progressReport = callback
}

// SetReaderWrapper sets a function to wrap readers (e.g., for rate limiting)
func (c *BinaryComparator) SetReaderWrapper(wrapper ReaderWrapper) {
	c.readerWrapper = wrapper
}

// Compare compares two files byte-by-byte
func (c *BinaryComparator) Compare(ctx context.Context, source, target storage.Backend, sourcePath, targetPath string) (*Comparison, error) {
	comparison := &Comparison{
		SourcePath: sourcePath,
		TargetPath: targetPath,
	}

	sourceInfo, err := source.Stat(ctx, sourcePath)
	if err != nil {
		return nil, err
	}

	targetInfo, err := target.Stat(ctx, targetPath)
	if err != nil {
		return nil, err
	}

	// Quick check: if sizes differ, files are different
	if sourceInfo.Size != targetInfo.Size {
		comparison.Result = Different
		comparison.Reason = fmt.Sprintf("size mismatch: source=%d, target=%d", sourceInfo.Size, targetInfo.Size)
		return comparison, nil
	}

	sourceReader, err := source.Open(ctx, sourcePath)
	if err != nil {
		return nil, err
	}
	defer sourceReader.Close()

	targetReader, err := target.Open(ctx, targetPath)
	if err != nil {
		return nil, err
	}
	defer targetReader.Close()

	var sourceReaderWrapped io.Reader = sourceReader
	var targetReaderWrapped io.Reader = targetReader
	if c.readerWrapper != nil {
		sourceReaderWrapped = c.readerWrapper(sourceReader)
		targetReaderWrapped = c.readerWrapper(targetReader)
	}

	sourceBufPtr := c.bufferPool.Get().(*[]byte)
	defer c.bufferPool.Put(sourceBufPtr)
	sourceBuf := *sourceBufPtr

	targetBufPtr := c.bufferPool.Get().(*[]byte)
	defer c.bufferPool.Put(targetBufPtr)
	targetBuf := *targetBufPtr

	// Progress reporting with throttling
	const (
		progressReportInterval = 50 * time.Millisecond
		progressReportBytes    = 64 * 1024
	)

	var bytesCompared int64
	var lastReported int64
	var lastReportTime time.Time

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		sourceN, sourceEOF, err := readChunk(sourceReaderWrapped, sourceBuf)
		if err != nil {
			return nil, models.NewError(models.KindComparison, sourcePath, err)
		}
		targetN, targetEOF, err := readChunk(targetReaderWrapped, targetBuf)
		if err != nil {
			return nil, models.NewError(models.KindComparison, targetPath, err)
		}

		// The files changed length since they were sized
		if sourceN != targetN {
			comparison.Result = Different
			comparison.Reason = fmt.Sprintf("length mismatch at offset %d", bytesCompared+int64(min(sourceN, targetN)))
			comparison.BytesCompared = bytesCompared
			return comparison, nil
		}

		if !bytes.Equal(sourceBuf[:sourceN], targetBuf[:targetN]) {
			diffOffset := bytesCompared
			for i := 0; i < sourceN; i++ {
				if sourceBuf[i] != targetBuf[i] {
					diffOffset += int64(i)
					break
				}
			}
			comparison.Result = Different
			comparison.Reason = fmt.Sprintf("binary content differs at byte offset %d", diffOffset)
			comparison.BytesCompared = diffOffset
			return comparison, nil
		}

		bytesCompared += int64(sourceN)

		if c.progressReport != nil {
			shouldReport := bytesCompared-lastReported >= progressReportBytes ||
				time.Since(lastReportTime) >= progressReportInterval
			if shouldReport || (sourceEOF && bytesCompared > lastReported) {
				c.progressReport(sourcePath, bytesCompared, sourceInfo.Size)
				lastReported = bytesCompared
				lastReportTime = time.Now()
			}
		}

		if sourceEOF && targetEOF {
			break
		}
	}

	comparison.Result = Same
	comparison.Reason = fmt.Sprintf("binary content matches (%d bytes)", bytesCompared)
	comparison.BytesCompared = bytesCompared
	return comparison, nil
}

// Name returns the comparator name
func (c *BinaryComparator) Name() string {
	return "binary"
}

// readChunk fills buf as far as the reader allows.
// eof is true once the reader has nothing more to give.
func readChunk(r io.Reader, buf []byte) (n int, eof bool, err error) {
	n, err = io.ReadFull(r, buf)
	switch {
	case err == nil:
		return n, false, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return n, true, nil
	default:
		return n, false, err
	}
}
