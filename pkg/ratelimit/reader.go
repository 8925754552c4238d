// Package ratelimit caps the read throughput of byte comparisons.
package ratelimit

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
)

// minBucketSize keeps small limits from degrading into tiny reads
const minBucketSize = 64 * 1024

// Limiter is a token bucket shared by every reader it wraps
type Limiter struct {
	bytesPerSecond int64
	mu             sync.Mutex
	tokens         int64     // Available tokens (bytes)
	lastUpdate     time.Time // Last time tokens were updated
	bucketSize     int64     // Maximum tokens (burst size)
}

// NewLimiter creates a limiter for the given rate.
// A non-positive rate means unlimited and yields nil.
func NewLimiter(bytesPerSecond int64) *Limiter {
	if bytesPerSecond <= 0 {
		return nil
	}

	bucketSize := bytesPerSecond
	if bucketSize < minBucketSize {
		bucketSize = minBucketSize
	}

	return &Limiter{
		bytesPerSecond: bytesPerSecond,
		tokens:         bucketSize,
		lastUpdate:     time.Now(),
		bucketSize:     bucketSize,
	}
}

// ParseBandwidth parses a rate such as "10M", "512KiB" or "1G" into bytes per second.
// An empty string means unlimited.
func ParseBandwidth(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "0" {
		return 0, nil
	}
	s = strings.TrimSuffix(strings.TrimSuffix(s, "/s"), "ps")

	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid bandwidth %q: %w", s, err)
	}
	if n > uint64(1<<62) {
		return 0, fmt.Errorf("invalid bandwidth %q: too large", s)
	}
	return int64(n), nil
}

// Wait blocks until n bytes may be read or ctx is done
func (l *Limiter) Wait(ctx context.Context, n int64) error {
	for {
		l.mu.Lock()
		l.refillTokens()

		if l.tokens >= n {
			l.tokens -= n
			l.mu.Unlock()
			return nil
		}

		deficit := n - l.tokens
		waitTime := time.Duration(float64(deficit) / float64(l.bytesPerSecond) * float64(time.Second))
		if waitTime < time.Millisecond {
			waitTime = time.Millisecond
		}
		l.mu.Unlock()

		timer := time.NewTimer(waitTime)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// refillTokens adds tokens based on elapsed time (must be called with lock held)
func (l *Limiter) refillTokens() {
	now := time.Now()
	elapsed := now.Sub(l.lastUpdate)

	tokensToAdd := int64(float64(elapsed) / float64(time.Second) * float64(l.bytesPerSecond))
	if tokensToAdd > 0 {
		l.tokens += tokensToAdd
		if l.tokens > l.bucketSize {
			l.tokens = l.bucketSize
		}
		l.lastUpdate = now
	}
}

// refund returns tokens reserved for bytes that were never read
func (l *Limiter) refund(n int64) {
	if n <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tokens += n
	if l.tokens > l.bucketSize {
		l.tokens = l.bucketSize
	}
}

// Reader wraps an io.Reader with bandwidth limiting
type Reader struct {
	reader  io.Reader
	limiter *Limiter
	ctx     context.Context
}

// NewReader wraps reader with the limiter; a nil limiter returns reader as is
func NewReader(ctx context.Context, reader io.Reader, limiter *Limiter) io.Reader {
	if limiter == nil {
		return reader
	}
	return &Reader{
		reader:  reader,
		limiter: limiter,
		ctx:     ctx,
	}
}

// Read implements io.Reader, reading at most one bucket per call
func (r *Reader) Read(p []byte) (int, error) {
	toRead := len(p)
	if int64(toRead) > r.limiter.bucketSize {
		toRead = int(r.limiter.bucketSize)
	}

	if err := r.limiter.Wait(r.ctx, int64(toRead)); err != nil {
		return 0, err
	}

	n, err := r.reader.Read(p[:toRead])
	r.limiter.refund(int64(toRead - n))
	return n, err
}

// Wrapper returns a reader wrapper bound to ctx and limiter
func Wrapper(ctx context.Context, limiter *Limiter) func(io.Reader) io.Reader {
	return func(r io.Reader) io.Reader {
		return NewReader(ctx, r, limiter)
	}
}
