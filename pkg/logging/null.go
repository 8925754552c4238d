package logging

import "context"

var _ Logger = (*NullLogger)(nil)

// NullLogger drops every entry. The CLI uses it when no log destination is
// configured, and the match engine falls back to it when given a nil logger.
type NullLogger struct{}

// NewNullLogger returns a logger that writes nothing
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

// Debug drops the entry
func (l *NullLogger) Debug(ctx context.Context, msg string, fields Fields) {}

// Info drops the entry
func (l *NullLogger) Info(ctx context.Context, msg string, fields Fields) {}

// Warn drops the entry
func (l *NullLogger) Warn(ctx context.Context, msg string, fields Fields) {}

// Error drops the entry and the error
func (l *NullLogger) Error(ctx context.Context, msg string, err error, fields Fields) {}

// WithFields ignores fields and returns l
func (l *NullLogger) WithFields(fields Fields) Logger {
	return l
}

// Close has nothing to release
func (l *NullLogger) Close() error {
	return nil
}
