package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Format represents the log output format
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat parses a log format string, defaulting to text
func ParseFormat(s string) Format {
	if strings.EqualFold(s, string(FormatJSON)) {
		return FormatJSON
	}
	return FormatText
}

// FileLoggerConfig holds configuration for file logging
type FileLoggerConfig struct {
	// Path is the log file path
	Path string
	// Format is the output format (json or text)
	Format Format
	// Level is the minimum log level
	Level Level
	// MaxSize is the maximum size in bytes before rotation (0 = no rotation)
	MaxSize int64
	// MaxBackups is the maximum number of backup files to keep
	MaxBackups int
}

// sink is the destination shared by a logger and everything derived from it
type sink struct {
	mu          sync.Mutex
	writer      io.Writer
	file        *os.File
	currentSize int64
}

// FileLogger implements Logger, writing one line per entry
type FileLogger struct {
	config FileLoggerConfig
	out    *sink
	fields Fields
}

// NewFileLogger creates a logger appending to config.Path
func NewFileLogger(config FileLoggerConfig) (*FileLogger, error) {
	dir := filepath.Dir(config.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(config.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat log file: %w", err)
	}

	return &FileLogger{
		config: config,
		out: &sink{
			writer:      file,
			file:        file,
			currentSize: info.Size(),
		},
	}, nil
}

// NewWriterLogger creates a logger writing to w without rotation
func NewWriterLogger(w io.Writer, format Format, level Level) *FileLogger {
	return &FileLogger{
		config: FileLoggerConfig{Format: format, Level: level},
		out:    &sink{writer: w},
	}
}

func (l *FileLogger) Debug(ctx context.Context, msg string, fields Fields) {
	l.log(DebugLevel, msg, nil, fields)
}

func (l *FileLogger) Info(ctx context.Context, msg string, fields Fields) {
	l.log(InfoLevel, msg, nil, fields)
}

func (l *FileLogger) Warn(ctx context.Context, msg string, fields Fields) {
	l.log(WarnLevel, msg, nil, fields)
}

func (l *FileLogger) Error(ctx context.Context, msg string, err error, fields Fields) {
	l.log(ErrorLevel, msg, err, fields)
}

// WithFields returns a logger sharing the same output with additional fields
func (l *FileLogger) WithFields(fields Fields) Logger {
	return &FileLogger{
		config: l.config,
		out:    l.out,
		fields: mergeFields(l.fields, fields),
	}
}

// Close closes the underlying file, if any
func (l *FileLogger) Close() error {
	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	if l.out.file != nil {
		err := l.out.file.Close()
		l.out.file = nil
		l.out.writer = io.Discard
		return err
	}
	return nil
}

func (l *FileLogger) log(level Level, msg string, err error, fields Fields) {
	if level < l.config.Level {
		return
	}

	allFields := mergeFields(l.fields, fields)

	var line []byte
	if l.config.Format == FormatJSON {
		line = formatJSON(level, msg, err, allFields)
	} else {
		line = formatText(level, msg, err, allFields)
	}

	l.out.mu.Lock()
	defer l.out.mu.Unlock()

	if l.out.file != nil && l.config.MaxSize > 0 && l.out.currentSize >= l.config.MaxSize {
		l.rotate()
	}

	n, _ := l.out.writer.Write(line)
	l.out.currentSize += int64(n)
}

func formatJSON(level Level, msg string, err error, fields Fields) []byte {
	entry := make(map[string]interface{}, len(fields)+4)
	for k, v := range fields {
		entry[k] = v
	}
	entry["timestamp"] = time.Now().UTC().Format(time.RFC3339)
	entry["level"] = level.String()
	entry["message"] = msg
	if err != nil {
		entry["error"] = err.Error()
	}

	data, jsonErr := json.Marshal(entry)
	if jsonErr != nil {
		// Unmarshalable field values fall back to text
		return formatText(level, msg, err, fields)
	}
	return append(data, '\n')
}

func formatText(level Level, msg string, err error, fields Fields) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] %s", time.Now().UTC().Format("2006-01-02T15:04:05.000Z"), level, msg)

	if err != nil {
		fmt.Fprintf(&b, " error=%q", err.Error())
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}

	b.WriteByte('\n')
	return []byte(b.String())
}

// rotate shifts path -> path.1 -> path.2 ... (must be called with the sink lock held)
func (l *FileLogger) rotate() {
	path := l.config.Path
	l.out.file.Close()

	if l.config.MaxBackups > 0 {
		os.Remove(fmt.Sprintf("%s.%d", path, l.config.MaxBackups))
		for i := l.config.MaxBackups - 1; i >= 1; i-- {
			os.Rename(fmt.Sprintf("%s.%d", path, i), fmt.Sprintf("%s.%d", path, i+1))
		}
		os.Rename(path, path+".1")
	} else {
		os.Remove(path)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		l.out.file = nil
		l.out.writer = io.Discard
		return
	}

	l.out.file = file
	l.out.writer = file
	l.out.currentSize = 0
}
