package cli

import (
	"io"

	"github.com/sdejongh/dircmp/pkg/config"
	"github.com/sdejongh/dircmp/pkg/logging"
)

// createLogger creates a logger based on configuration.
// An empty file disables logging and "-" logs to stderr.
func createLogger(cfg config.LoggingConfig, stderr io.Writer) (logging.Logger, error) {
	format := logging.ParseFormat(cfg.Format)
	level := logging.ParseLevel(cfg.Level)

	switch cfg.File {
	case "":
		return logging.NewNullLogger(), nil
	case "-":
		return logging.NewWriterLogger(stderr, format, level), nil
	}

	return logging.NewFileLogger(logging.FileLoggerConfig{
		Path:       cfg.File,
		Format:     format,
		Level:      level,
		MaxSize:    10 * 1024 * 1024, // 10 MB
		MaxBackups: 5,
	})
}
