package config

import (
	"fmt"
	"path/filepath"
	"unicode/utf8"

	"github.com/sdejongh/dircmp/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Scan        ScanConfig        `yaml:"scan"`
	Performance PerformanceConfig `yaml:"performance"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// ScanConfig holds tree enumeration settings
type ScanConfig struct {
	IncludeHidden bool     `yaml:"include_hidden"`
	HiddenMarker  string   `yaml:"hidden_marker"`
	Exclude       []string `yaml:"exclude"` // Glob patterns skipped in both trees
}

// PerformanceConfig holds performance-related settings
type PerformanceConfig struct {
	BufferSize     int   `yaml:"buffer_size"`
	BandwidthLimit int64 `yaml:"bandwidth_limit"` // bytes per second, 0 = unlimited
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // Show a progress bar on a terminal
	Quiet    bool   `yaml:"quiet"`    // Suppress progress and phase messages
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Format string `yaml:"format"` // "json" or "text"
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	File   string `yaml:"file"`   // Log file path (empty = disabled, "-" = stderr)
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			IncludeHidden: false,
			HiddenMarker:  models.DefaultHiddenMarker,
			Exclude:       []string{},
		},
		Performance: PerformanceConfig{
			BufferSize:     65536,
			BandwidthLimit: 0,
		},
		Output: OutputConfig{
			Format:   "human",
			Progress: true,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Format: "text",
			Level:  "info",
			File:   "",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Scan.HiddenMarker) != 1 {
		return &models.ValidationError{
			Field:   "scan.hidden_marker",
			Message: "must be a single character",
		}
	}

	for _, pattern := range c.Scan.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return &models.ValidationError{
				Field:   "scan.exclude",
				Message: "invalid pattern " + pattern,
			}
		}
	}

	if c.Performance.BufferSize < models.MinBufferSize {
		return &models.ValidationError{
			Field:   "performance.buffer_size",
			Message: fmt.Sprintf("must be at least %d bytes", models.MinBufferSize),
		}
	}

	if c.Performance.BandwidthLimit < 0 {
		return &models.ValidationError{
			Field:   "performance.bandwidth_limit",
			Message: "cannot be negative",
		}
	}

	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}
