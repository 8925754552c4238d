package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/sdejongh/dircmp/internal/platform"
	"github.com/sdejongh/dircmp/pkg/config"
	"github.com/sdejongh/dircmp/pkg/models"
	"github.com/sdejongh/dircmp/pkg/output"
	"github.com/sdejongh/dircmp/pkg/ratelimit"
)

// validateDirectory checks that path names an existing directory and returns
// its normalized form
func validateDirectory(path string) (string, error) {
	if err := platform.ValidatePath(path); err != nil {
		return "", models.NewError(models.KindInvalidDirectory, path, err)
	}

	normalized := platform.NormalizePath(path)
	info, err := os.Stat(normalized)
	if err != nil {
		return "", models.NewError(models.KindInvalidDirectory, path, err)
	}
	if !info.IsDir() {
		return "", models.NewError(models.KindInvalidDirectory, path, fmt.Errorf("not a directory"))
	}

	return normalized, nil
}

// loadConfig loads configuration from file or returns default
func loadConfig(globals *GlobalFlags) (*config.Config, error) {
	cfg, err := config.Load(globals.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// applyFlagsToConfig overrides config values with flags set on the command line
func applyFlagsToConfig(cfg *config.Config, globals *GlobalFlags, flags *CompareFlags, set *pflag.FlagSet) error {
	if set.Changed("all") {
		cfg.Scan.IncludeHidden = flags.All
	}

	if set.Changed("exclude") {
		cfg.Scan.Exclude = flags.Exclude
	}

	if set.Changed("output") {
		cfg.Output.Format = flags.Output
	}

	if set.Changed("progress") {
		cfg.Output.Progress = flags.Progress
	}

	if set.Changed("buffer-size") {
		cfg.Performance.BufferSize = flags.BufferSize
	}

	if set.Changed("bandwidth") {
		limit, err := ratelimit.ParseBandwidth(flags.Bandwidth)
		if err != nil {
			return err
		}
		cfg.Performance.BandwidthLimit = limit
	}

	if set.Changed("log-file") {
		cfg.Logging.File = flags.LogFile
	}
	if set.Changed("log-format") {
		cfg.Logging.Format = flags.LogFormat
	}
	if set.Changed("log-level") {
		cfg.Logging.Level = flags.LogLevel
	}

	if flags.ReportFormat != output.FormatHuman && flags.ReportFormat != output.FormatJSON {
		return &models.ValidationError{
			Field:   "report-format",
			Message: "must be 'human' or 'json'",
		}
	}

	// Enable progress in verbose mode
	if globals.Verbose {
		cfg.Output.Progress = true
	}

	// Disable progress in quiet mode
	if globals.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}

	return cfg.Validate()
}

// createOperation creates a comparison run from configuration
func createOperation(cfg *config.Config, source, target string) (*models.Operation, error) {
	operation := &models.Operation{
		ID:             uuid.New().String(),
		SourcePath:     source,
		TargetPath:     target,
		IncludeHidden:  cfg.Scan.IncludeHidden,
		HiddenMarker:   cfg.Scan.HiddenMarker,
		Exclude:        cfg.Scan.Exclude,
		BufferSize:     cfg.Performance.BufferSize,
		BandwidthLimit: cfg.Performance.BandwidthLimit,
		CreatedAt:      time.Now(),
	}

	if err := operation.Validate(); err != nil {
		return nil, err
	}

	return operation, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
