package cli

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sdejongh/dircmp/pkg/compare"
	"github.com/sdejongh/dircmp/pkg/config"
	"github.com/sdejongh/dircmp/pkg/match"
	"github.com/sdejongh/dircmp/pkg/output"
	"github.com/sdejongh/dircmp/pkg/ratelimit"
	"github.com/sdejongh/dircmp/pkg/storage"
)

// runCompare reports the files of args[0] with no byte-identical file in args[1]
func runCompare(cmd *cobra.Command, args []string, globals *GlobalFlags, flags *CompareFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Both roots are checked before anything is scanned
	sourcePath, err := validateDirectory(args[0])
	if err != nil {
		return err
	}
	targetPath, err := validateDirectory(args[1])
	if err != nil {
		return err
	}

	cfg, err := loadConfig(globals)
	if err != nil {
		return err
	}

	if err := applyFlagsToConfig(cfg, globals, flags, cmd.Flags()); err != nil {
		return usageError(err)
	}

	operation, err := createOperation(cfg, sourcePath, targetPath)
	if err != nil {
		return fmt.Errorf("failed to create operation: %w", err)
	}

	formatter, err := output.NewFormatter(cfg.Output.Format)
	if err != nil {
		return usageError(err)
	}

	logger, err := createLogger(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	opts := []storage.Option{
		storage.WithHidden(operation.IncludeHidden),
		storage.WithHiddenMarker(operation.HiddenMarker),
		storage.WithExclude(operation.Exclude...),
		storage.WithLogger(logger),
	}

	source, err := storage.NewOsLocal(operation.SourcePath, opts...)
	if err != nil {
		return err
	}
	defer source.Close()

	target, err := storage.NewOsLocal(operation.TargetPath, opts...)
	if err != nil {
		return err
	}
	defer target.Close()

	comparator := compare.NewBinaryComparator(operation.BufferSize)
	if operation.BandwidthLimit > 0 {
		comparator.SetReaderWrapper(ratelimit.Wrapper(ctx, ratelimit.NewLimiter(operation.BandwidthLimit)))
	}

	engine := match.NewEngine(source, target, comparator, createReporter(cmd, cfg), logger, operation)

	report, err := engine.Run(ctx)
	if err != nil {
		return err
	}

	if err := formatter.Write(cmd.OutOrStdout(), report); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if flags.Report != "" {
		if err := output.WriteReportFile(afero.NewOsFs(), flags.Report, flags.ReportFormat, report); err != nil {
			return err
		}
	}

	if globals.Verbose && !cfg.Output.Quiet {
		output.WriteSummary(cmd.ErrOrStderr(), report)
	}

	return nil
}

// createReporter returns a progress bar when progress is enabled and stderr
// is a terminal
func createReporter(cmd *cobra.Command, cfg *config.Config) match.Reporter {
	stderr := cmd.ErrOrStderr()
	if !cfg.Output.Progress || cfg.Output.Quiet || !output.IsTerminal(stderr) {
		return match.NopReporter{}
	}
	return output.NewProgressBar(stderr)
}
