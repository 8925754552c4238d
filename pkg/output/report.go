package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/sdejongh/dircmp/pkg/models"
)

// WriteReportFile writes the unmatched report to path on fs.
// Format can be "human" or "json". Nothing is written when every source file
// was matched.
func WriteReportFile(fs afero.Fs, path, format string, report *models.Report) error {
	if len(report.Unmatched) == 0 {
		return nil
	}

	file, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}

	switch format {
	case FormatJSON:
		err = NewJSONFormatter().Write(file, report)
	default:
		err = writeReportHuman(file, report)
	}
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to write report file: %w", err)
	}

	return file.Close()
}

// writeReportHuman writes the unmatched files with their sizes
func writeReportHuman(w io.Writer, report *models.Report) error {
	fmt.Fprintf(w, "Unmatched Files Report\n")
	fmt.Fprintf(w, "======================\n\n")
	fmt.Fprintf(w, "Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(w, "Operation: %s\n", report.OperationID)
	fmt.Fprintf(w, "Source: %s\n", report.SourcePath)
	fmt.Fprintf(w, "Target: %s\n", report.TargetPath)
	fmt.Fprintf(w, "Hidden files: %v\n", report.IncludeHidden)
	fmt.Fprintf(w, "Duration: %s\n\n", formatDuration(report.Duration))

	label := fmt.Sprintf("Unmatched (%d of %d files)", len(report.Unmatched), report.Stats.SourceFiles)
	fmt.Fprintf(w, "%s\n", label)
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", len(label)))

	for _, entry := range report.Unmatched {
		if _, err := fmt.Fprintf(w, "  %s (%s)\n", entry.Path, formatBytes(entry.Size)); err != nil {
			return err
		}
	}

	return nil
}
