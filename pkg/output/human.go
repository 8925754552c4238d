package output

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/sdejongh/dircmp/pkg/models"
)

// Lines of the human stdout format
const (
	NoUnmatchedLine     = "No unmatched files."
	UnmatchedHeaderLine = "Unmatched files:"
)

// HumanFormatter prints the unmatched list, one source path per line
type HumanFormatter struct{}

// NewHumanFormatter creates a new human-readable formatter
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{}
}

// Write prints either the no-unmatched line or the header followed by the
// unmatched paths in report order
func (f *HumanFormatter) Write(w io.Writer, report *models.Report) error {
	if len(report.Unmatched) == 0 {
		_, err := fmt.Fprintln(w, NoUnmatchedLine)
		return err
	}

	if _, err := fmt.Fprintln(w, UnmatchedHeaderLine); err != nil {
		return err
	}
	for _, entry := range report.Unmatched {
		if _, err := fmt.Fprintln(w, entry.Path); err != nil {
			return err
		}
	}
	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return FormatHuman
}

// WriteSummary prints run statistics. Used for verbose runs on stderr.
func WriteSummary(w io.Writer, report *models.Report) {
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Comparison completed in %s\n", report.Duration.Round(time.Millisecond))
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Summary:\n")
	fmt.Fprintf(w, "  Scanned:\n")
	fmt.Fprintf(w, "    Source:         %d files, %s\n", report.Stats.SourceFiles, formatBytes(report.Stats.SourceBytes))
	fmt.Fprintf(w, "    Target:         %d files, %d distinct sizes\n", report.Stats.TargetFiles, report.Stats.TargetBuckets)
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  Results:\n")
	fmt.Fprintf(w, "    Matched:        %d\n", report.Stats.Matched)
	fmt.Fprintf(w, "    Unmatched:      %d\n", report.Stats.Unmatched)
	fmt.Fprintf(w, "    Comparisons:    %d\n", report.Stats.Comparisons)
	fmt.Fprintf(w, "    Data compared:  %s\n", formatBytes(report.Stats.BytesCompared))

	if report.Duration.Seconds() > 0 && report.Stats.BytesCompared > 0 {
		avgSpeed := float64(report.Stats.BytesCompared) / report.Duration.Seconds()
		fmt.Fprintf(w, "    Average speed:  %s/s\n", formatBytes(int64(avgSpeed)))
	}

	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Status: %s\n", report.Status)
}

// formatBytes formats bytes in human-readable IEC units
func formatBytes(bytes int64) string {
	if bytes < 0 {
		return "-" + humanize.IBytes(uint64(-bytes))
	}
	return humanize.IBytes(uint64(bytes))
}

// formatDuration formats duration in human-readable format
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}
