package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/sdejongh/dircmp/pkg/models"
)

// JSONFormatter formats the report as JSON for automation and scripting
type JSONFormatter struct{}

// JSONReportData represents the report document
type JSONReportData struct {
	OperationID   string          `json:"operation_id"`
	Status        string          `json:"status"`
	SourcePath    string          `json:"source_path"`
	TargetPath    string          `json:"target_path"`
	IncludeHidden bool            `json:"include_hidden"`
	Duration      string          `json:"duration"`
	DurationMs    int64           `json:"duration_ms"`
	Stats         JSONStatsData   `json:"stats"`
	Unmatched     []JSONEntryData `json:"unmatched"`
}

// JSONStatsData represents statistics in JSON format
type JSONStatsData struct {
	SourceFiles   int    `json:"source_files"`
	SourceBytes   int64  `json:"source_bytes"`
	TargetFiles   int    `json:"target_files"`
	TargetSizes   int    `json:"target_sizes"`
	Matched       int    `json:"matched"`
	Unmatched     int    `json:"unmatched"`
	Comparisons   int    `json:"comparisons"`
	BytesCompared int64  `json:"bytes_compared"`
	AverageSpeed  string `json:"average_speed,omitempty"`
}

// JSONEntryData represents an unmatched source file
type JSONEntryData struct {
	Path         string `json:"path"`
	RelativePath string `json:"relative_path"`
	Size         int64  `json:"size"`
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Write encodes the report as a single indented JSON document
func (f *JSONFormatter) Write(w io.Writer, report *models.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newJSONReportData(report))
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return FormatJSON
}

func newJSONReportData(report *models.Report) JSONReportData {
	var avgSpeed string
	if report.Duration.Seconds() > 0 && report.Stats.BytesCompared > 0 {
		avgSpeed = formatBytes(int64(float64(report.Stats.BytesCompared)/report.Duration.Seconds())) + "/s"
	}

	// Always an array, never null
	unmatched := make([]JSONEntryData, 0, len(report.Unmatched))
	for _, entry := range report.Unmatched {
		unmatched = append(unmatched, JSONEntryData{
			Path:         entry.Path,
			RelativePath: entry.RelativePath,
			Size:         entry.Size,
		})
	}

	return JSONReportData{
		OperationID:   report.OperationID,
		Status:        string(report.Status),
		SourcePath:    report.SourcePath,
		TargetPath:    report.TargetPath,
		IncludeHidden: report.IncludeHidden,
		Duration:      report.Duration.Round(time.Millisecond).String(),
		DurationMs:    report.Duration.Milliseconds(),
		Stats: JSONStatsData{
			SourceFiles:   report.Stats.SourceFiles,
			SourceBytes:   report.Stats.SourceBytes,
			TargetFiles:   report.Stats.TargetFiles,
			TargetSizes:   report.Stats.TargetBuckets,
			Matched:       report.Stats.Matched,
			Unmatched:     report.Stats.Unmatched,
			Comparisons:   report.Stats.Comparisons,
			BytesCompared: report.Stats.BytesCompared,
			AverageSpeed:  avgSpeed,
		},
		Unmatched: unmatched,
	}
}
