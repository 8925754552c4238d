package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdejongh/dircmp/pkg/models"
)

func sampleReport(unmatched ...models.FileEntry) *models.Report {
	return &models.Report{
		OperationID: "op-1",
		SourcePath:  "/src",
		TargetPath:  "/dst",
		Duration:    1500 * time.Millisecond,
		Stats: models.Statistics{
			SourceFiles:   3,
			SourceBytes:   4096,
			TargetFiles:   2,
			TargetBuckets: 2,
			Matched:       3 - len(unmatched),
			Unmatched:     len(unmatched),
			Comparisons:   2,
			BytesCompared: 2048,
		},
		Unmatched: unmatched,
		Status:    models.StatusSuccess,
	}
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format  string
		name    string
		wantErr bool
	}{
		{"human", "human", false},
		{"", "human", false},
		{"json", "json", false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			f, err := NewFormatter(tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.name, f.Name())
		})
	}
}

func TestHumanFormatter(t *testing.T) {
	t.Run("NoUnmatched", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewHumanFormatter().Write(&buf, sampleReport()))
		assert.Equal(t, "No unmatched files.\n", buf.String())
	})

	t.Run("Unmatched", func(t *testing.T) {
		var buf bytes.Buffer
		report := sampleReport(
			models.FileEntry{Path: "/src/p/two", RelativePath: "p/two", Size: 3},
			models.FileEntry{Path: "/src/big", RelativePath: "big", Size: 10},
		)
		require.NoError(t, NewHumanFormatter().Write(&buf, report))
		assert.Equal(t, "Unmatched files:\n/src/p/two\n/src/big\n", buf.String())
	})
}

func TestJSONFormatter(t *testing.T) {
	t.Run("EmptyListIsArray", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewJSONFormatter().Write(&buf, sampleReport()))
		assert.Contains(t, buf.String(), `"unmatched": []`)
	})

	t.Run("Fields", func(t *testing.T) {
		var buf bytes.Buffer
		report := sampleReport(models.FileEntry{Path: "/src/p/two", RelativePath: "p/two", Size: 3})
		require.NoError(t, NewJSONFormatter().Write(&buf, report))

		var decoded JSONReportData
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "op-1", decoded.OperationID)
		assert.Equal(t, "success", decoded.Status)
		assert.Equal(t, int64(1500), decoded.DurationMs)
		assert.Equal(t, 1, decoded.Stats.Unmatched)
		assert.Equal(t, "1.3 KiB/s", decoded.Stats.AverageSpeed)
		require.Len(t, decoded.Unmatched, 1)
		assert.Equal(t, JSONEntryData{Path: "/src/p/two", RelativePath: "p/two", Size: 3}, decoded.Unmatched[0])
	})
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, sampleReport(models.FileEntry{Path: "/src/a", Size: 1}))

	out := buf.String()
	assert.Contains(t, out, "Comparison completed in 1.5s")
	assert.Contains(t, out, "3 files, 4.0 KiB")
	assert.Contains(t, out, "Unmatched:      1")
	assert.Contains(t, out, "Status: success")
}

func TestWriteReportFile(t *testing.T) {
	t.Run("SkippedWhenEmpty", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, WriteReportFile(fs, "/report.txt", FormatHuman, sampleReport()))

		exists, err := afero.Exists(fs, "/report.txt")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Human", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		report := sampleReport(models.FileEntry{Path: "/src/p/two", RelativePath: "p/two", Size: 2048})
		require.NoError(t, WriteReportFile(fs, "/report.txt", FormatHuman, report))

		content, err := afero.ReadFile(fs, "/report.txt")
		require.NoError(t, err)
		assert.Contains(t, string(content), "Unmatched (1 of 3 files)")
		assert.Contains(t, string(content), "  /src/p/two (2.0 KiB)\n")
		assert.Contains(t, string(content), "Duration: 1s")
	})

	t.Run("JSON", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		report := sampleReport(models.FileEntry{Path: "/src/p/two", RelativePath: "p/two", Size: 3})
		require.NoError(t, WriteReportFile(fs, "/report.json", FormatJSON, report))

		content, err := afero.ReadFile(fs, "/report.json")
		require.NoError(t, err)

		var decoded JSONReportData
		require.NoError(t, json.Unmarshal(content, &decoded))
		assert.Len(t, decoded.Unmatched, 1)
	})

	t.Run("CreateFails", func(t *testing.T) {
		fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
		report := sampleReport(models.FileEntry{Path: "/src/a", Size: 1})
		err := WriteReportFile(fs, "/report.txt", FormatHuman, report)
		assert.ErrorContains(t, err, "failed to create report file")
	})
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45s", formatDuration(45*time.Second))
	assert.Equal(t, "2m5s", formatDuration(125*time.Second))
	assert.Equal(t, "1h1m", formatDuration(61*time.Minute))
}

func TestProgressBar(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgressBar(&buf)

	bar.Phase("Preprocessing...")
	bar.Start(3)
	for i := 1; i <= 3; i++ {
		bar.Update(i, 3)
	}
	bar.Finish()
	bar.Finish()
	bar.Phase("Done")

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Preprocessing...\n"))
	assert.True(t, strings.HasSuffix(out, "Done\n"))
	assert.False(t, IsTerminal(&buf))
}

func TestProgressBarUpdateBeforeStart(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgressBar(&buf)
	bar.Update(1, 2)
	bar.Finish()
	assert.Empty(t, buf.String())
}
