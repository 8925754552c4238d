package output

import (
	"fmt"
	"io"

	"github.com/sdejongh/dircmp/pkg/models"
)

// Output formats
const (
	FormatHuman = "human"
	FormatJSON  = "json"
)

// Formatter renders a finished comparison report
// Implementations include human-readable and JSON formatters
type Formatter interface {
	// Write renders the report to w
	Write(w io.Writer, report *models.Report) error

	// Name returns the formatter name
	Name() string
}

// NewFormatter returns the formatter for the named format
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case FormatHuman, "":
		return NewHumanFormatter(), nil
	case FormatJSON:
		return NewJSONFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (expected %s or %s)", format, FormatHuman, FormatJSON)
	}
}
