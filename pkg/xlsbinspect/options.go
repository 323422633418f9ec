// Package xlsbinspect inspects spreadsheet workbooks and summarizes their sheets.
package xlsbinspect

import (
	"fmt"
	"strings"

	"github.com/ukaji3/xlsbinspect-go/pkg/xlsbinspect/models"
)

// DefaultSampleRows is the number of sample rows kept per sheet.
const DefaultSampleRows = 3

// Options configures a run.
type Options struct {
	// Extension selects which files are inspected (e.g. ".xlsb").
	Extension string
	// SampleRows bounds the sample records kept per sheet.
	SampleRows int
	// OutputPath is the JSON file written at the end of a run.
	OutputPath string
	// Format is the output format: "json" or "toon".
	Format string
}

// DefaultOptions returns default run options.
func DefaultOptions() Options {
	return Options{
		Extension:  ".xlsb",
		SampleRows: DefaultSampleRows,
		Format:     "json",
	}
}

// Capabilities records which backends are available for this process.
// It is determined once at startup.
type Capabilities struct {
	Tabular bool
	Grid    bool
}

// DetectCapabilities builds Capabilities from the enabled backend names.
func DetectCapabilities(enabled []string) (Capabilities, error) {
	var caps Capabilities
	for _, name := range enabled {
		switch models.Method(strings.ToLower(strings.TrimSpace(name))) {
		case models.MethodTabular:
			caps.Tabular = true
		case models.MethodGrid:
			caps.Grid = true
		case "":
		default:
			return Capabilities{}, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
		}
	}
	return caps, nil
}

// Available reports whether the backend for method m may be used.
func (c Capabilities) Available(m models.Method) bool {
	switch m {
	case models.MethodTabular:
		return c.Tabular
	case models.MethodGrid:
		return c.Grid
	}
	return false
}

// Map returns availability per method, in a form suitable for reporting.
func (c Capabilities) Map() map[models.Method]bool {
	return map[models.Method]bool{
		models.MethodTabular: c.Available(models.MethodTabular),
		models.MethodGrid:    c.Available(models.MethodGrid),
	}
}
