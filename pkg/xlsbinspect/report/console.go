// Package report prints human-readable inspection progress.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ukaji3/xlsbinspect-go/pkg/xlsbinspect/models"
)

const ruleWidth = 80

// Console writes progress text to an io.Writer. It is not meant to be parsed.
type Console struct {
	w io.Writer
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.w, format, args...)
}

func (c *Console) rule() string {
	return strings.Repeat("=", ruleWidth)
}

// RunStarted prints the run header.
func (c *Console) RunStarted(extension string, files []string) {
	c.printf("%s\n%s FILE ANALYSIS\n%s\n", c.rule(), strings.ToUpper(strings.TrimPrefix(extension, ".")), c.rule())
}

// NoFiles reports that the directory holds nothing to inspect.
func (c *Console) NoFiles(dir, extension string) {
	c.printf("No %s files found in: %s\n", extension, dir)
}

// Saved reports the output files.
func (c *Console) Saved(paths []string) {
	for _, p := range paths {
		c.printf("\n\nAnalysis saved to: %s\n", p)
	}
}

// FileStarted prints the per-file header.
func (c *Console) FileStarted(name string) {
	c.printf("\n\n%s\nFILE: %s\n%s\n", c.rule(), name, c.rule())
}

// BackendStarted announces a read attempt.
func (c *Console) BackendStarted(method models.Method, path string) {
	c.printf("\n[%s] Reading %s...\n", strings.ToUpper(string(method)), path)
}

// BackendFailed prints the backend error.
func (c *Console) BackendFailed(method models.Method, err error) {
	c.printf("  Error with %s: %v\n", method, err)
}

// WorkbookExtracted prints every sheet of the summary.
func (c *Console) WorkbookExtracted(summary *models.WorkbookSummary) {
	for _, name := range summary.SheetNames() {
		c.printf("\n  Sheet: %s\n", name)
		switch sheet := summary.Sheets[name].(type) {
		case *models.TabularSheet:
			c.printf("    Dimensions: %d rows x %d columns\n", sheet.RowCount, sheet.ColumnCount)
			c.printf("    Columns: %v\n", sheet.ColumnNames)
			if len(sheet.SampleRows) > 0 {
				c.printf("    First %d rows:\n", len(sheet.SampleRows))
				for i, record := range sheet.SampleRows {
					c.printf("      %d: %s\n", i, formatRecord(record, sheet.ColumnNames))
				}
			}
		case *models.GridSheet:
			c.printf("    Dimensions: %d rows x %d columns\n", sheet.MaxRow, sheet.MaxColumn)
			c.printf("    Columns: %s\n", formatHeaders(sheet.Headers))
			keys := make([]string, len(sheet.Headers))
			for i, h := range sheet.Headers {
				keys[i] = models.HeaderKey(h)
			}
			for i, record := range sheet.SampleRows {
				c.printf("      Row %d: %s\n", i+2, formatRecord(record, keys))
			}
		}
	}
}

// Unreadable reports a file no backend could read, with backend availability.
func (c *Console) Unreadable(name string, available map[models.Method]bool) {
	c.printf("Could not read %s\n", name)
	c.printf("    Available backends:\n")
	methods := make([]string, 0, len(available))
	for m := range available {
		methods = append(methods, string(m))
	}
	sort.Strings(methods)
	for _, m := range methods {
		c.printf("      - %s: %t\n", m, available[models.Method(m)])
	}
}

// formatRecord renders a record with keys in column order.
func formatRecord(record models.Record, keys []string) string {
	seen := make(map[string]bool, len(keys))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		parts = append(parts, fmt.Sprintf("%q: %v", k, formatValue(record[k])))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func formatHeaders(headers []*string) string {
	parts := make([]string, len(headers))
	for i, h := range headers {
		if h == nil {
			parts[i] = "None"
		} else {
			parts[i] = fmt.Sprintf("%q", *h)
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return "None"
	case string:
		return fmt.Sprintf("%q", t)
	default:
		return fmt.Sprint(t)
	}
}
