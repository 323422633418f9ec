// Package models defines data structures for workbook inspection results.
package models

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Method identifies the backend that produced a summary.
type Method string

const (
	// MethodTabular loads each sheet into a frame and derives shape and dtypes.
	MethodTabular Method = "tabular"
	// MethodGrid reads the header row and a few data rows cell by cell.
	MethodGrid Method = "grid"
)

// WorkbookSummary represents the inspection result of one workbook file.
type WorkbookSummary struct {
	// FilePath is the path the workbook was read from.
	FilePath string `json:"file_path"`
	// MethodUsed is the backend that produced every sheet summary.
	MethodUsed Method `json:"method_used"`
	// Sheets maps sheet name to its summary (*TabularSheet or *GridSheet).
	Sheets map[string]SheetSummary `json:"sheets"`
	// SheetOrder is the physical sheet order in the workbook.
	SheetOrder []string `json:"-"`
}

// NewWorkbookSummary creates an empty summary for the given file and method.
func NewWorkbookSummary(path string, method Method) *WorkbookSummary {
	return &WorkbookSummary{
		FilePath:   path,
		MethodUsed: method,
		Sheets:     make(map[string]SheetSummary),
	}
}

// AddSheet records a sheet summary, keeping workbook order.
func (w *WorkbookSummary) AddSheet(name string, sheet SheetSummary) {
	if _, ok := w.Sheets[name]; !ok {
		w.SheetOrder = append(w.SheetOrder, name)
	}
	w.Sheets[name] = sheet
}

// SheetNames returns sheet names in workbook order, or sorted when the
// order is unknown (e.g. after decoding from JSON).
func (w *WorkbookSummary) SheetNames() []string {
	if len(w.SheetOrder) == len(w.Sheets) {
		return w.SheetOrder
	}
	names := make([]string, 0, len(w.Sheets))
	for name := range w.Sheets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnmarshalJSON decodes sheets into the concrete type selected by method_used.
func (w *WorkbookSummary) UnmarshalJSON(data []byte) error {
	var raw struct {
		FilePath   string                     `json:"file_path"`
		MethodUsed Method                     `json:"method_used"`
		Sheets     map[string]json.RawMessage `json:"sheets"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	w.FilePath = raw.FilePath
	w.MethodUsed = raw.MethodUsed
	w.Sheets = make(map[string]SheetSummary, len(raw.Sheets))
	w.SheetOrder = nil

	for name, msg := range raw.Sheets {
		var sheet SheetSummary
		switch raw.MethodUsed {
		case MethodTabular:
			sheet = &TabularSheet{}
		case MethodGrid:
			sheet = &GridSheet{}
		default:
			return fmt.Errorf("unknown method %q", raw.MethodUsed)
		}
		if err := json.Unmarshal(msg, sheet); err != nil {
			return fmt.Errorf("sheet %q: %w", name, err)
		}
		w.Sheets[name] = sheet
	}
	return nil
}
