package models

import "sort"

// ResultSet maps a workbook file name to its summary.
type ResultSet map[string]*WorkbookSummary

// Names returns the file names in sorted order.
func (r ResultSet) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
