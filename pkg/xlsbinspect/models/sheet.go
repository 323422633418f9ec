package models

// SheetSummary is implemented by the per-backend sheet summaries.
type SheetSummary interface {
	// Method reports which backend produced the summary.
	Method() Method
	// Samples returns the sampled data rows.
	Samples() []Record
}

// TabularSheet summarizes a sheet loaded as a frame.
type TabularSheet struct {
	// RowCount is the number of data rows (header excluded).
	RowCount int `json:"row_count"`
	// ColumnCount is the number of columns.
	ColumnCount int `json:"column_count"`
	// ColumnNames lists column names in physical order.
	ColumnNames []string `json:"column_names"`
	// ColumnTypes maps column name to its inferred dtype label.
	ColumnTypes map[string]string `json:"column_types"`
	// SampleRows holds the first data rows keyed by column name.
	SampleRows []Record `json:"sample_rows"`
}

// Method implements SheetSummary.
func (s *TabularSheet) Method() Method { return MethodTabular }

// Samples implements SheetSummary.
func (s *TabularSheet) Samples() []Record { return s.SampleRows }

// GridSheet summarizes a sheet read through the cell-grid API.
type GridSheet struct {
	// MaxRow is the last used row (1-based, at least 1).
	MaxRow int `json:"max_row"`
	// MaxColumn is the last used column (1-based, at least 1).
	MaxColumn int `json:"max_column"`
	// Headers holds row 1 values; blank header cells are nil.
	Headers []*string `json:"headers"`
	// SampleRows holds records from row 2 on, keyed by header.
	SampleRows []Record `json:"sample_rows"`
}

// Method implements SheetSummary.
func (s *GridSheet) Method() Method { return MethodGrid }

// Samples implements SheetSummary.
func (s *GridSheet) Samples() []Record { return s.SampleRows }
