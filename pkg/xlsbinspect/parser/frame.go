package parser

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ukaji3/xlsbinspect-go/pkg/xlsbinspect/models"
)

// Dtype labels reported for tabular columns.
const (
	DtypeInt64    = "int64"
	DtypeFloat64  = "float64"
	DtypeBool     = "bool"
	DtypeDatetime = "datetime64[ns]"
	DtypeObject   = "object"
)

// Frame is a sheet loaded as a header plus data rows.
type Frame struct {
	// Columns holds unique column names in physical order.
	Columns []string
	// Rows holds data rows, each padded to len(Columns).
	Rows [][]interface{}
}

// NewFrame builds a frame from raw sheet rows. The first non-blank row is
// the header; fully blank data rows are skipped.
func NewFrame(rows [][]interface{}) *Frame {
	start := 0
	for start < len(rows) && isBlankRow(rows[start]) {
		start++
	}
	if start == len(rows) {
		return &Frame{}
	}

	header := trimTrailingNil(rows[start])
	width := len(header)
	var data [][]interface{}
	for _, row := range rows[start+1:] {
		row = trimTrailingNil(row)
		if len(row) == 0 {
			continue
		}
		if len(row) > width {
			width = len(row)
		}
		data = append(data, row)
	}

	names := make([]string, width)
	for i := range names {
		if i < len(header) && !isBlank(header[i]) {
			names[i] = formatHeader(header[i])
		} else {
			names[i] = fmt.Sprintf("Unnamed: %d", i)
		}
	}

	frame := &Frame{
		Columns: dedupeColumns(names),
		Rows:    make([][]interface{}, len(data)),
	}
	for i, row := range data {
		padded := make([]interface{}, width)
		for col, value := range row {
			if !isBlank(value) {
				padded[col] = value
			}
		}
		frame.Rows[i] = padded
	}
	return frame
}

// Dtypes returns the inferred dtype label of every column.
func (fr *Frame) Dtypes() []string {
	dtypes := make([]string, len(fr.Columns))
	for col := range fr.Columns {
		dtypes[col] = fr.columnDtype(col)
	}
	return dtypes
}

func (fr *Frame) columnDtype(col int) string {
	if len(fr.Rows) == 0 {
		return DtypeObject
	}

	var nulls, ints, floats, bools, times, others int
	for _, row := range fr.Rows {
		switch row[col].(type) {
		case nil:
			nulls++
		case int64:
			ints++
		case float64:
			floats++
		case bool:
			bools++
		case time.Time:
			times++
		default:
			others++
		}
	}

	values := len(fr.Rows) - nulls
	switch {
	case values == 0:
		return DtypeFloat64
	case others > 0:
		return DtypeObject
	case ints == values && nulls == 0:
		return DtypeInt64
	case ints+floats == values:
		return DtypeFloat64
	case bools == values && nulls == 0:
		return DtypeBool
	case times == values:
		return DtypeDatetime
	default:
		return DtypeObject
	}
}

// Head returns up to n data rows as records keyed by column name.
func (fr *Frame) Head(n int, dtypes []string) []models.Record {
	if n > len(fr.Rows) {
		n = len(fr.Rows)
	}
	records := make([]models.Record, 0, n)
	for _, row := range fr.Rows[:n] {
		record := make(models.Record, len(fr.Columns))
		for col, name := range fr.Columns {
			value := row[col]
			if i, ok := value.(int64); ok && dtypes[col] == DtypeFloat64 {
				value = float64(i)
			}
			record[name] = value
		}
		records = append(records, record)
	}
	return records
}

// Summary derives the tabular sheet summary with up to sampleRows samples.
func (fr *Frame) Summary(sampleRows int) *models.TabularSheet {
	dtypes := fr.Dtypes()
	types := make(map[string]string, len(fr.Columns))
	for col, name := range fr.Columns {
		types[name] = dtypes[col]
	}
	columns := make([]string, len(fr.Columns))
	copy(columns, fr.Columns)

	return &models.TabularSheet{
		RowCount:    len(fr.Rows),
		ColumnCount: len(fr.Columns),
		ColumnNames: columns,
		ColumnTypes: types,
		SampleRows:  fr.Head(sampleRows, dtypes),
	}
}

// dedupeColumns suffixes repeated names with .1, .2, ... in order. A
// suffixed name that already appears anywhere in the header is skipped,
// so "a, a, a.1" becomes "a, a.2, a.1".
func dedupeColumns(names []string) []string {
	result := make([]string, len(names))
	copy(result, names)
	taken := make(map[string]int, len(names))
	for _, name := range names {
		taken[name]++
	}

	counts := make(map[string]int, len(names))
	for i, name := range names {
		col := name
		cur := counts[name]
		for cur > 0 {
			counts[name] = cur + 1
			col = fmt.Sprintf("%s.%d", name, cur)
			if taken[col] > 0 {
				cur++
			} else {
				cur = counts[col]
			}
		}
		if col != name {
			taken[name]--
			taken[col]++
		}
		result[i] = col
		counts[col] = cur + 1
	}
	return result
}

func formatHeader(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Time:
		return t.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprint(t)
	}
}

func isBlankRow(row []interface{}) bool {
	return len(trimTrailingNil(row)) == 0
}

func trimTrailingNil(row []interface{}) []interface{} {
	end := len(row)
	for end > 0 && isBlank(row[end-1]) {
		end--
	}
	return row[:end]
}

func isBlank(v interface{}) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}
