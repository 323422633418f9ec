package parser

import (
	"fmt"
	"time"

	"github.com/TsubasaBE/go-xlsb/workbook"
)

// readXLSB loads every sheet of a binary workbook. Blank rows are dropped
// by the sparse row iterator; values are normalized to the frame's types.
func readXLSB(path string) ([]SheetRows, error) {
	wb, err := workbook.Open(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	names := wb.Sheets()
	sheets := make([]SheetRows, 0, len(names))
	for i, name := range names {
		sheet, err := wb.Sheet(i + 1)
		if err != nil {
			return nil, &SheetError{Sheet: name, Err: err}
		}

		var rows [][]interface{}
		for row := range sheet.Rows(true) {
			values := make([]interface{}, len(row))
			for j, c := range row {
				values[j] = xlsbValue(c.V)
			}
			rows = append(rows, values)
		}
		sheets = append(sheets, SheetRows{Name: name, Rows: rows})
	}

	return sheets, nil
}

// xlsbValue maps a decoded binary cell value onto nil, bool, int64,
// float64, string or time.Time.
func xlsbValue(v interface{}) interface{} {
	switch t := v.(type) {
	case nil, bool, string, int64, time.Time:
		return t
	case float64:
		return normalizeFloat(t)
	case float32:
		return normalizeFloat(float64(t))
	case int:
		return int64(t)
	case int32:
		return int64(t)
	case uint32:
		return int64(t)
	default:
		return fmt.Sprint(t)
	}
}
