package parser

import (
	"errors"
	"time"

	"github.com/extrame/xls"
)

// errNotBIFF is returned when an OLE container holds no workbook stream.
var errNotBIFF = errors.New("no workbook stream in file")

const (
	// xlsMaxCol is the last column index a BIFF8 sheet can hold.
	xlsMaxCol = 255
	// xlsFormulaText is what the reader returns for every formula cell.
	xlsFormulaText = "FormulaCol"
)

// readXLS loads every sheet of a legacy BIFF workbook.
func readXLS(path string) ([]SheetRows, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, err
	}
	if wb == nil {
		return nil, errNotBIFF
	}

	sheets := make([]SheetRows, 0, wb.NumSheets())
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}

		rows := make([][]interface{}, 0, int(sheet.MaxRow)+1)
		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := xlsRow(sheet, r)
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			rows = append(rows, xlsRowValues(row))
		}
		sheets = append(sheets, SheetRows{Name: sheet.Name, Rows: rows})
	}

	return sheets, nil
}

// xlsRow returns the row at index i, or nil when the sheet has no record
// for it (the reader dereferences missing rows).
func xlsRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}

// xlsRowValues reads the cells of one row from column A. The ROW record's
// column bound is one past the last cell; rows built from cells alone
// report zero, so every column is read.
func xlsRowValues(row *xls.Row) []interface{} {
	last := row.LastCol()
	if last <= 0 || last > xlsMaxCol {
		last = xlsMaxCol
	}
	values := make([]interface{}, last+1)
	for c := 0; c <= last; c++ {
		values[c] = xlsValue(row.Col(c))
	}
	return trimTrailingNil(values)
}

// xlsValue maps the reader's cell text onto a typed value. Numbers with a
// custom format arrive as RFC 3339 timestamps; formula results are not
// exposed by the reader and become nil.
func xlsValue(s string) interface{} {
	switch s {
	case "", xlsFormulaText:
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return parseValue(s)
}
