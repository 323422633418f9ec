// Package parser reads workbook contents for the tabular and grid backends.
package parser

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// cellReader reads typed cell values from an OOXML workbook. Numbers
// stored with a date number format come back as time.Time.
type cellReader struct {
	f          *excelize.File
	date1904   bool
	dateStyles map[int]bool
}

func newCellReader(f *excelize.File) *cellReader {
	r := &cellReader{f: f, dateStyles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		r.date1904 = *props.Date1904
	}
	return r
}

// sheetValues reads every row of a sheet as typed values.
// Missing and empty cells are nil.
func (r *cellReader) sheetValues(sheetName string) ([][]interface{}, error) {
	rows, err := r.f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	result := make([][]interface{}, len(rows))
	for rowIdx, row := range rows {
		values := make([]interface{}, len(row))
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			if values[colIdx], err = r.typed(sheetName, cellName, raw); err != nil {
				return nil, err
			}
		}
		result[rowIdx] = values
	}

	return result, nil
}

// value returns the cached value of a single cell, or nil when empty.
func (r *cellReader) value(sheetName string, col, row int) (interface{}, error) {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return nil, err
	}
	raw, err := r.f.GetCellValue(sheetName, cellName, excelize.Options{RawCellValue: true})
	if err != nil || raw == "" {
		return nil, err
	}
	return r.typed(sheetName, cellName, raw)
}

func (r *cellReader) typed(sheetName, cellName, raw string) (interface{}, error) {
	cellType, err := r.f.GetCellType(sheetName, cellName)
	if err != nil {
		return nil, err
	}
	if cellType != excelize.CellTypeUnset && cellType != excelize.CellTypeNumber {
		return typedValue(raw, cellType), nil
	}

	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil || serial < 0 {
		return typedValue(raw, cellType), nil
	}
	styleID, err := r.f.GetCellStyle(sheetName, cellName)
	if err != nil {
		return nil, err
	}
	if !r.isDateStyle(styleID) {
		return typedValue(raw, cellType), nil
	}
	t, err := excelize.ExcelDateToTime(serial, r.date1904)
	if err != nil {
		return typedValue(raw, cellType), nil
	}
	return t, nil
}

func (r *cellReader) isDateStyle(styleID int) bool {
	if styleID == 0 {
		return false
	}
	if isDate, ok := r.dateStyles[styleID]; ok {
		return isDate
	}
	isDate := false
	if style, err := r.f.GetStyle(styleID); err == nil && style != nil {
		isDate = isDateNumFmt(style.NumFmt, style.CustomNumFmt)
	}
	r.dateStyles[styleID] = isDate
	return isDate
}

// isDateNumFmt reports whether a number format renders dates or times.
// Built-in ids cover the locale-independent date formats and the
// East Asian date formats; custom codes are checked for date tokens.
func isDateNumFmt(numFmt int, custom *string) bool {
	if custom != nil {
		return hasDateTokens(*custom)
	}
	switch {
	case numFmt >= 14 && numFmt <= 22,
		numFmt >= 27 && numFmt <= 36,
		numFmt >= 45 && numFmt <= 47,
		numFmt >= 50 && numFmt <= 58:
		return true
	}
	return false
}

// hasDateTokens drops quoted text, bracketed sections and escaped
// characters from a format code and looks for d, m, y, h or s.
func hasDateTokens(code string) bool {
	if strings.EqualFold(code, "General") {
		return false
	}
	// Only the positive section decides.
	if i := strings.IndexByte(code, ';'); i >= 0 {
		code = code[:i]
	}
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case inQuote:
			inQuote = c != '"'
		case inBracket:
			inBracket = c != ']'
		case c == '"':
			inQuote = true
		case c == '[':
			inBracket = true
		case c == '\\' || c == '_' || c == '*':
			i++
		default:
			switch c | 0x20 {
			case 'd', 'm', 'y', 'h', 's':
				return true
			}
		}
	}
	return false
}

// typedValue converts a raw cell value using the cell's stored type.
func typedValue(raw string, cellType excelize.CellType) interface{} {
	switch cellType {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true")
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return raw
	case excelize.CellTypeDate:
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t
		}
		if t, err := time.Parse("2006-01-02T15:04:05", raw); err == nil {
			return t
		}
		return raw
	default:
		return parseValue(raw)
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return normalizeFloat(f)
	}
	// Return as string
	return s
}

// normalizeFloat turns integral floats into int64, the way binary readers
// report whole numbers stored as doubles.
func normalizeFloat(f float64) interface{} {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return int64(f)
	}
	return f
}
