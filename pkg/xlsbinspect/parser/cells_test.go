package parser

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestReadSheetValues(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "C1", "Header3")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "A3", "Text")
	f.SetCellValue(sheetName, "C3", true)
	f.SetCellValue(sheetName, "B4", "123")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, err := newCellReader(f2).sheetValues(sheetName)
	if err != nil {
		t.Fatalf("sheetValues failed: %v", err)
	}

	if len(rows) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(rows))
	}
	if rows[0][0] != "Header1" {
		t.Errorf("Expected 'Header1', got %v", rows[0][0])
	}

	// Check numeric values
	if rows[1][0] != int64(100) {
		t.Errorf("Expected int64(100), got %v (type: %T)", rows[1][0], rows[1][0])
	}
	if rows[1][1] != 200.5 {
		t.Errorf("Expected 200.5, got %v", rows[1][1])
	}

	// Missing cell inside a row is nil
	if rows[2][1] != nil {
		t.Errorf("Expected nil, got %v", rows[2][1])
	}
	if rows[2][2] != true {
		t.Errorf("Expected true, got %v (type: %T)", rows[2][2], rows[2][2])
	}

	// Text cells stay text even when they look numeric
	if rows[3][1] != "123" {
		t.Errorf("Expected string '123', got %v (type: %T)", rows[3][1], rows[3][1])
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"2.0", int64(2)},
		{"1e3", int64(1000)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestTypedValue(t *testing.T) {
	tests := []struct {
		raw      string
		cellType excelize.CellType
		expected interface{}
	}{
		{"1", excelize.CellTypeBool, true},
		{"0", excelize.CellTypeBool, false},
		{"42", excelize.CellTypeSharedString, "42"},
		{"42", excelize.CellTypeUnset, int64(42)},
		{"0.25", excelize.CellTypeNumber, 0.25},
		{"#DIV/0!", excelize.CellTypeError, "#DIV/0!"},
		{"total", excelize.CellTypeFormula, "total"},
	}

	for _, tt := range tests {
		result := typedValue(tt.raw, tt.cellType)
		if result != tt.expected {
			t.Errorf("typedValue(%q, %v) = %v (type: %T), expected %v",
				tt.raw, tt.cellType, result, result, tt.expected)
		}
	}
}

func TestXLSBValue(t *testing.T) {
	tests := []struct {
		input    interface{}
		expected interface{}
	}{
		{nil, nil},
		{3.0, int64(3)},
		{3.5, 3.5},
		{int(7), int64(7)},
		{"x", "x"},
		{false, false},
	}

	for _, tt := range tests {
		result := xlsbValue(tt.input)
		if result != tt.expected {
			t.Errorf("xlsbValue(%v) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestSheetValuesDateFormats(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	custom := "dd/mm/yyyy"
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &custom})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}

	f.SetCellValue(sheet, "A1", 45352)
	f.SetCellStyle(sheet, "A1", "A1", dateStyle)
	f.SetCellValue(sheet, "B1", 45352)
	f.SetCellStyle(sheet, "B1", "B1", moneyStyle)
	f.SetCellValue(sheet, "C1", 45352)

	rows, err := newCellReader(f).sheetValues(sheet)
	if err != nil {
		t.Fatalf("sheetValues failed: %v", err)
	}

	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if got, ok := rows[0][0].(time.Time); !ok || !got.Equal(want) {
		t.Errorf("Expected %v, got %v (type: %T)", want, rows[0][0], rows[0][0])
	}
	if rows[0][1] != int64(45352) {
		t.Errorf("Expected int64(45352), got %v (type: %T)", rows[0][1], rows[0][1])
	}
	if rows[0][2] != int64(45352) {
		t.Errorf("Expected int64(45352), got %v (type: %T)", rows[0][2], rows[0][2])
	}
}

func TestIsDateNumFmt(t *testing.T) {
	code := func(s string) *string { return &s }
	tests := []struct {
		numFmt   int
		custom   *string
		expected bool
	}{
		{0, nil, false},
		{2, nil, false},
		{14, nil, true},
		{22, nil, true},
		{45, nil, true},
		{49, nil, false},
		{0, code("yyyy-mm-dd"), true},
		{0, code("[h]:mm:ss"), true},
		{0, code(`"Day "0`), false},
		{0, code("[Red]#,##0.00"), false},
		{0, code("0.00E+00"), false},
		{0, code("General"), false},
	}

	for _, tt := range tests {
		custom := "<nil>"
		if tt.custom != nil {
			custom = *tt.custom
		}
		if got := isDateNumFmt(tt.numFmt, tt.custom); got != tt.expected {
			t.Errorf("isDateNumFmt(%d, %q) = %v, expected %v", tt.numFmt, custom, got, tt.expected)
		}
	}
}
