package parser

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlsbinspect-go/pkg/xlsbinspect/models"
	"github.com/xuri/excelize/v2"
)

func strPtr(s string) *string { return &s }

func TestExtractGrid(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetCellValue(sheet, "A1", "id")
	f.SetCellValue(sheet, "C1", "qty")
	for row := 2; row <= 6; row++ {
		a, _ := excelize.CoordinatesToCellName(1, row)
		b, _ := excelize.CoordinatesToCellName(2, row)
		c, _ := excelize.CoordinatesToCellName(3, row)
		f.SetCellValue(sheet, a, row-1)
		f.SetCellValue(sheet, b, "note")
		f.SetCellValue(sheet, c, 2.5)
	}

	path := filepath.Join(t.TempDir(), "grid.xlsx")
	require.NoError(t, f.SaveAs(path))

	summary, err := ExtractGrid(path, 3)
	require.NoError(t, err)
	assert.Equal(t, models.MethodGrid, summary.MethodUsed)

	grid, ok := summary.Sheets[sheet].(*models.GridSheet)
	require.True(t, ok)
	assert.Equal(t, 6, grid.MaxRow)
	assert.Equal(t, 3, grid.MaxColumn)
	assert.Equal(t, []*string{strPtr("id"), nil, strPtr("qty")}, grid.Headers)
	require.Len(t, grid.SampleRows, 3)
	assert.Equal(t, models.Record{"id": int64(1), models.NullHeaderKey: "note", "qty": 2.5}, grid.SampleRows[0])
	assert.Equal(t, int64(3), grid.SampleRows[2]["id"])
}

func TestExtractGridSampleWindow(t *testing.T) {
	tests := []struct {
		dataRows int
		expected int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 3},
		{8, 3},
	}

	dir := t.TempDir()
	for _, tt := range tests {
		f := excelize.NewFile()
		f.SetCellValue("Sheet1", "A1", "h1")
		f.SetCellValue("Sheet1", "B1", "h2")
		for i := 0; i < tt.dataRows; i++ {
			cell, _ := excelize.CoordinatesToCellName(1, i+2)
			f.SetCellValue("Sheet1", cell, i)
		}
		path := filepath.Join(dir, "window.xlsx")
		require.NoError(t, f.SaveAs(path))
		f.Close()

		summary, err := ExtractGrid(path, 3)
		require.NoError(t, err)

		grid := summary.Sheets["Sheet1"].(*models.GridSheet)
		assert.Equal(t, tt.dataRows+1, grid.MaxRow)
		assert.Len(t, grid.Headers, 2)
		assert.Len(t, grid.SampleRows, tt.expected, "data rows=%d", tt.dataRows)
	}
}

func TestExtractGridEmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, f.SaveAs(path))

	summary, err := ExtractGrid(path, 3)
	require.NoError(t, err)

	grid := summary.Sheets["Sheet1"].(*models.GridSheet)
	assert.Equal(t, 1, grid.MaxRow)
	assert.Equal(t, 1, grid.MaxColumn)
	assert.Equal(t, []*string{nil}, grid.Headers)
	assert.Empty(t, grid.SampleRows)
}

func TestExtractGridRejectsBinaryWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xlsb")
	require.NoError(t, os.WriteFile(path, []byte{0x00, 0x01, 0x02}, 0644))

	_, err := ExtractGrid(path, 3)
	assert.Error(t, err)
}

func TestExtractGridDates(t *testing.T) {
	summary, err := ExtractGrid(saveDateWorkbook(t), 3)
	require.NoError(t, err)

	grid := summary.Sheets["Sheet1"].(*models.GridSheet)
	require.Len(t, grid.SampleRows, 2)
	assert.Equal(t, int64(4), grid.SampleRows[0]["qty"])

	value, ok := grid.SampleRows[1]["fecha"].(time.Time)
	require.True(t, ok, "got %T", grid.SampleRows[1]["fecha"])
	assert.True(t, value.Equal(time.Date(2024, 3, 2, 12, 30, 0, 0, time.UTC)), "got %v", value)
}
