package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// UsedRange returns the last used row and column of a sheet (1-based).
// It takes the larger of the stored dimension and the populated cells, and
// reports at least 1x1 for an empty sheet.
func UsedRange(f *excelize.File, sheetName string) (maxRow, maxCol int, err error) {
	maxRow, maxCol = 1, 1

	ref, err := f.GetSheetDimension(sheetName)
	if err != nil {
		return 0, 0, err
	}
	if ref != "" {
		parts := strings.Split(ref, ":")
		if col, row, err := excelize.CellNameToCoordinates(parts[len(parts)-1]); err == nil {
			maxRow, maxCol = max(maxRow, row), max(maxCol, col)
		}
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return 0, 0, err
	}
	lastRow, lastCol := lastUsedCell(rows)

	return max(maxRow, lastRow), max(maxCol, lastCol), nil
}

// lastUsedCell returns the 1-based row of the last non-empty cell and the
// rightmost non-empty column across all rows, or zeros for no data.
func lastUsedCell(rows [][]string) (lastRow, lastCol int) {
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			lastRow = rowIdx + 1
			lastCol = max(lastCol, colIdx+1)
		}
	}
	return lastRow, lastCol
}
