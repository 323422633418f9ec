package parser

import (
	"github.com/ukaji3/xlsbinspect-go/pkg/xlsbinspect/models"
	"github.com/xuri/excelize/v2"
)

// ExtractGrid reads each sheet through the cell API: row 1 as headers and
// rows 2..min(sampleRows+1, max_row) as records. Cached values are
// reported; formulas are never evaluated.
func ExtractGrid(path string, sampleRows int) (*models.WorkbookSummary, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := newCellReader(f)
	summary := models.NewWorkbookSummary(path, models.MethodGrid)
	for _, sheetName := range f.GetSheetList() {
		sheet, err := gridSheet(reader, sheetName, sampleRows)
		if err != nil {
			return nil, &SheetError{Sheet: sheetName, Err: err}
		}
		summary.AddSheet(sheetName, sheet)
	}
	return summary, nil
}

func gridSheet(r *cellReader, sheetName string, sampleRows int) (*models.GridSheet, error) {
	maxRow, maxCol, err := UsedRange(r.f, sheetName)
	if err != nil {
		return nil, err
	}

	headers := make([]*string, maxCol)
	for col := 1; col <= maxCol; col++ {
		value, err := r.value(sheetName, col, 1)
		if err != nil {
			return nil, err
		}
		if value != nil {
			label := formatHeader(value)
			headers[col-1] = &label
		}
	}

	last := min(sampleRows+1, maxRow)
	samples := make([]models.Record, 0, max(last-1, 0))
	for row := 2; row <= last; row++ {
		record := make(models.Record, len(headers))
		for col, header := range headers {
			value, err := r.value(sheetName, col+1, row)
			if err != nil {
				return nil, err
			}
			record[models.HeaderKey(header)] = value
		}
		samples = append(samples, record)
	}

	return &models.GridSheet{
		MaxRow:     maxRow,
		MaxColumn:  maxCol,
		Headers:    headers,
		SampleRows: samples,
	}, nil
}
