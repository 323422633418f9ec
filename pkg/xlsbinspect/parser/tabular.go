package parser

import (
	"path/filepath"
	"strings"

	"github.com/ukaji3/xlsbinspect-go/pkg/xlsbinspect/models"
	"github.com/xuri/excelize/v2"
)

// SheetRows holds the raw typed rows of one sheet.
type SheetRows struct {
	Name string
	Rows [][]interface{}
}

// ReadSheets loads every sheet of a workbook, choosing the reader by
// file extension: binary workbooks, legacy BIFF files, or OOXML.
func ReadSheets(path string) ([]SheetRows, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsb":
		return readXLSB(path)
	case ".xls":
		return readXLS(path)
	default:
		return readOOXML(path)
	}
}

func readOOXML(path string) ([]SheetRows, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := newCellReader(f)
	sheetList := f.GetSheetList()
	sheets := make([]SheetRows, 0, len(sheetList))
	for _, sheetName := range sheetList {
		rows, err := reader.sheetValues(sheetName)
		if err != nil {
			return nil, &SheetError{Sheet: sheetName, Err: err}
		}
		sheets = append(sheets, SheetRows{Name: sheetName, Rows: rows})
	}
	return sheets, nil
}

// ExtractTabular loads every sheet of the workbook into a frame and
// summarizes it with up to sampleRows sample records.
func ExtractTabular(path string, sampleRows int) (*models.WorkbookSummary, error) {
	sheets, err := ReadSheets(path)
	if err != nil {
		return nil, err
	}

	summary := models.NewWorkbookSummary(path, models.MethodTabular)
	for _, sheet := range sheets {
		summary.AddSheet(sheet.Name, NewFrame(sheet.Rows).Summary(sampleRows))
	}
	return summary, nil
}
