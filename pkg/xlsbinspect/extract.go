package xlsbinspect

import (
	"fmt"

	"github.com/ukaji3/xlsbinspect-go/pkg/xlsbinspect/models"
	"github.com/ukaji3/xlsbinspect-go/pkg/xlsbinspect/parser"
)

// Extractor summarizes one workbook with a single backend.
// Failures, including panics inside reader libraries, come back as
// *ExtractionError.
type Extractor interface {
	Method() models.Method
	Extract(path string) (*models.WorkbookSummary, error)
}

type extractFunc func(path string, sampleRows int) (*models.WorkbookSummary, error)

type backendExtractor struct {
	method     models.Method
	sampleRows int
	extract    extractFunc
}

func (e *backendExtractor) Method() models.Method {
	return e.method
}

func (e *backendExtractor) Extract(path string) (summary *models.WorkbookSummary, err error) {
	defer func() {
		if r := recover(); r != nil {
			summary = nil
			err = NewExtractionError(path, e.method, fmt.Errorf("panic: %v", r))
		}
	}()

	summary, err = e.extract(path, e.sampleRows)
	if err != nil {
		return nil, NewExtractionError(path, e.method, err)
	}
	return summary, nil
}

// NewTabularExtractor returns the frame-based backend.
func NewTabularExtractor(sampleRows int) Extractor {
	return &backendExtractor{method: models.MethodTabular, sampleRows: sampleRows, extract: parser.ExtractTabular}
}

// NewGridExtractor returns the cell-grid backend.
func NewGridExtractor(sampleRows int) Extractor {
	return &backendExtractor{method: models.MethodGrid, sampleRows: sampleRows, extract: parser.ExtractGrid}
}

// Extractors returns the available backends in priority order: tabular first,
// grid as fallback.
func Extractors(caps Capabilities, opts Options) []Extractor {
	var extractors []Extractor
	for _, e := range []Extractor{NewTabularExtractor(opts.SampleRows), NewGridExtractor(opts.SampleRows)} {
		if caps.Available(e.Method()) {
			extractors = append(extractors, e)
		}
	}
	return extractors
}
