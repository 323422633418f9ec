package xlsbinspect

import (
	"errors"
	"fmt"

	"github.com/ukaji3/xlsbinspect-go/pkg/xlsbinspect/models"
	"github.com/ukaji3/xlsbinspect-go/pkg/xlsbinspect/parser"
)

// ErrNoFiles indicates the input directory holds no matching files.
var ErrNoFiles = errors.New("no matching files found")

// ErrUnknownBackend indicates a backend name that is not recognized.
var ErrUnknownBackend = errors.New("unknown backend")

// ErrUnreadable indicates no available backend could read a file.
var ErrUnreadable = errors.New("file could not be read by any available backend")

// ExtractionError represents a failure of one backend on one file.
type ExtractionError struct {
	Path    string
	Backend models.Method
	Sheet   string // empty when the failure is not tied to a sheet
	Err     error
}

func (e *ExtractionError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("%s extraction of %s failed in sheet %q: %v", e.Backend, e.Path, e.Sheet, e.Err)
	}
	return fmt.Sprintf("%s extraction of %s failed: %v", e.Backend, e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError, lifting the sheet name
// out of a wrapped parser.SheetError.
func NewExtractionError(path string, backend models.Method, err error) *ExtractionError {
	e := &ExtractionError{
		Path:    path,
		Backend: backend,
		Err:     err,
	}
	var sheetErr *parser.SheetError
	if errors.As(err, &sheetErr) {
		e.Sheet = sheetErr.Sheet
		e.Err = sheetErr.Err
	}
	return e
}
