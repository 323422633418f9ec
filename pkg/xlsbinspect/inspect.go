package xlsbinspect

import (
	"fmt"
	"log/slog"

	"github.com/ukaji3/xlsbinspect-go/pkg/xlsbinspect/models"
)

// Reporter receives human-readable progress events.
type Reporter interface {
	RunStarted(extension string, files []string)
	FileStarted(name string)
	BackendStarted(method models.Method, path string)
	BackendFailed(method models.Method, err error)
	WorkbookExtracted(summary *models.WorkbookSummary)
	Unreadable(name string, available map[models.Method]bool)
}

type nopReporter struct{}

func (nopReporter) RunStarted(string, []string)               {}
func (nopReporter) FileStarted(string)                        {}
func (nopReporter) BackendStarted(models.Method, string)      {}
func (nopReporter) BackendFailed(models.Method, error)        {}
func (nopReporter) WorkbookExtracted(*models.WorkbookSummary) {}
func (nopReporter) Unreadable(string, map[models.Method]bool) {}

// Inspector runs the ordered extractors over a list of files and
// accumulates the results.
type Inspector struct {
	extractors []Extractor
	caps       Capabilities
	logger     *slog.Logger
	reporter   Reporter
}

// NewInspector creates an Inspector using the backends allowed by caps.
// A nil logger or reporter discards the corresponding output.
func NewInspector(caps Capabilities, opts Options, logger *slog.Logger, reporter Reporter) *Inspector {
	return newInspector(Extractors(caps, opts), caps, logger, reporter)
}

func newInspector(extractors []Extractor, caps Capabilities, logger *slog.Logger, reporter Reporter) *Inspector {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Inspector{
		extractors: extractors,
		caps:       caps,
		logger:     logger,
		reporter:   reporter,
	}
}

// InspectFile tries each extractor in order and returns the first summary.
// It returns false when no backend could read the file.
func (in *Inspector) InspectFile(path string) (*models.WorkbookSummary, bool) {
	name := FileKey(path)
	in.reporter.FileStarted(name)

	summary, err := in.extract(path, name)
	if err != nil {
		in.logger.Warn("file unreadable",
			slog.String("file", name),
			slog.Bool("tabular_available", in.caps.Available(models.MethodTabular)),
			slog.Bool("grid_available", in.caps.Available(models.MethodGrid)),
			slog.Any("error", err),
		)
		in.reporter.Unreadable(name, in.caps.Map())
		return nil, false
	}

	in.logger.Info("workbook extracted",
		slog.String("file", name),
		slog.String("backend", string(summary.MethodUsed)),
		slog.Int("sheets", len(summary.Sheets)),
	)
	in.reporter.WorkbookExtracted(summary)
	return summary, true
}

// extract walks the fallback chain. When every backend fails the error
// wraps ErrUnreadable and the last backend error.
func (in *Inspector) extract(path, name string) (*models.WorkbookSummary, error) {
	var lastErr error
	for _, e := range in.extractors {
		in.reporter.BackendStarted(e.Method(), path)
		summary, err := e.Extract(path)
		if err != nil {
			in.logger.Warn("extraction failed",
				slog.String("file", name),
				slog.String("backend", string(e.Method())),
				slog.Any("error", err),
			)
			in.reporter.BackendFailed(e.Method(), err)
			lastErr = err
			continue
		}
		if summary != nil {
			return summary, nil
		}
	}
	if lastErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, lastErr)
	}
	return nil, ErrUnreadable
}

// Run inspects files sequentially. A file that cannot be read is left out
// of the result and never stops the run.
func (in *Inspector) Run(paths []string) models.ResultSet {
	results := make(models.ResultSet)
	for _, path := range paths {
		if summary, ok := in.InspectFile(path); ok {
			results[FileKey(path)] = summary
		}
	}
	return results
}
