package xlsbinspect

import (
	"log/slog"
	"path/filepath"

	"github.com/ukaji3/xlsbinspect-go/pkg/xlsbinspect/models"
	"github.com/ukaji3/xlsbinspect-go/pkg/xlsbinspect/output"
)

// DefaultOutputName is the result file written into the input directory.
const DefaultOutputName = "xlsb_analysis.json"

// Result describes a completed run.
type Result struct {
	// Files lists the discovered input files.
	Files []string
	// Results holds the summaries of the readable files.
	Results models.ResultSet
	// Written lists the output files; empty when nothing was readable.
	Written []string
}

// Run discovers matching files in dir, inspects them in order and persists
// the results. It returns ErrNoFiles when dir holds no matching file; in
// that case nothing is written.
func Run(dir string, caps Capabilities, opts Options, logger *slog.Logger, reporter Reporter) (*Result, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	files, err := Discover(dir, opts.Extension)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		logger.Info("no files to inspect", slog.String("dir", dir), slog.String("extension", opts.Extension))
		return &Result{}, ErrNoFiles
	}
	logger.Info("files discovered", slog.String("dir", dir), slog.Int("count", len(files)))

	if reporter == nil {
		reporter = nopReporter{}
	}
	reporter.RunStarted(opts.Extension, files)
	inspector := NewInspector(caps, opts, logger, reporter)
	results := inspector.Run(files)

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = filepath.Join(dir, DefaultOutputName)
	}
	written, err := output.Persist(outputPath, results, opts.Format)
	if err != nil {
		return &Result{Files: files, Results: results, Written: written}, err
	}
	if len(written) == 0 {
		logger.Info("no workbook could be read; nothing written", slog.Int("files", len(files)))
	} else {
		logger.Info("results saved", slog.Any("paths", written), slog.Int("workbooks", len(results)))
	}

	return &Result{Files: files, Results: results, Written: written}, nil
}
