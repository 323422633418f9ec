// Package main provides the CLI entry point for xlsbinspect.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlsbinspect-go/internal/config"
	"github.com/ukaji3/xlsbinspect-go/internal/logging"
	"github.com/ukaji3/xlsbinspect-go/pkg/xlsbinspect"
	"github.com/ukaji3/xlsbinspect-go/pkg/xlsbinspect/report"
)

// flagValues holds the command-line flags; only flags that were set
// override the loaded configuration.
type flagValues struct {
	configPath string
	dir        string
	extension  string
	outputPath string
	sampleRows int
	backends   []string
	format     string
	logLevel   string
	logFormat  string
}

func main() {
	if err := newRootCmd(&flagValues{}).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(flags *flagValues) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlsbinspect",
		Short: "Summarize the sheets of the workbooks in a directory",
		Long: `xlsbinspect reads every workbook with the configured extension
(.xlsb by default) in a directory and reports, per sheet, its shape, column
names, inferred column types and a few sample rows. The summary is saved as
JSON next to the inspected files.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags)
		},
	}

	rootCmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "YAML config file (default: ./"+config.DefaultFile+" if present)")
	rootCmd.Flags().StringVarP(&flags.dir, "dir", "d", "", "Directory to scan (default: current directory)")
	rootCmd.Flags().StringVar(&flags.extension, "ext", "", "File extension to inspect (default: .xlsb)")
	rootCmd.Flags().StringVarP(&flags.outputPath, "output", "o", "", "Output file path (default: <dir>/"+xlsbinspect.DefaultOutputName+")")
	rootCmd.Flags().IntVar(&flags.sampleRows, "sample-rows", 0, "Sample rows kept per sheet (default: 3)")
	rootCmd.Flags().StringSliceVar(&flags.backends, "backends", nil, "Enabled backends in any order: tabular, grid")
	rootCmd.Flags().StringVar(&flags.format, "format", "", "Output format: json or toon")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&flags.logFormat, "log-format", "", "Log format: text or json")

	return rootCmd
}

// resolveConfig loads the configuration, applies the flags set on cmd and
// validates the result.
func resolveConfig(cmd *cobra.Command, flags *flagValues) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, flags, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func run(cmd *cobra.Command, flags *flagValues) error {
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}

	logger, err := logging.SetupLogger(cfg.Logging, os.Stderr)
	if err != nil {
		return err
	}

	// Backend availability is fixed for the whole run.
	caps, err := xlsbinspect.DetectCapabilities(cfg.Backends)
	if err != nil {
		return err
	}

	opts := xlsbinspect.Options{
		Extension:  cfg.Extension,
		SampleRows: cfg.SampleRows,
		OutputPath: cfg.OutputPath(),
		Format:     cfg.Format,
	}

	console := report.NewConsole(cmd.OutOrStdout())
	result, err := xlsbinspect.Run(cfg.Dir, caps, opts, logger, console)
	if errors.Is(err, xlsbinspect.ErrNoFiles) {
		console.NoFiles(cfg.Dir, cfg.Extension)
		return nil
	}
	if err != nil {
		return err
	}
	console.Saved(result.Written)
	return nil
}

// applyFlags overrides configuration values with flags set on the command line.
func applyFlags(cmd *cobra.Command, values *flagValues, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.Dir = values.dir
	}
	if flags.Changed("ext") {
		cfg.Extension = values.extension
	}
	if flags.Changed("output") {
		cfg.Output = values.outputPath
	}
	if flags.Changed("sample-rows") {
		cfg.SampleRows = values.sampleRows
	}
	if flags.Changed("backends") {
		cfg.Backends = values.backends
	}
	if flags.Changed("format") {
		cfg.Format = values.format
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = values.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = values.logFormat
	}
}
