// Command cleanse loads a tabular data file, applies the cleansing pipeline
// (missing-value handling, duplicate removal, categorical encoding) and
// writes the result as CSV.
//
// Usage:
//
//	cleanse <input_file> <output_file> [flags]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"cleansecli/internal/cleansing"
	"cleansecli/internal/config"
	cerrors "cleansecli/internal/errors"
	"cleansecli/internal/infrastructure"
	"cleansecli/internal/operations"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("cleanse", flag.ContinueOnError)
	missingStrategy := fs.String("missing_strategy", "", "strategy for missing values: drop or fill (default drop)")
	fillValue := fs.String("fill_value", "", "literal used to replace missing values when missing_strategy is fill")
	delimiter := fs.String("delimiter", "", "single-character CSV field delimiter (default ,)")
	bom := fs.Bool("bom", false, "prefix the output file with a UTF-8 byte order mark")
	logLevel := fs.String("log_level", "", "log level: debug, info, warn or error (default info)")
	traceEnabled := fs.Bool("trace", false, "emit OpenTelemetry spans for each pipeline step")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: cleanse <input_file> <output_file> [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 2 {
		fs.Usage()
		slog.Error("expected exactly two positional arguments",
			slog.String("code", string(cerrors.CodeConfig)),
			slog.Int("got", fs.NArg()))
		return 1
	}
	inputPath, outputPath := fs.Arg(0), fs.Arg(1)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration failed",
			slog.String("code", string(cerrors.CodeOf(err))),
			slog.String("error", err.Error()))
		return 1
	}

	// Command-line flags override file and environment settings, but only
	// when actually set.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "missing_strategy":
			cfg.Pipeline.MissingStrategy = *missingStrategy
		case "fill_value":
			cfg.Pipeline.FillValue = fillValue
		case "delimiter":
			cfg.Pipeline.Delimiter = *delimiter
		case "bom":
			cfg.Pipeline.BOM = *bom
		case "log_level":
			cfg.Logging.Level = *logLevel
		case "trace":
			cfg.Tracing.Enabled = *traceEnabled
		}
	})

	if err := cfg.Validate(); err != nil {
		slog.Error("configuration failed",
			slog.String("code", string(cerrors.CodeOf(err))),
			slog.String("error", err.Error()))
		return 1
	}
	delim, err := cfg.Pipeline.DelimiterRune()
	if err != nil {
		slog.Error("configuration failed",
			slog.String("code", string(cerrors.CodeOf(err))),
			slog.String("error", err.Error()))
		return 1
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("failed to initialize logger", slog.String("error", err.Error()))
		return 1
	}

	ctx := infrastructure.WithRunID(context.Background(), uuid.NewString())

	tracer, shutdownTracing, err := infrastructure.InitTracing(cfg.Tracing)
	if err != nil {
		logger.ErrorContext(ctx, "failed to initialize tracing", slog.String("error", err.Error()))
		return 1
	}
	defer func() { _ = shutdownTracing(ctx) }()

	logger.InfoContext(ctx, "starting cleansing pipeline",
		slog.String("input", inputPath),
		slog.String("output", outputPath),
		slog.String("missing_strategy", cfg.Pipeline.MissingStrategy))

	state := &operations.State{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Strategy:   cleansing.Strategy(cfg.Pipeline.MissingStrategy),
		FillValue:  cfg.Pipeline.FillValue,
		Delimiter:  delim,
		BOM:        cfg.Pipeline.BOM,
		Logger:     logger,
	}

	manager := operations.NewManager(operations.DefaultSteps(), logger, operations.NewStepTracer(tracer))
	if err := manager.Run(ctx, state); err != nil {
		logger.ErrorContext(ctx, "pipeline failed",
			slog.String("code", string(cerrors.CodeOf(err))),
			slog.String("error", err.Error()))
		return cerrors.ExitCode(err)
	}

	logger.InfoContext(ctx, "pipeline complete",
		slog.String("output", outputPath),
		slog.Int("rows", state.Table.RowCount()),
		slog.Int("columns", len(state.Table.Columns())))
	return 0
}
