package operations

import (
	"context"
	"fmt"
	"log/slog"

	"cleansecli/internal/cleansing"
	"cleansecli/internal/dataset"
	cerrors "cleansecli/internal/errors"
)

// Step IDs in pipeline order.
const (
	StepIDLoad         = "load"
	StepIDCleanMissing = "clean_missing"
	StepIDDedupe       = "dedupe"
	StepIDEncode       = "encode"
	StepIDSave         = "save"
)

// DefaultSteps returns the fixed pipeline in execution order.
func DefaultSteps() []Step {
	return []Step{
		&LoadStep{},
		&CleanMissingStep{},
		&DedupeStep{},
		&EncodeStep{},
		&SaveStep{},
	}
}

// LoadStep reads the input file into the state's table.
type LoadStep struct{}

func (s *LoadStep) ID() string   { return StepIDLoad }
func (s *LoadStep) Name() string { return "Load input file" }

func (s *LoadStep) Validate(state *State) error {
	if state.InputPath == "" {
		return cerrors.NewConfigError("input file path is required")
	}
	return nil
}

func (s *LoadStep) Execute(ctx context.Context, state *State) error {
	table, err := dataset.Load(state.InputPath, dataset.LoadOptions{Delimiter: state.Delimiter})
	if err != nil {
		return err
	}
	state.Table = table
	state.Logger.InfoContext(ctx, "loaded input file",
		slog.String("path", state.InputPath),
		slog.Int("rows", table.RowCount()),
		slog.Int("columns", len(table.Columns())))
	return nil
}

// CleanMissingStep applies the configured missing-value strategy.
type CleanMissingStep struct{}

func (s *CleanMissingStep) ID() string   { return StepIDCleanMissing }
func (s *CleanMissingStep) Name() string { return "Handle missing values" }

func (s *CleanMissingStep) Validate(state *State) error {
	switch state.Strategy {
	case cleansing.StrategyDrop:
		return nil
	case cleansing.StrategyFill:
		if state.FillValue == nil {
			return cerrors.NewConfigError("missing_strategy is fill but no fill_value was provided")
		}
		return nil
	default:
		return cerrors.NewConfigError(fmt.Sprintf("invalid missing_strategy %q, choose drop or fill", state.Strategy))
	}
}

func (s *CleanMissingStep) Execute(ctx context.Context, state *State) error {
	table, err := cleansing.HandleMissing(state.Table, state.Strategy, state.FillValue, state.Logger)
	if err != nil {
		return err
	}
	state.Table = table
	return nil
}

// DedupeStep removes exact duplicate rows.
type DedupeStep struct{}

func (s *DedupeStep) ID() string                { return StepIDDedupe }
func (s *DedupeStep) Name() string              { return "Remove duplicate rows" }
func (s *DedupeStep) Validate(state *State) error { return nil }

func (s *DedupeStep) Execute(ctx context.Context, state *State) error {
	state.Table = cleansing.Dedupe(state.Table, state.Logger)
	return nil
}

// EncodeStep one-hot encodes categorical columns.
type EncodeStep struct{}

func (s *EncodeStep) ID() string                { return StepIDEncode }
func (s *EncodeStep) Name() string              { return "Encode categorical columns" }
func (s *EncodeStep) Validate(state *State) error { return nil }

func (s *EncodeStep) Execute(ctx context.Context, state *State) error {
	state.Table = cleansing.EncodeCategorical(state.Table, state.Logger)
	return nil
}

// SaveStep writes the table to the output file.
type SaveStep struct{}

func (s *SaveStep) ID() string   { return StepIDSave }
func (s *SaveStep) Name() string { return "Save output file" }

func (s *SaveStep) Validate(state *State) error {
	if state.OutputPath == "" {
		return cerrors.NewConfigError("output file path is required")
	}
	return nil
}

func (s *SaveStep) Execute(ctx context.Context, state *State) error {
	opts := dataset.WriteOptions{Delimiter: state.Delimiter, BOM: state.BOM}
	if err := dataset.Write(state.OutputPath, state.Table, opts); err != nil {
		return err
	}
	state.Logger.InfoContext(ctx, "saved output file",
		slog.String("path", state.OutputPath),
		slog.Int("rows", state.Table.RowCount()),
		slog.Int("columns", len(state.Table.Columns())))
	return nil
}
