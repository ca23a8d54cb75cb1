// Package cleansing implements the three table transformations of the
// pipeline: missing-value handling, duplicate removal and categorical
// encoding. Each function takes a table and returns a new one; inputs are
// never mutated.
package cleansing

import (
	"fmt"
	"log/slog"

	"cleansecli/internal/dataset"
	cerrors "cleansecli/internal/errors"
)

// Strategy selects how missing markers are handled.
type Strategy string

const (
	// StrategyDrop removes every row that contains a missing marker.
	StrategyDrop Strategy = "drop"
	// StrategyFill replaces every missing marker with a caller-supplied literal.
	StrategyFill Strategy = "fill"
)

// HandleMissing applies the selected missing-value strategy. The fill
// literal goes through the same type inference as loaded cells, so a
// numeric-looking literal produces numeric cells. A nil fill literal with
// the fill strategy is a configuration error.
func HandleMissing(table *dataset.Table, strategy Strategy, fillValue *string, logger *slog.Logger) (*dataset.Table, error) {
	switch strategy {
	case StrategyDrop:
		return dropMissing(table, logger), nil
	case StrategyFill:
		if fillValue == nil {
			return nil, cerrors.NewConfigError("missing_strategy is fill but no fill_value was provided")
		}
		return fillMissing(table, *fillValue, logger), nil
	default:
		return nil, cerrors.NewConfigError(fmt.Sprintf("invalid missing_strategy %q, choose drop or fill", strategy))
	}
}

func dropMissing(table *dataset.Table, logger *slog.Logger) *dataset.Table {
	out := dataset.NewTable(table.Columns())
	for _, row := range table.Rows() {
		complete := true
		for _, cell := range row {
			if cell.IsMissing() {
				complete = false
				break
			}
		}
		if complete {
			out.Append(row)
		}
	}

	logger.Info("dropped rows with missing values",
		slog.Int("rows_in", table.RowCount()),
		slog.Int("rows_out", out.RowCount()))
	return out
}

func fillMissing(table *dataset.Table, literal string, logger *slog.Logger) *dataset.Table {
	fill := dataset.Infer(literal)
	out := dataset.NewTable(table.Columns())
	filled := 0
	for _, row := range table.Rows() {
		next := make(dataset.Row, len(row))
		for i, cell := range row {
			if cell.IsMissing() {
				next[i] = fill
				filled++
			} else {
				next[i] = cell
			}
		}
		out.Append(next)
	}

	logger.Info("filled missing values",
		slog.String("fill_value", literal),
		slog.Int("cells_filled", filled))
	return out
}
