package operations

import (
	"log/slog"

	"cleansecli/internal/cleansing"
	"cleansecli/internal/dataset"
)

// State is the value threaded through the pipeline. Each step consumes the
// table left by its predecessor and replaces it; nothing else is shared.
type State struct {
	// InputPath and OutputPath are the positional CLI arguments.
	InputPath  string
	OutputPath string

	// Strategy and FillValue drive the missing-value step. A nil
	// FillValue means none was supplied.
	Strategy  cleansing.Strategy
	FillValue *string

	// Delimiter and BOM configure the file formats.
	Delimiter rune
	BOM       bool

	// Table is the dataset flowing through the pipeline. Nil until the
	// load step has run.
	Table *dataset.Table

	// Logger is the invocation-scoped logger.
	Logger *slog.Logger
}
