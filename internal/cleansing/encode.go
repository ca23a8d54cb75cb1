package cleansing

import (
	"fmt"
	"log/slog"
	"sort"

	"cleansecli/internal/dataset"
)

// EncodeCategorical expands every non-numeric column into binary indicator
// columns, one per category except the reference. Categories are ordered
// lexicographically and the smallest one is the omitted reference, so the
// expansion is deterministic across runs. Numeric columns pass through
// unchanged; a single-category column is absorbed entirely by its reference.
//
// The table is expected to be free of missing markers at this point; the
// missing-value step runs first in the pipeline.
func EncodeCategorical(table *dataset.Table, logger *slog.Logger) *dataset.Table {
	type plan struct {
		categorical bool
		categories  []string // sorted; [0] is the reference
	}

	cols := table.Columns()
	plans := make([]plan, len(cols))
	for i := range cols {
		if numericColumn(table, i) {
			continue
		}
		distinct := make(map[string]struct{})
		for _, row := range table.Rows() {
			distinct[row[i].String()] = struct{}{}
		}
		categories := make([]string, 0, len(distinct))
		for c := range distinct {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		plans[i] = plan{categorical: true, categories: categories}
	}

	var outCols []string
	for i, col := range cols {
		if !plans[i].categorical {
			outCols = append(outCols, col)
			continue
		}
		for _, category := range plans[i].categories[1:] {
			outCols = append(outCols, fmt.Sprintf("%s_%s", col, category))
		}
	}

	out := dataset.NewTable(outCols)
	encoded := 0
	for _, row := range table.Rows() {
		next := make(dataset.Row, 0, len(outCols))
		for i := range cols {
			if !plans[i].categorical {
				next = append(next, row[i])
				continue
			}
			value := row[i].String()
			for _, category := range plans[i].categories[1:] {
				if value == category {
					next = append(next, dataset.Number(1))
				} else {
					next = append(next, dataset.Number(0))
				}
			}
		}
		out.Append(next)
	}
	for i := range cols {
		if plans[i].categorical {
			encoded++
		}
	}

	logger.Info("encoded categorical columns",
		slog.Int("columns_encoded", encoded),
		slog.Int("columns_in", len(cols)),
		slog.Int("columns_out", len(outCols)))
	return out
}

// numericColumn reports whether every cell in the column is numeric. An
// empty table has no categorical columns.
func numericColumn(table *dataset.Table, col int) bool {
	for _, row := range table.Rows() {
		if row[col].Kind() != dataset.KindNumber {
			return false
		}
	}
	return true
}
