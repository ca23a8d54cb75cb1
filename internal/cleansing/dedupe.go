package cleansing

import (
	"log/slog"
	"strconv"
	"strings"

	"cleansecli/internal/dataset"
)

// Dedupe keeps only the first occurrence of each distinct row. Two rows are
// duplicates iff every cell matches in kind and value; survivors keep their
// original relative order. Applying Dedupe twice equals applying it once.
func Dedupe(table *dataset.Table, logger *slog.Logger) *dataset.Table {
	out := dataset.NewTable(table.Columns())
	seen := make(map[string]struct{}, table.RowCount())
	for _, row := range table.Rows() {
		key := rowKey(row)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out.Append(row)
	}

	logger.Info("removed duplicate rows",
		slog.Int("rows_in", table.RowCount()),
		slog.Int("rows_out", out.RowCount()))
	return out
}

// rowKey builds a canonical representation that separates cell kinds, so a
// numeric 1 never collides with the text "1" or with a missing cell.
func rowKey(row dataset.Row) string {
	var b strings.Builder
	for _, cell := range row {
		switch cell.Kind() {
		case dataset.KindNumber:
			b.WriteByte('n')
			b.WriteString(strconv.FormatFloat(cell.Float(), 'b', -1, 64))
		case dataset.KindText:
			b.WriteByte('t')
			b.WriteString(cell.String())
		default:
			b.WriteByte('m')
		}
		b.WriteByte(0x1f)
	}
	return b.String()
}
