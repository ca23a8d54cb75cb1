package dataset

import (
	"encoding/csv"
	"log/slog"
	"os"

	cerrors "cleansecli/internal/errors"
)

// WriteOptions configures output serialisation.
type WriteOptions struct {
	// Delimiter is the CSV field separator. Zero means comma.
	Delimiter rune
	// BOM prefixes the file with a UTF-8 byte order mark so Excel
	// recognises the encoding.
	BOM bool
}

// Write serialises the table as delimited text: one header record followed
// by one record per row, in table order, with no synthetic index column.
func Write(path string, table *Table, opts WriteOptions) error {
	file, err := os.Create(path)
	if err != nil {
		return cerrors.NewSaveError(path, err)
	}
	defer file.Close()

	if opts.BOM {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return cerrors.NewSaveError(path, err)
		}
	}

	writer := csv.NewWriter(file)
	if opts.Delimiter != 0 {
		writer.Comma = opts.Delimiter
	}

	if err := writer.Write(table.Columns()); err != nil {
		return cerrors.NewSaveError(path, err)
	}

	record := make([]string, len(table.Columns()))
	for _, row := range table.Rows() {
		for i, cell := range row {
			record[i] = cell.String()
		}
		if err := writer.Write(record); err != nil {
			return cerrors.NewSaveError(path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return cerrors.NewSaveError(path, err)
	}
	if err := file.Close(); err != nil {
		return cerrors.NewSaveError(path, err)
	}

	slog.Debug("wrote delimited file",
		slog.String("path", path),
		slog.Int("rows", table.RowCount()),
		slog.Int("columns", len(table.Columns())))
	return nil
}
