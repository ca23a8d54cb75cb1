package dataset

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	cerrors "cleansecli/internal/errors"
)

// LoadOptions configures how an input file is parsed.
type LoadOptions struct {
	// Delimiter is the CSV field separator. Zero means comma.
	Delimiter rune
}

// Load reads a delimited text or Excel file into a Table. The first record
// is the header; every later record becomes one row with cells typed by
// Infer. Excel input is selected by file extension.
func Load(path string, opts LoadOptions) (*Table, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".xlsx" || ext == ".xlsm" {
		return loadExcel(path)
	}
	return loadCSV(path, opts)
}

func loadCSV(path string, opts LoadOptions) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, cerrors.NewLoadError(path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, cerrors.NewLoadError(path, err)
	}
	if len(records) == 0 {
		return nil, cerrors.NewLoadError(path, fmt.Errorf("file has no header row"))
	}

	header := records[0]
	// Excel exports prefix the first header cell with a UTF-8 BOM.
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	table := NewTable(header)
	for _, record := range records[1:] {
		row := make(Row, len(record))
		for i, raw := range record {
			row[i] = Infer(raw)
		}
		if err := table.Append(row); err != nil {
			return nil, cerrors.NewLoadError(path, err)
		}
	}

	slog.Debug("loaded delimited file",
		slog.String("path", path),
		slog.Int("rows", table.RowCount()),
		slog.Int("columns", len(table.Columns())))
	return table, nil
}

func loadExcel(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, cerrors.NewLoadError(path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, cerrors.NewLoadError(path, fmt.Errorf("workbook has no sheets"))
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, cerrors.NewLoadError(path, err)
	}
	if len(rows) == 0 {
		return nil, cerrors.NewLoadError(path, fmt.Errorf("sheet %q has no header row", sheets[0]))
	}

	table := NewTable(rows[0])
	width := len(rows[0])
	for _, record := range rows[1:] {
		// excelize trims trailing empty cells; pad them back as missing.
		row := make(Row, width)
		for i := range row {
			if i < len(record) {
				row[i] = Infer(record[i])
			} else {
				row[i] = Missing
			}
		}
		if err := table.Append(row); err != nil {
			return nil, cerrors.NewLoadError(path, err)
		}
	}

	slog.Debug("loaded workbook",
		slog.String("path", path),
		slog.String("sheet", sheets[0]),
		slog.Int("rows", table.RowCount()))
	return table, nil
}
