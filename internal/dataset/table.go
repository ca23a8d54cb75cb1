// Package dataset holds the in-memory table model and its file formats.
// A Table is an ordered row collection over a shared column list; only the
// pipeline transformations change its shape.
package dataset

import "fmt"

// Row is one record, with cells aligned to the table's column order.
type Row []Cell

// Table is an ordered sequence of rows sharing one column set.
type Table struct {
	columns []string
	rows    []Row
}

// NewTable creates an empty table with the given column names.
func NewTable(columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{columns: cols}
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return t.columns
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// Rows returns the row slice in table order.
func (t *Table) Rows() []Row {
	return t.rows
}

// Append adds a row, enforcing the shared-column-set invariant.
func (t *Table) Append(row Row) error {
	if len(row) != len(t.columns) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(row), len(t.columns))
	}
	t.rows = append(t.rows, row)
	return nil
}

// ColumnIndex returns the position of a named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, col := range t.columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at a row index and column name. The zero Cell
// (missing) is returned for out-of-range coordinates.
func (t *Table) Cell(row int, column string) Cell {
	idx := t.ColumnIndex(column)
	if idx < 0 || row < 0 || row >= len(t.rows) {
		return Missing
	}
	return t.rows[row][idx]
}
