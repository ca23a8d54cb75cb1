package dataset

import (
	"strconv"
	"strings"
)

// Kind discriminates the three cell value classes.
type Kind int

const (
	// KindMissing marks a cell that held no data at load time.
	KindMissing Kind = iota
	// KindNumber marks a cell whose raw text parsed as a float.
	KindNumber
	// KindText marks every other cell.
	KindText
)

// Cell is a single table value: a number, a text label, or the missing marker.
type Cell struct {
	kind Kind
	num  float64
	text string
}

// Missing is the distinguished absent-data marker.
var Missing = Cell{kind: KindMissing}

// Number builds a numeric cell.
func Number(v float64) Cell {
	return Cell{kind: KindNumber, num: v}
}

// Text builds a text cell.
func Text(s string) Cell {
	return Cell{kind: KindText, text: s}
}

// missingLiterals are the raw spellings treated as absent data, matching the
// common conventions of spreadsheet exports. Comparison is case-insensitive.
var missingLiterals = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"null": true,
}

// Infer converts raw file text into a typed cell. Numeric-looking text
// becomes a number, recognised missing spellings become the missing marker,
// everything else stays text verbatim.
func Infer(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if missingLiterals[strings.ToLower(trimmed)] {
		return Missing
	}
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Number(v)
	}
	return Text(raw)
}

// Kind returns the cell's value class.
func (c Cell) Kind() Kind {
	return c.kind
}

// IsMissing reports whether the cell is the missing marker.
func (c Cell) IsMissing() bool {
	return c.kind == KindMissing
}

// Float returns the numeric value; zero for non-numeric cells.
func (c Cell) Float() float64 {
	return c.num
}

// String renders the cell the way the writer serialises it. Numbers drop
// trailing zeros so integral values carry no decimal point; the missing
// marker renders empty.
func (c Cell) String() string {
	switch c.kind {
	case KindNumber:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	case KindText:
		return c.text
	default:
		return ""
	}
}

// Equal reports whether two cells match in both kind and value.
func (c Cell) Equal(other Cell) bool {
	if c.kind != other.kind {
		return false
	}
	switch c.kind {
	case KindNumber:
		return c.num == other.num
	case KindText:
		return c.text == other.text
	default:
		return true
	}
}
