// Package grid holds the in-memory tabular model shown by the spreadsheet view.
//
// A Table is a slice of rows where row 0 is the header and the remaining rows
// are the body. Tables are values: every change produces a new Table and the
// rows of an existing one are never written to.
package grid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind tags the value held by a Cell.
type Kind int

const (
	Absent Kind = iota
	Number
	Text
)

// Cell is a single optional scalar.
type Cell struct {
	Kind Kind
	Num  float64
	Str  string
}

// Empty returns an absent cell.
func Empty() Cell { return Cell{} }

// Num returns a numeric cell.
func Num(v float64) Cell { return Cell{Kind: Number, Num: v} }

// Str returns a textual cell.
func Str(s string) Cell { return Cell{Kind: Text, Str: s} }

// FromAny converts a raw decoded value into a Cell.
func FromAny(v any) Cell {
	switch x := v.(type) {
	case nil:
		return Empty()
	case Cell:
		return x
	case float64:
		return Num(x)
	case float32:
		return Num(float64(x))
	case int:
		return Num(float64(x))
	case int8:
		return Num(float64(x))
	case int16:
		return Num(float64(x))
	case int32:
		return Num(float64(x))
	case int64:
		return Num(float64(x))
	case uint:
		return Num(float64(x))
	case uint8:
		return Num(float64(x))
	case uint16:
		return Num(float64(x))
	case uint32:
		return Num(float64(x))
	case uint64:
		return Num(float64(x))
	case string:
		return Str(x)
	default:
		return Str(fmt.Sprint(x))
	}
}

// IsAbsent reports whether the cell holds no value.
func (c Cell) IsAbsent() bool { return c.Kind == Absent }

// IsNumber reports whether the cell holds a number.
func (c Cell) IsNumber() bool { return c.Kind == Number }

// Value returns the cell as a plain Go value: nil, float64 or string.
func (c Cell) Value() any {
	switch c.Kind {
	case Number:
		return c.Num
	case Text:
		return c.Str
	default:
		return nil
	}
}

// String returns the textual form used for display and string ordering.
// Absent cells render as the empty string.
func (c Cell) String() string {
	switch c.Kind {
	case Number:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case Text:
		return c.Str
	default:
		return ""
	}
}

// Row is an ordered sequence of cells.
type Row []Cell

// Strings returns the textual form of every cell in the row.
func (r Row) Strings() []string {
	out := make([]string, len(r))
	for i, c := range r {
		out[i] = c.String()
	}
	return out
}

// Table is a header row followed by body rows.
type Table []Row

// Header returns row 0, or nil for an empty table.
func (t Table) Header() Row {
	if len(t) == 0 {
		return nil
	}
	return t[0]
}

// Body returns the rows after the header.
func (t Table) Body() []Row {
	if len(t) < 2 {
		return nil
	}
	return t[1:]
}

// Width returns the number of columns.
func (t Table) Width() int {
	return len(t.Header())
}

// Clone returns a copy that shares no rows with t.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	out := make(Table, len(t))
	for i, row := range t {
		out[i] = append(Row(nil), row...)
	}
	return out
}

// Normalize builds a Table from raw row values. Every row is padded with
// absent cells to the width of the widest row.
func Normalize(rows [][]any) Table {
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	out := make(Table, len(rows))
	for i, r := range rows {
		row := make(Row, width)
		for j, v := range r {
			row[j] = FromAny(v)
		}
		out[i] = row
	}
	return out
}

// WithCell returns a copy of t where the cell at (row, col) is replaced.
func (t Table) WithCell(row, col int, c Cell) (Table, error) {
	if row < 0 || row >= len(t) {
		return nil, fmt.Errorf("row %d out of range", row)
	}
	if col < 0 || col >= len(t[row]) {
		return nil, fmt.Errorf("column %d out of range", col)
	}
	out := make(Table, len(t))
	copy(out, t)
	replaced := append(Row(nil), t[row]...)
	replaced[col] = c
	out[row] = replaced
	return out, nil
}

// ParseCell interprets user-entered text: blank is absent, a finite number
// is a number, the rest is text.
func ParseCell(s string) Cell {
	if s == "" {
		return Empty()
	}
	if v, ok := ParseNumber(s); ok {
		return Num(v)
	}
	return Str(s)
}

// ParseNumber parses s as a finite float. NaN and the infinities are
// rejected so that "nan" or "Inf" stay text.
func ParseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
