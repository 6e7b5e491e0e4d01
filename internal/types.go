package internal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type ColumnKind int

const (
	KindText ColumnKind = iota
	KindInt
	KindFloat
)

func (k ColumnKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Column holds the values of one named column. Only the slice matching Kind is populated.
type Column struct {
	Name   string
	Kind   ColumnKind
	Text   []string
	Ints   []int64
	Floats []float64
}

func TextColumn(name string, values []string) *Column {
	return &Column{Name: name, Kind: KindText, Text: values}
}

func IntColumn(name string, values []int64) *Column {
	return &Column{Name: name, Kind: KindInt, Ints: values}
}

func FloatColumn(name string, values []float64) *Column {
	return &Column{Name: name, Kind: KindFloat, Floats: values}
}

func (c *Column) Len() int {
	switch c.Kind {
	case KindInt:
		return len(c.Ints)
	case KindFloat:
		return len(c.Floats)
	default:
		return len(c.Text)
	}
}

// Cell renders row i as text. Floats always keep a decimal point.
func (c *Column) Cell(i int) string {
	switch c.Kind {
	case KindInt:
		return strconv.FormatInt(c.Ints[i], 10)
	case KindFloat:
		return FormatFloat(c.Floats[i])
	default:
		return c.Text[i]
	}
}

// Value returns row i as string, int64 or float64.
func (c *Column) Value(i int) any {
	switch c.Kind {
	case KindInt:
		return c.Ints[i]
	case KindFloat:
		return c.Floats[i]
	default:
		return c.Text[i]
	}
}

// Take returns a copy of the column holding the given rows.
func (c *Column) Take(rows []int) *Column {
	out := &Column{Name: c.Name, Kind: c.Kind}
	switch c.Kind {
	case KindInt:
		out.Ints = make([]int64, 0, len(rows))
		for _, r := range rows {
			out.Ints = append(out.Ints, c.Ints[r])
		}
	case KindFloat:
		out.Floats = make([]float64, 0, len(rows))
		for _, r := range rows {
			out.Floats = append(out.Floats, c.Floats[r])
		}
	default:
		out.Text = make([]string, 0, len(rows))
		for _, r := range rows {
			out.Text = append(out.Text, c.Text[r])
		}
	}
	return out
}

func (c *Column) Clone() *Column {
	out := &Column{Name: c.Name, Kind: c.Kind}
	switch c.Kind {
	case KindInt:
		out.Ints = append([]int64(nil), c.Ints...)
	case KindFloat:
		out.Floats = append([]float64(nil), c.Floats...)
	default:
		out.Text = append([]string(nil), c.Text...)
	}
	return out
}

// Table is an ordered set of equally long columns. Rows are addressed by position.
type Table struct {
	Columns []*Column
}

// NewTable builds a text table. Short rows are padded with empty cells, long rows are cut.
func NewTable(header []string, rows [][]string) *Table {
	t := &Table{Columns: make([]*Column, len(header))}
	for i, name := range header {
		values := make([]string, len(rows))
		for r, row := range rows {
			if i < len(row) {
				values[r] = row[i]
			}
		}
		t.Columns[i] = TextColumn(name, values)
	}
	return t
}

func (t *Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return t.Columns[0].Len()
}

func (t *Table) NumCols() int {
	return len(t.Columns)
}

func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Index returns the position of the named column or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

func (t *Table) Column(name string) (*Column, error) {
	idx := t.Index(name)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return t.Columns[idx], nil
}

func (t *Table) Row(i int) []any {
	out := make([]any, len(t.Columns))
	for c, col := range t.Columns {
		out[c] = col.Value(i)
	}
	return out
}

// Records renders every row as text.
func (t *Table) Records() [][]string {
	out := make([][]string, t.NumRows())
	for r := range out {
		row := make([]string, len(t.Columns))
		for c, col := range t.Columns {
			row[c] = col.Cell(r)
		}
		out[r] = row
	}
	return out
}

// Take returns a new table holding the given rows in the given order.
func (t *Table) Take(rows []int) *Table {
	out := &Table{Columns: make([]*Column, len(t.Columns))}
	for i, c := range t.Columns {
		out.Columns[i] = c.Take(rows)
	}
	return out
}

func (t *Table) Clone() *Table {
	out := &Table{Columns: make([]*Column, len(t.Columns))}
	for i, c := range t.Columns {
		out.Columns[i] = c.Clone()
	}
	return out
}

// Equal reports whether both tables have the same columns, kinds and cells.
func (t *Table) Equal(other *Table) bool {
	if other == nil || len(t.Columns) != len(other.Columns) || t.NumRows() != other.NumRows() {
		return false
	}
	for i, c := range t.Columns {
		o := other.Columns[i]
		if c.Name != o.Name || c.Kind != o.Kind {
			return false
		}
		for r := 0; r < c.Len(); r++ {
			if c.Cell(r) != o.Cell(r) {
				return false
			}
		}
	}
	return true
}

// InferKinds converts text columns whose every cell is an integer literal to int,
// and otherwise every cell a float literal to float. Columns with an empty cell stay text.
func (t *Table) InferKinds() {
	for i, c := range t.Columns {
		if c.Kind != KindText || len(c.Text) == 0 {
			continue
		}
		if ints, ok := parseInts(c.Text); ok {
			t.Columns[i] = IntColumn(c.Name, ints)
			continue
		}
		if floats, ok := parseFloats(c.Text); ok {
			t.Columns[i] = FloatColumn(c.Name, floats)
		}
	}
}

func parseInts(values []string) ([]int64, bool) {
	out := make([]int64, len(values))
	for i, v := range values {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

func parseFloats(values []string) ([]float64, bool) {
	out := make([]float64, len(values))
	for i, v := range values {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsNaN(v) || math.IsInf(v, 0) || strings.ContainsAny(s, ".e") {
		return s
	}
	return s + ".0"
}
