package pipeline

import (
	"fmt"
	"strings"

	"lifeexp/internal"
)

// SplitColumn replaces column with one text column per name, filled positionally
// from the delimiter-separated parts of each cell. Without names the new columns
// are called col_1, col_2, ... The new columns come first, followed by the
// untouched columns in their original order.
func SplitColumn(t *internal.Table, column, delimiter string, names []string) (*internal.Table, error) {
	src, err := t.Column(column)
	if err != nil {
		return nil, err
	}

	rows := src.Len()
	parts := make([][]string, rows)
	width := 0
	for r := 0; r < rows; r++ {
		parts[r] = strings.Split(src.Cell(r), delimiter)
		if len(parts[r]) > width {
			width = len(parts[r])
		}
	}
	if rows == 0 {
		width = len(names)
	}

	if len(names) > 0 {
		if len(names) != width {
			return nil, fmt.Errorf("%w: %d names, but %d columns", internal.ErrSchemaMismatch, len(names), width)
		}
	} else {
		names = make([]string, width)
		for i := range names {
			names[i] = fmt.Sprintf("col_%d", i+1)
		}
	}

	out := &internal.Table{Columns: make([]*internal.Column, 0, len(names)+t.NumCols()-1)}
	for i, name := range names {
		values := make([]string, rows)
		for r := range parts {
			if i < len(parts[r]) {
				values[r] = parts[r][i]
			}
		}
		out.Columns = append(out.Columns, internal.TextColumn(name, values))
	}
	for _, c := range t.Columns {
		if c == src {
			continue
		}
		out.Columns = append(out.Columns, c.Clone())
	}
	return out, nil
}
