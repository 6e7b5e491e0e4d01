package pipeline

import (
	"lifeexp/internal"
	"lifeexp/internal/util"
)

// CleanNumericColumn rewrites column as clean numeric text and drops every row
// where no number could be extracted.
func CleanNumericColumn(t *internal.Table, column string) (*internal.Table, error) {
	src, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	idx := t.Index(column)

	keep := make([]int, 0, src.Len())
	values := make([]string, 0, src.Len())
	for r := 0; r < src.Len(); r++ {
		v, ok := util.NormalizeNumeric(src.Cell(r))
		if !ok {
			continue
		}
		keep = append(keep, r)
		values = append(values, v)
	}

	out := t.Take(keep)
	out.Columns[idx] = internal.TextColumn(column, values)
	return out, nil
}
