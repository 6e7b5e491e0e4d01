package pipeline

import (
	"lifeexp/internal"
)

// FilterRows keeps the rows whose column equals value exactly. An empty value
// returns t unchanged.
func FilterRows(t *internal.Table, column, value string) (*internal.Table, error) {
	src, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return t, nil
	}

	keep := make([]int, 0)
	for r := 0; r < src.Len(); r++ {
		if src.Cell(r) == value {
			keep = append(keep, r)
		}
	}
	return t.Take(keep), nil
}
