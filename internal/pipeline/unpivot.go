package pipeline

import (
	"lifeexp/internal"
)

// Unpivot gathers every column not listed in idColumns into variable/value pairs.
// Output rows are ordered by gathered column, then by input row.
func Unpivot(t *internal.Table, idColumns []string, varName, valueName string) (*internal.Table, error) {
	fixed := make(map[string]bool, len(idColumns))
	for _, name := range idColumns {
		if _, err := t.Column(name); err != nil {
			return nil, err
		}
		fixed[name] = true
	}

	var ids, gathered []*internal.Column
	for _, c := range t.Columns {
		if fixed[c.Name] {
			ids = append(ids, c)
		} else {
			gathered = append(gathered, c)
		}
	}

	rows := t.NumRows()
	total := rows * len(gathered)
	index := make([]int, 0, total)
	for range gathered {
		for r := 0; r < rows; r++ {
			index = append(index, r)
		}
	}

	out := &internal.Table{Columns: make([]*internal.Column, 0, len(ids)+2)}
	for _, c := range ids {
		out.Columns = append(out.Columns, c.Take(index))
	}

	variables := make([]string, 0, total)
	for _, c := range gathered {
		for r := 0; r < rows; r++ {
			variables = append(variables, c.Name)
		}
	}
	out.Columns = append(out.Columns, internal.TextColumn(varName, variables), meltValues(valueName, gathered, total))
	return out, nil
}

// meltValues stacks the gathered columns. Mixed kinds fall back to text.
func meltValues(name string, gathered []*internal.Column, total int) *internal.Column {
	kind := internal.KindText
	if len(gathered) > 0 {
		kind = gathered[0].Kind
		for _, c := range gathered[1:] {
			if c.Kind != kind {
				kind = internal.KindText
				break
			}
		}
	}

	out := &internal.Column{Name: name, Kind: kind}
	switch kind {
	case internal.KindInt:
		out.Ints = make([]int64, 0, total)
		for _, c := range gathered {
			out.Ints = append(out.Ints, c.Ints...)
		}
	case internal.KindFloat:
		out.Floats = make([]float64, 0, total)
		for _, c := range gathered {
			out.Floats = append(out.Floats, c.Floats...)
		}
	default:
		out.Text = make([]string, 0, total)
		for _, c := range gathered {
			for r := 0; r < c.Len(); r++ {
				out.Text = append(out.Text, c.Cell(r))
			}
		}
	}
	return out
}
