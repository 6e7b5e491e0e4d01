package pipeline

import (
	"fmt"
	"math"
	"strconv"

	"lifeexp/internal"
)

// ConvertColumn parses column into the target kind. A single unparsable value
// fails the whole conversion.
func ConvertColumn(t *internal.Table, column string, kind internal.ColumnKind) (*internal.Table, error) {
	src, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	idx := t.Index(column)

	var converted *internal.Column
	switch kind {
	case internal.KindInt:
		values := make([]int64, src.Len())
		for r := range values {
			v, err := toInt(src, r)
			if err != nil {
				return nil, err
			}
			values[r] = v
		}
		converted = internal.IntColumn(column, values)
	case internal.KindFloat:
		values := make([]float64, src.Len())
		for r := range values {
			v, err := toFloat(src, r)
			if err != nil {
				return nil, err
			}
			values[r] = v
		}
		converted = internal.FloatColumn(column, values)
	case internal.KindText:
		values := make([]string, src.Len())
		for r := range values {
			values[r] = src.Cell(r)
		}
		converted = internal.TextColumn(column, values)
	default:
		return nil, fmt.Errorf("%w: unknown column kind %s", internal.ErrInvalidOption, kind)
	}

	out := t.Clone()
	out.Columns[idx] = converted
	return out, nil
}

func toInt(c *internal.Column, r int) (int64, error) {
	switch c.Kind {
	case internal.KindInt:
		return c.Ints[r], nil
	case internal.KindFloat:
		f := c.Floats[r]
		if f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt64 || f < math.MinInt64 {
			return 0, invalidLiteral(c, r, internal.KindInt)
		}
		return int64(f), nil
	default:
		v, err := strconv.ParseInt(c.Text[r], 10, 64)
		if err != nil {
			return 0, invalidLiteral(c, r, internal.KindInt)
		}
		return v, nil
	}
}

func toFloat(c *internal.Column, r int) (float64, error) {
	switch c.Kind {
	case internal.KindInt:
		return float64(c.Ints[r]), nil
	case internal.KindFloat:
		return c.Floats[r], nil
	default:
		v, err := strconv.ParseFloat(c.Text[r], 64)
		if err != nil {
			return 0, invalidLiteral(c, r, internal.KindFloat)
		}
		return v, nil
	}
}

func invalidLiteral(c *internal.Column, r int, kind internal.ColumnKind) error {
	return fmt.Errorf("%w: column %q row %d: %q is not a valid %s", internal.ErrInvalidNumericLiteral, c.Name, r, c.Cell(r), kind)
}
