package pipeline

import (
	"github.com/montanaflynn/stats"

	"lifeexp/internal"
)

type Summary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

// Summarize describes a numeric column. An empty column gives a zero Summary.
func Summarize(t *internal.Table, column string) (Summary, error) {
	c, err := t.Column(column)
	if err != nil {
		return Summary{}, err
	}
	if c.Len() == 0 {
		return Summary{}, nil
	}

	var data stats.Float64Data
	switch c.Kind {
	case internal.KindFloat:
		data = stats.Float64Data(c.Floats)
	case internal.KindInt:
		data = make(stats.Float64Data, len(c.Ints))
		for i, v := range c.Ints {
			data[i] = float64(v)
		}
	default:
		converted, err := ConvertColumn(&internal.Table{Columns: []*internal.Column{c}}, column, internal.KindFloat)
		if err != nil {
			return Summary{}, err
		}
		data = stats.Float64Data(converted.Columns[0].Floats)
	}

	s := Summary{Count: data.Len()}
	if s.Min, err = data.Min(); err != nil {
		return Summary{}, err
	}
	if s.Max, err = data.Max(); err != nil {
		return Summary{}, err
	}
	if s.Mean, err = data.Mean(); err != nil {
		return Summary{}, err
	}
	if s.Median, err = data.Median(); err != nil {
		return Summary{}, err
	}
	return s, nil
}

func (s Summary) Map() map[string]float64 {
	return map[string]float64{
		"count":  float64(s.Count),
		"min":    s.Min,
		"max":    s.Max,
		"mean":   s.Mean,
		"median": s.Median,
	}
}
