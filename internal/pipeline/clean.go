package pipeline

import (
	"lifeexp/internal"
	"lifeexp/internal/region"
)

const (
	CompositeColumn = `unit,sex,age,geo\time`
	YearColumn      = "year"
	ValueColumn     = "value"
	RegionColumn    = "region"
)

var IDColumns = []string{"unit", "sex", "age", RegionColumn}

// CleanData turns a raw wide life-expectancy table into the long format:
// split the composite key, unpivot the year columns, normalize year and value
// into int and float, then keep only target's rows unless target is region.All.
func CleanData(t *internal.Table, target region.Region) (*internal.Table, error) {
	out, err := SplitColumn(t, CompositeColumn, ",", IDColumns)
	if err != nil {
		return nil, err
	}
	if out, err = Unpivot(out, IDColumns, YearColumn, ValueColumn); err != nil {
		return nil, err
	}

	if out, err = CleanNumericColumn(out, YearColumn); err != nil {
		return nil, err
	}
	if out, err = ConvertColumn(out, YearColumn, internal.KindInt); err != nil {
		return nil, err
	}

	if out, err = CleanNumericColumn(out, ValueColumn); err != nil {
		return nil, err
	}
	if out, err = ConvertColumn(out, ValueColumn, internal.KindFloat); err != nil {
		return nil, err
	}

	return FilterRows(out, RegionColumn, target.String())
}
