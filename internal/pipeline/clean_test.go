package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeexp/internal"
	"lifeexp/internal/fileio"
	"lifeexp/internal/region"
)

func wideTable() *internal.Table {
	return internal.NewTable([]string{CompositeColumn, "2019", "2020"}, [][]string{
		{"YR,F,Y1,PT", "71.6", "72.1"},
		{"YR,F,Y1,DE", "70.0", ""},
	})
}

func TestCleanData(t *testing.T) {
	out, err := CleanData(wideTable(), region.PT)
	require.NoError(t, err)

	assert.Equal(t, []string{"unit", "sex", "age", "region", "year", "value"}, out.ColumnNames())
	assert.Equal(t, [][]string{
		{"YR", "F", "Y1", "PT", "2019", "71.6"},
		{"YR", "F", "Y1", "PT", "2020", "72.1"},
	}, out.Records())

	year, err := out.Column(YearColumn)
	require.NoError(t, err)
	assert.Equal(t, []int64{2019, 2020}, year.Ints)

	value, err := out.Column(ValueColumn)
	require.NoError(t, err)
	assert.Equal(t, []float64{71.6, 72.1}, value.Floats)
}

func TestCleanDataAllRegions(t *testing.T) {
	out, err := CleanData(wideTable(), region.All)
	require.NoError(t, err)

	// the empty DE 2020 cell is dropped
	assert.Equal(t, 3, out.NumRows())
	regions, _ := out.Column(RegionColumn)
	assert.Equal(t, []string{"PT", "DE", "PT"}, regions.Text)
}

func TestCleanDataNoMatchingRegion(t *testing.T) {
	out, err := CleanData(wideTable(), region.FR)
	require.NoError(t, err)
	assert.Equal(t, 0, out.NumRows())
	assert.Equal(t, 6, out.NumCols())
}

func TestCleanDataSchemaMismatch(t *testing.T) {
	tbl := internal.NewTable([]string{CompositeColumn, "2019"}, [][]string{{"YR,F,PT", "1"}})

	_, err := CleanData(tbl, region.PT)
	require.ErrorIs(t, err, internal.ErrSchemaMismatch)
}

func TestCleanDataMissingCompositeColumn(t *testing.T) {
	tbl := internal.NewTable([]string{"geo", "2019"}, [][]string{{"PT", "1"}})

	_, err := CleanData(tbl, region.PT)
	require.ErrorIs(t, err, internal.ErrColumnNotFound)
}

func TestCleanDataFixture(t *testing.T) {
	raw, err := fileio.Load(filepath.Join("testdata", "eu_life_expectancy_raw.tsv"), fileio.LoadOptions{})
	require.NoError(t, err)
	expected, err := fileio.Load(filepath.Join("testdata", "pt_life_expectancy_expected.csv"), fileio.LoadOptions{})
	require.NoError(t, err)

	out, err := CleanData(raw, region.PT)
	require.NoError(t, err)

	assert.Equal(t, expected.Records(), out.Records())
	assert.True(t, expected.Equal(out), "kinds differ: got %v", kinds(out))
}

func kinds(t *internal.Table) []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Kind.String()
	}
	return out
}
