package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeexp/internal"
)

func TestFilterRows(t *testing.T) {
	tbl := &internal.Table{Columns: []*internal.Column{
		internal.TextColumn("country", []string{"PT", "DE"}),
		internal.IntColumn("val", []int64{10, 20}),
	}}

	out, err := FilterRows(tbl, "country", "PT")
	require.NoError(t, err)
	require.Equal(t, 1, out.NumRows())
	assert.Equal(t, int64(10), out.Columns[1].Ints[0])
}

func TestFilterRowsExactness(t *testing.T) {
	values := []string{"PT", "pt", "DE", "PT", "PT ", "EU27_2020", "PT"}
	tbl := &internal.Table{Columns: []*internal.Column{
		internal.TextColumn("region", values),
		internal.IntColumn("pos", []int64{0, 1, 2, 3, 4, 5, 6}),
	}}

	for _, target := range []string{"PT", "DE", "pt", "EU27_2020"} {
		out, err := FilterRows(tbl, "region", target)
		require.NoError(t, err)

		var want []int64
		for i, v := range values {
			if v == target {
				want = append(want, int64(i))
			}
		}
		for _, v := range out.Columns[0].Text {
			assert.Equal(t, target, v)
		}
		assert.Equal(t, want, out.Columns[1].Ints)
	}
}

func TestFilterRowsNoTarget(t *testing.T) {
	tbl := internal.NewTable([]string{"region"}, [][]string{{"PT"}, {"DE"}})

	out, err := FilterRows(tbl, "region", "")
	require.NoError(t, err)
	assert.Same(t, tbl, out)
}

func TestFilterRowsNoMatch(t *testing.T) {
	tbl := internal.NewTable([]string{"region"}, [][]string{{"PT"}, {"DE"}})

	out, err := FilterRows(tbl, "region", "FR")
	require.NoError(t, err)
	assert.Equal(t, 0, out.NumRows())
	assert.Equal(t, []string{"region"}, out.ColumnNames())
}
