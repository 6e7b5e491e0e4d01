package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTablePadsShortRows(t *testing.T) {
	tbl := NewTable([]string{"a", "b"}, [][]string{{"1", "2"}, {"3"}})

	require.Equal(t, 2, tbl.NumRows())
	require.Equal(t, 2, tbl.NumCols())
	assert.Equal(t, []string{"a", "b"}, tbl.ColumnNames())
	assert.Equal(t, [][]string{{"1", "2"}, {"3", ""}}, tbl.Records())
}

func TestInferKinds(t *testing.T) {
	tbl := NewTable([]string{"year", "value", "region", "gap"}, [][]string{
		{"2019", "71.6", "PT", "1"},
		{"2020", "70", "DE", ""},
	})
	tbl.InferKinds()

	assert.Equal(t, KindInt, tbl.Columns[0].Kind)
	assert.Equal(t, []int64{2019, 2020}, tbl.Columns[0].Ints)
	assert.Equal(t, KindFloat, tbl.Columns[1].Kind)
	assert.Equal(t, []float64{71.6, 70}, tbl.Columns[1].Floats)
	assert.Equal(t, KindText, tbl.Columns[2].Kind)
	assert.Equal(t, KindText, tbl.Columns[3].Kind)
}

func TestFloatCellKeepsDecimalPoint(t *testing.T) {
	col := FloatColumn("value", []float64{70, 71.6, -0.5})

	assert.Equal(t, "70.0", col.Cell(0))
	assert.Equal(t, "71.6", col.Cell(1))
	assert.Equal(t, "-0.5", col.Cell(2))
}

func TestTakeAndClone(t *testing.T) {
	tbl := &Table{Columns: []*Column{
		TextColumn("region", []string{"PT", "DE", "FR"}),
		IntColumn("year", []int64{2019, 2020, 2021}),
	}}

	sub := tbl.Take([]int{2, 0})
	assert.Equal(t, [][]string{{"FR", "2021"}, {"PT", "2019"}}, sub.Records())

	cp := tbl.Clone()
	cp.Columns[0].Text[0] = "XX"
	assert.Equal(t, "PT", tbl.Columns[0].Text[0])
	assert.False(t, tbl.Equal(cp))
	assert.True(t, tbl.Equal(tbl.Clone()))
}

func TestColumnLookup(t *testing.T) {
	tbl := NewTable([]string{"a"}, nil)

	_, err := tbl.Column("missing")
	require.ErrorIs(t, err, ErrColumnNotFound)
	assert.Equal(t, -1, tbl.Index("missing"))
	assert.Equal(t, 0, tbl.NumRows())
}
