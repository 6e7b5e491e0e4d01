package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeexp/internal"
)

func TestCleanNumericColumn(t *testing.T) {
	tbl := internal.NewTable([]string{"id", "value"}, [][]string{
		{"a", "€1,000"},
		{"b", "N/A"},
		{"c", " 200 "},
		{"d", "19.3 e"},
	})

	out, err := CleanNumericColumn(tbl, "value")
	require.NoError(t, err)

	assert.Equal(t, []string{"1000", "200", "19.3"}, out.Columns[1].Text)
	assert.Equal(t, []string{"a", "c", "d"}, out.Columns[0].Text)
	assert.Equal(t, 4, tbl.NumRows(), "input must not change")
}

func TestCleanNumericColumnRendersTypedValues(t *testing.T) {
	tbl := &internal.Table{Columns: []*internal.Column{
		internal.FloatColumn("value", []float64{70, 71.6}),
	}}

	out, err := CleanNumericColumn(tbl, "value")
	require.NoError(t, err)
	assert.Equal(t, internal.KindText, out.Columns[0].Kind)
	assert.Equal(t, []string{"70.0", "71.6"}, out.Columns[0].Text)
}

func TestCleanNumericColumnMissing(t *testing.T) {
	_, err := CleanNumericColumn(internal.NewTable([]string{"a"}, nil), "value")
	require.ErrorIs(t, err, internal.ErrColumnNotFound)
}
