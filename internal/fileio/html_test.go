package fileio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeexp/internal"
)

const lifeTableHTML = `<html><body>
<p>Life expectancy at birth</p>
<table>
  <tr><th>unit,sex,age,geo\time</th><th>2020 </th><th>2019 </th></tr>
  <tr><td>YR,F,Y1,PT</td><td>81.4 p</td><td>81.3</td></tr>
  <tr><td>YR,F,Y1,DE</td><td>80.5</td><td>:</td></tr>
</table>
<table><tr><td>ignored</td></tr></table>
</body></html>`

func TestLoadHTML(t *testing.T) {
	got, err := Load(writeFile(t, "raw.html", lifeTableHTML), LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{`unit,sex,age,geo\time`, "2020", "2019"}, got.ColumnNames())
	assert.Equal(t, [][]string{
		{"YR,F,Y1,PT", "81.4 p", "81.3"},
		{"YR,F,Y1,DE", "80.5", ":"},
	}, got.Records())
}

func TestParseHTMLTableKinds(t *testing.T) {
	got, err := parseHTMLTable(strings.NewReader(`<table><tr><td>year</td><td>value</td></tr><tr><td>2020</td><td>81.4</td></tr></table>`))
	require.NoError(t, err)
	assert.Equal(t, internal.KindInt, got.Columns[0].Kind)
	assert.Equal(t, internal.KindFloat, got.Columns[1].Kind)
}

func TestLoadHTMLWithoutTable(t *testing.T) {
	_, err := Load(writeFile(t, "empty.htm", "<html><body><p>nothing</p></body></html>"), LoadOptions{})
	require.ErrorIs(t, err, internal.ErrUnsupportedFormat)
}
