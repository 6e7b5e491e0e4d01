package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTable(&buf, []string{"region", "year", "value"}, [][]string{
		{"PT", "2019", "81.6"},
		{"EU27_2020", "2020", "80.4"},
	})
	require.NoError(t, err)

	want := "" +
		"region     year  value\n" +
		"---------  ----  -----\n" +
		"PT         2019  81.6\n" +
		"EU27_2020  2020  80.4\n"
	assert.Equal(t, want, buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Portugal", Truncate("Portugal", 10))
	assert.Equal(t, "Europe...", Truncate("European Union", 9))
}
