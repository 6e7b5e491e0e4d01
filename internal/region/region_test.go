package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeexp/internal"
)

var aggregates = []string{"DE_TOT", "EA18", "EA19", "EEA30_2007", "EEA31", "EFTA", "EU27_2007", "EU27_2020", "EU28"}

func TestParse(t *testing.T) {
	r, err := Parse("PT")
	require.NoError(t, err)
	assert.Equal(t, PT, r)
	assert.Equal(t, "Portugal", r.Name())

	r, err = Parse(" EU27_2020 ")
	require.NoError(t, err)
	assert.Equal(t, EU27Y20, r)

	for _, bad := range []string{"pt", "XX", "", "PT,DE"} {
		_, err := Parse(bad)
		assert.ErrorIs(t, err, internal.ErrInvalidRegionCode, bad)
	}
}

func TestValues(t *testing.T) {
	values := Values()
	assert.Len(t, values, 56)
	assert.Equal(t, AL, values[0])
	assert.Equal(t, XK, values[len(values)-1])
	for _, r := range values {
		assert.True(t, r.Valid())
		assert.NotEmpty(t, r.Name(), r)
	}
	assert.False(t, All.Valid())
}

func TestCountriesExcludesAggregates(t *testing.T) {
	countries := Countries()
	assert.Len(t, countries, len(Values())-len(aggregates))

	set := map[Region]bool{}
	for _, c := range countries {
		set[c] = true
		assert.False(t, c.IsAggregate())
	}
	for _, code := range aggregates {
		r, err := Parse(code)
		require.NoError(t, err)
		assert.True(t, r.IsAggregate(), code)
		assert.False(t, set[r], code)
	}
	assert.True(t, set[PT])
	assert.True(t, set[FX])
}
