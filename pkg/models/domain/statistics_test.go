package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_Inspection(t *testing.T) {
	store := Store{Countries: []Country{
		{Code: "FRA", RegionCode: "EU", Statistics: []StatEntry{
			{StatCode: "Population", Year: 2012, Value: 1},
			{StatCode: "Income", Year: 2019, Value: 1},
		}},
		{Code: "JPN", RegionCode: "AS", Statistics: []StatEntry{
			{StatCode: "Urban", Year: 2008, Value: 1},
		}},
		{Code: "DEU", RegionCode: "EU"},
		{Code: "XXX", RegionCode: " "},
	}}

	assert.Equal(t, []string{"AS", "EU"}, store.Regions())
	assert.Equal(t, []string{"Income", "Population", "Urban"}, store.StatCodes())

	bounds, ok := store.YearBounds()
	assert.True(t, ok)
	assert.Equal(t, YearRange{Start: 2008, End: 2019}, bounds)
}

func TestStore_YearBounds_Empty(t *testing.T) {
	_, ok := Store{Countries: []Country{{Code: "FRA"}}}.YearBounds()
	assert.False(t, ok)
}

func TestYearRange(t *testing.T) {
	years := YearRange{Start: 2019, End: 2020}

	assert.True(t, years.Contains(2019))
	assert.True(t, years.Contains(2020))
	assert.False(t, years.Contains(2018))
	assert.False(t, years.Contains(2021))
	assert.Equal(t, 1, years.Span())
	assert.Equal(t, "2019-2020", years.String())
}
