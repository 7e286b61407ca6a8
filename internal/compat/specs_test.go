package compat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWatts(t *testing.T) {
	cases := map[string]float64{
		"170W":      170,
		"1000W":     1000,
		"1,000 W":   1000,
		"450 watts": 450,
		"65.5W":     65.5,
	}
	for in, want := range cases {
		got, ok := ParseWatts(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseWatts("80+ Gold")
	assert.False(t, ok)
}

func TestParseMillimeters(t *testing.T) {
	got, ok := ParseMillimeters("337mm")
	assert.True(t, ok)
	assert.Equal(t, float64(337), got)

	got, ok = ParseMillimeters("Up to 400 mm")
	assert.True(t, ok)
	assert.Equal(t, float64(400), got)

	_, ok = ParseMillimeters("long")
	assert.False(t, ok)
}

func TestParseMemoryType(t *testing.T) {
	for in, want := range map[string]string{
		"DDR5":                 "DDR5",
		"ddr4-3200":            "DDR4",
		"4x DIMM DDR5, 128GB":  "DDR5",
		"Vengeance DDR5 32 GB": "DDR5",
	} {
		got, ok := ParseMemoryType(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseMemoryType("24GB GDDR6X")
	assert.False(t, ok)
	_, ok = ParseMemoryType("4x DIMM, Max 128GB")
	assert.False(t, ok)
}

func TestNormalizeSocket(t *testing.T) {
	assert.Equal(t, "LGA1700", NormalizeSocket("LGA 1700"))
	assert.Equal(t, "LGA1700", NormalizeSocket(" lga-1700 "))
	assert.Equal(t, "AM5", NormalizeSocket("am5"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Mini-ITX", "Micro-ATX", "ATX", "E-ATX"}, SplitList("Mini-ITX, Micro-ATX, ATX, E-ATX"))
	assert.Equal(t, []string{"AM4", "AM5", "LGA 1700"}, SplitList("AM4/AM5; LGA 1700"))
	assert.Equal(t, []string{"Intel", "AMD"}, SplitList("Intel & AMD"))
	assert.Empty(t, SplitList(""))
}
