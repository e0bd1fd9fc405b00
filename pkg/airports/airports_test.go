package airports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		city string
		want string
	}{
		{name: "known city", city: "chennai", want: "MAA"},
		{name: "case insensitive", city: "Mumbai", want: "BOM"},
		{name: "all caps input", city: "DELHI", want: "DEL"},
		{name: "alternate spelling shares code", city: "selam", want: "SXV"},
		{name: "unknown city falls back to upper case", city: "berlin", want: "BERLIN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Code(tt.city))
		})
	}
}

func TestIsKnown(t *testing.T) {
	assert.True(t, IsKnown("goa"))
	assert.True(t, IsKnown("Salem"))
	assert.False(t, IsKnown("paris"))
}

func TestCitiesOrderMatchesCodes(t *testing.T) {
	cities := Cities()
	assert.Len(t, cities, len(cityCodes))

	// chennai must be scanned before mumbai for the fallback extraction order.
	assert.Equal(t, "chennai", cities[0])
	assert.Equal(t, "mumbai", cities[1])

	for _, city := range cities {
		assert.True(t, IsKnown(city), "city %q missing from code table", city)
	}
}
