package repository

import (
	"testing"

	"github.com/harukimoto/meguri/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *domain.Coordinate
	}{
		{"valid pair", `[139.7967, 35.7148]`, &domain.Coordinate{Lng: 139.7967, Lat: 35.7148}},
		{"empty string", "", nil},
		{"not json", "tokyo", nil},
		{"one element", `[139.7]`, nil},
		{"three elements", `[139.7, 35.7, 0]`, nil},
		{"non-numeric", `["a", "b"]`, nil},
		{"object", `{"lng": 139.7}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseCoordinate(tt.raw))
		})
	}
}

func TestCoordinateJSONRoundTrip(t *testing.T) {
	c := &domain.Coordinate{Lng: 135.7588, Lat: 34.9858}
	raw, ok := coordinateToJSON(c).(string)
	require.True(t, ok)

	got := parseCoordinate(raw)
	require.NotNil(t, got)
	assert.Equal(t, c.Lng, got.Lng)
	assert.Equal(t, c.Lat, got.Lat)
}

func TestCoordinateToJSON_NilIsNull(t *testing.T) {
	assert.Nil(t, coordinateToJSON(nil))
}

func TestNullableFloatToValue(t *testing.T) {
	assert.Nil(t, nullableFloatToValue(nil))
	v := 980.0
	assert.Equal(t, 980.0, nullableFloatToValue(&v))
}
