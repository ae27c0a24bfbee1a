package geo

import (
	"testing"
	"time"

	"github.com/harukimoto/meguri/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDistance_KnownPair(t *testing.T) {
	// Tokyo Station to Kyoto Station is roughly 365-370 km great-circle.
	km := Distance(35.6812, 139.7671, 34.9858, 135.7588)
	assert.InDelta(t, 367.0, km, 5.0)
}

func TestDistance_ZeroForSamePoint(t *testing.T) {
	km := Distance(35.7148, 139.7967, 35.7148, 139.7967)
	assert.InDelta(t, 0.0, km, 1e-9)
}

func TestDistance_Symmetric(t *testing.T) {
	a := Distance(35.7148, 139.7967, 35.7101, 139.8107)
	b := Distance(35.7101, 139.8107, 35.7148, 139.7967)
	assert.InDelta(t, a, b, 1e-9)
}

func TestDistance_ShortHop(t *testing.T) {
	// Sensō-ji to Tokyo Skytree, a bit over a kilometer.
	km := Distance(35.7148, 139.7967, 35.7101, 139.8107)
	assert.Greater(t, km, 1.0)
	assert.Less(t, km, 2.0)
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "450m", FormatDistance(0.45))
	assert.Equal(t, "999m", FormatDistance(0.999))
	assert.Equal(t, "1.0km", FormatDistance(1.0))
	assert.Equal(t, "3.7km", FormatDistance(3.68))
	assert.Equal(t, "0m", FormatDistance(0))
}

func TestTravelTime_ModeSpeeds(t *testing.T) {
	// 5 km at walking speed (5 km/h) is one hour.
	assert.Equal(t, time.Hour, TravelTime(5, domain.ModeWalking))
	// 15 km cycling (15 km/h) is one hour.
	assert.Equal(t, time.Hour, TravelTime(15, domain.ModeCycling))
	// 30 km driving (30 km/h) is one hour.
	assert.Equal(t, time.Hour, TravelTime(30, domain.ModeDriving))
}

func TestTravelTime_UnknownModeFallsBackToWalking(t *testing.T) {
	got := TravelTime(5, domain.TransportMode("hovercraft"))
	assert.Equal(t, time.Hour, got)
}

func TestFormatTravelTime(t *testing.T) {
	assert.Equal(t, "15min", FormatTravelTime(15*time.Minute))
	assert.Equal(t, "1h", FormatTravelTime(time.Hour))
	assert.Equal(t, "2h 30min", FormatTravelTime(2*time.Hour+30*time.Minute))
}

func TestEstimateTravelTime_NilDistance(t *testing.T) {
	_, ok := EstimateTravelTime(nil, domain.ModeWalking)
	assert.False(t, ok, "unknown distance should not produce an estimate")
}

func TestEstimateTravelTime_Known(t *testing.T) {
	km := 2.5
	got, ok := EstimateTravelTime(&km, domain.ModeWalking)
	assert.True(t, ok)
	assert.Equal(t, "30min", got)
}
