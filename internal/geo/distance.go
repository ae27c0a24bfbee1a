// Package geo provides great-circle distance math and the human-readable
// distance and travel-time labels used across the planner.
package geo

import (
	"fmt"
	"math"
	"time"

	"github.com/golang/geo/s2"
	"github.com/harukimoto/meguri/internal/domain"
)

// EarthRadiusKm is Earth's mean radius in kilometers.
const EarthRadiusKm = 6371.0

// modeSpeedKmh is the average-speed model per transport mode.
var modeSpeedKmh = map[domain.TransportMode]float64{
	domain.ModeWalking: 5,
	domain.ModeCycling: 15,
	domain.ModeTransit: 20,
	domain.ModeDriving: 30,
}

// Distance returns the great-circle distance in kilometers between two
// (latitude, longitude) points. Callers holding (lng, lat) pairs are
// responsible for the swap.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lng1)
	p2 := s2.LatLngFromDegrees(lat2, lng2)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// FormatDistance returns a compact label: meters when under one kilometer
// (rounded to the nearest meter), otherwise kilometers to one decimal.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%dm", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.1fkm", km)
}

// TravelTime returns the estimated duration to cover km at the average
// speed for mode. An unrecognized mode falls back to walking speed.
func TravelTime(km float64, mode domain.TransportMode) time.Duration {
	speed, ok := modeSpeedKmh[mode]
	if !ok {
		speed = modeSpeedKmh[domain.ModeWalking]
	}
	return time.Duration(km / speed * float64(time.Hour))
}

// FormatTravelTime renders a duration as minutes when under an hour,
// otherwise hours and minutes with zero minutes omitted.
func FormatTravelTime(d time.Duration) string {
	minutes := int(math.Round(d.Minutes()))
	if minutes < 60 {
		return fmt.Sprintf("%dmin", minutes)
	}
	h := minutes / 60
	m := minutes % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dmin", h, m)
}

// EstimateTravelTime combines TravelTime and FormatTravelTime, propagating
// an unknown distance as ok=false rather than producing a bogus label.
func EstimateTravelTime(km *float64, mode domain.TransportMode) (string, bool) {
	if km == nil {
		return "", false
	}
	return FormatTravelTime(TravelTime(*km, mode)), true
}
