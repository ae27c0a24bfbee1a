package domain

import "time"

// Coordinate is a geographic point stored in (longitude, latitude) order,
// matching the order used by the persistence layer and map hand-off.
type Coordinate struct {
	Lng float64
	Lat float64
}

// Experience is a saved place a user can schedule: a hotel, restaurant,
// attraction and so on. The planner never owns experiences; scheduled items
// hold a weak reference by ID.
type Experience struct {
	ID       string
	Title    string
	Category Category
	Price    *float64    // nil when the price is unknown
	Location *Coordinate // nil when no coordinates are available
	AddedAt  time.Time
}

// PriceValue returns the price, treating an unknown price as zero.
func (e *Experience) PriceValue() float64 {
	if e == nil || e.Price == nil {
		return 0
	}
	return *e.Price
}

// LatLng returns the experience's coordinates in (latitude, longitude)
// order for distance math. ok is false when the experience is missing or
// has no resolvable location.
func (e *Experience) LatLng() (lat, lng float64, ok bool) {
	if e == nil || e.Location == nil {
		return 0, 0, false
	}
	return e.Location.Lat, e.Location.Lng, true
}
