package repository

import (
	"encoding/json"
	"time"

	"github.com/harukimoto/meguri/internal/domain"
)

const dateLayout = "2006-01-02"

// nullableFloatToValue converts a *float64 to a value suitable for SQLite
// storage. Returns nil (SQL NULL) if the pointer is nil.
func nullableFloatToValue(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// coordinateToJSON serializes a coordinate as a [lng, lat] JSON pair, or
// nil (SQL NULL) when absent.
func coordinateToJSON(c *domain.Coordinate) interface{} {
	if c == nil {
		return nil
	}
	raw, err := json.Marshal([2]float64{c.Lng, c.Lat})
	if err != nil {
		return nil
	}
	return string(raw)
}

// parseCoordinate decodes a stored [lng, lat] JSON pair. Anything that is
// not exactly two numeric elements yields nil: a malformed location just
// excludes the experience from distance features, it is never an error.
func parseCoordinate(raw string) *domain.Coordinate {
	if raw == "" {
		return nil
	}
	var pair []float64
	if err := json.Unmarshal([]byte(raw), &pair); err != nil {
		return nil
	}
	if len(pair) != 2 {
		return nil
	}
	return &domain.Coordinate{Lng: pair[0], Lat: pair[1]}
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// parseTime parses a stored timestamp, falling back to the zero time.
func parseTime(s, layout string) time.Time {
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
