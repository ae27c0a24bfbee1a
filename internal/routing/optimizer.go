// Package routing reorders a day's stops with a greedy nearest-neighbor
// tour heuristic and reports whether the reordering is worth applying.
package routing

import (
	"github.com/harukimoto/meguri/internal/domain"
	"github.com/harukimoto/meguri/internal/geo"
)

// Thresholds below which a reordering is presented as "already optimized"
// rather than suggested to the user.
const (
	MinSavingsKm      = 0.1
	MinImprovementPct = 5.0
)

// Options configure a single optimization pass.
type Options struct {
	// StartIndex is the index (within the coordinate-bearing stops, in
	// original order) of the stop the tour starts from. Out-of-range
	// values fall back to 0.
	StartIndex int
	// Mode selects the speed model for travel-time estimates.
	Mode domain.TransportMode
}

// Plan is the before/after report of one optimization pass. It is computed
// on demand and never persisted.
type Plan struct {
	Original  []*domain.ScheduledItem
	Optimized []*domain.ScheduledItem

	OriginalKm  float64
	OptimizedKm float64
	SavingsKm   float64
	// ImprovementPct is the savings relative to the original total.
	ImprovementPct float64

	OriginalTravelTime  string
	OptimizedTravelTime string

	// ExcludedCount is how many stops had no resolvable coordinates and
	// were left out of the distance math.
	ExcludedCount int

	// Applicable reports whether there were enough coordinate-bearing
	// stops for the heuristic to do anything (at least 3).
	Applicable bool
	// WorthApplying is true only when the savings clear both the absolute
	// and the relative threshold.
	WorthApplying bool
}

// Optimize builds a nearest-neighbor tour over the coordinate-bearing stops
// of items. Stops without coordinates are excluded from the distance math
// and re-appended after the tour in their original relative order, so the
// optimized list always contains exactly the input items.
//
// The heuristic minimizes the distance of each individual hop and does not
// guarantee a globally minimal tour. Ties break toward the earlier stop in
// the original order, so repeated calls with identical input are identical.
// When the tour it finds is no shorter than the input order, the input
// order is kept and the plan reports zero savings.
func Optimize(items []*domain.ScheduledItem, opts Options) *Plan {
	located := make([]*domain.ScheduledItem, 0, len(items))
	unlocated := make([]*domain.ScheduledItem, 0)
	for _, it := range items {
		if _, _, ok := it.Experience.LatLng(); ok {
			located = append(located, it)
		} else {
			unlocated = append(unlocated, it)
		}
	}

	plan := &Plan{
		Original:      items,
		Optimized:     items,
		ExcludedCount: len(unlocated),
	}

	originalKm := tourDistance(located)
	plan.OriginalKm = originalKm
	plan.OptimizedKm = originalKm
	plan.OriginalTravelTime = geo.FormatTravelTime(geo.TravelTime(originalKm, opts.Mode))
	plan.OptimizedTravelTime = plan.OriginalTravelTime

	// With two stops or fewer the identity ordering is already optimal.
	if len(located) < 3 {
		return plan
	}
	plan.Applicable = true

	start := opts.StartIndex
	if start < 0 || start >= len(located) {
		start = 0
	}

	tour := make([]*domain.ScheduledItem, 0, len(located))
	pool := make([]*domain.ScheduledItem, 0, len(located)-1)
	for i, it := range located {
		if i == start {
			tour = append(tour, it)
		} else {
			pool = append(pool, it)
		}
	}

	current := tour[0]
	for len(pool) > 0 {
		best := 0
		bestKm := stopDistance(current, pool[0])
		for i := 1; i < len(pool); i++ {
			// Strict comparison: on a tie the first-encountered stop wins.
			if km := stopDistance(current, pool[i]); km < bestKm {
				best, bestKm = i, km
			}
		}
		current = pool[best]
		tour = append(tour, current)
		pool = append(pool[:best], pool[best+1:]...)
	}

	optimizedKm := tourDistance(tour)

	// The hop-by-hop heuristic can finish with a longer tour than the input
	// order. A worse order is never proposed: keep the identity plan, which
	// the Plan already holds.
	if optimizedKm > originalKm {
		return plan
	}

	optimized := make([]*domain.ScheduledItem, 0, len(items))
	optimized = append(optimized, tour...)
	optimized = append(optimized, unlocated...)

	plan.Optimized = optimized
	plan.OptimizedKm = optimizedKm
	plan.SavingsKm = originalKm - optimizedKm
	if originalKm > 0 {
		plan.ImprovementPct = plan.SavingsKm / originalKm * 100
	}
	plan.OptimizedTravelTime = geo.FormatTravelTime(geo.TravelTime(optimizedKm, opts.Mode))
	plan.WorthApplying = plan.SavingsKm > MinSavingsKm && plan.ImprovementPct > MinImprovementPct

	return plan
}

// tourDistance sums the consecutive pairwise distances of a stop sequence.
func tourDistance(stops []*domain.ScheduledItem) float64 {
	var total float64
	for i := 1; i < len(stops); i++ {
		total += stopDistance(stops[i-1], stops[i])
	}
	return total
}

func stopDistance(a, b *domain.ScheduledItem) float64 {
	aLat, aLng, _ := a.Experience.LatLng()
	bLat, bLng, _ := b.Experience.LatLng()
	return geo.Distance(aLat, aLng, bLat, bLng)
}
