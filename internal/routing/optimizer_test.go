package routing

import (
	"testing"

	"github.com/harukimoto/meguri/internal/domain"
	"github.com/harukimoto/meguri/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stopAt builds a scheduled item at the given (lat, lng).
func stopAt(title string, lat, lng float64) *domain.ScheduledItem {
	return testutil.NewScheduledItem(
		testutil.NewTestExperience(title, testutil.WithLocation(lng, lat)))
}

func titles(items []*domain.ScheduledItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Experience.Title
	}
	return out
}

func TestOptimize_EmptyInput(t *testing.T) {
	plan := Optimize(nil, Options{Mode: domain.ModeWalking})

	assert.False(t, plan.Applicable)
	assert.False(t, plan.WorthApplying)
	assert.Empty(t, plan.Optimized)
	assert.Zero(t, plan.OriginalKm)
}

func TestOptimize_TwoStopsIsIdentity(t *testing.T) {
	items := []*domain.ScheduledItem{
		stopAt("A", 0, 0),
		stopAt("B", 0, 0.1),
	}
	plan := Optimize(items, Options{Mode: domain.ModeWalking})

	assert.False(t, plan.Applicable, "fewer than 3 located stops has nothing to reorder")
	assert.Equal(t, titles(items), titles(plan.Optimized))
	assert.Equal(t, plan.OriginalKm, plan.OptimizedKm)
}

func TestOptimize_ReordersDetour(t *testing.T) {
	// Collinear stops visited as A, C, B: going to the far end first and
	// doubling back is strictly worse than A, B, C.
	items := []*domain.ScheduledItem{
		stopAt("A", 0, 0),
		stopAt("C", 0, 0.2),
		stopAt("B", 0, 0.1),
	}
	plan := Optimize(items, Options{Mode: domain.ModeWalking})

	require.True(t, plan.Applicable)
	assert.Equal(t, []string{"A", "B", "C"}, titles(plan.Optimized))
	assert.Less(t, plan.OptimizedKm, plan.OriginalKm)
	assert.InDelta(t, plan.OriginalKm-plan.OptimizedKm, plan.SavingsKm, 1e-9)
	assert.True(t, plan.WorthApplying, "a third of the distance saved clears both thresholds")
}

func TestOptimize_AlreadyOrderedNotWorthApplying(t *testing.T) {
	items := []*domain.ScheduledItem{
		stopAt("A", 0, 0),
		stopAt("B", 0, 0.1),
		stopAt("C", 0, 0.2),
	}
	plan := Optimize(items, Options{Mode: domain.ModeWalking})

	require.True(t, plan.Applicable)
	assert.Equal(t, []string{"A", "B", "C"}, titles(plan.Optimized))
	assert.InDelta(t, 0, plan.SavingsKm, 1e-9)
	assert.False(t, plan.WorthApplying)
}

func TestOptimize_NeverProposesLongerTour(t *testing.T) {
	// Collinear stops where the greedy walk backfires: from A the nearest
	// stop is B, then D, leaving the long double-back to C for last. That
	// tour is longer than the input order, so the input order must stand.
	items := []*domain.ScheduledItem{
		stopAt("A", 0, 0),
		stopAt("C", 0, -1.5),
		stopAt("B", 0, 1),
		stopAt("D", 0, 2.5),
	}
	plan := Optimize(items, Options{Mode: domain.ModeWalking})

	require.True(t, plan.Applicable)
	assert.Equal(t, []string{"A", "C", "B", "D"}, titles(plan.Optimized))
	assert.Equal(t, plan.OriginalKm, plan.OptimizedKm)
	assert.Zero(t, plan.SavingsKm)
	assert.Zero(t, plan.ImprovementPct)
	assert.False(t, plan.WorthApplying)
	assert.LessOrEqual(t, plan.OptimizedKm, plan.OriginalKm)
}

func TestOptimize_Deterministic(t *testing.T) {
	// B and C are equidistant from A; the earlier stop must win the tie
	// on every run.
	items := []*domain.ScheduledItem{
		stopAt("A", 0, 0),
		stopAt("B", 0, 0.1),
		stopAt("C", 0, -0.1),
	}
	first := Optimize(items, Options{Mode: domain.ModeWalking})
	for i := 0; i < 10; i++ {
		again := Optimize(items, Options{Mode: domain.ModeWalking})
		assert.Equal(t, titles(first.Optimized), titles(again.Optimized))
	}
	assert.Equal(t, []string{"A", "B", "C"}, titles(first.Optimized))
}

func TestOptimize_UnlocatedStopsAppendedInOrder(t *testing.T) {
	noLoc1 := testutil.NewScheduledItem(testutil.NewTestExperience("x", testutil.WithNoLocation()))
	noLoc2 := testutil.NewScheduledItem(testutil.NewTestExperience("y", testutil.WithNoLocation()))
	items := []*domain.ScheduledItem{
		stopAt("A", 0, 0),
		noLoc1,
		stopAt("C", 0, 0.2),
		stopAt("B", 0, 0.1),
		noLoc2,
	}
	plan := Optimize(items, Options{Mode: domain.ModeWalking})

	require.True(t, plan.Applicable)
	assert.Equal(t, 2, plan.ExcludedCount)
	assert.Equal(t, []string{"A", "B", "C", "x", "y"}, titles(plan.Optimized))
	assert.Len(t, plan.Optimized, len(items), "optimized list keeps every input item")
}

func TestOptimize_OnlyUnlocatedStops(t *testing.T) {
	items := []*domain.ScheduledItem{
		testutil.NewScheduledItem(testutil.NewTestExperience("x", testutil.WithNoLocation())),
		testutil.NewScheduledItem(testutil.NewTestExperience("y", testutil.WithNoLocation())),
		testutil.NewScheduledItem(testutil.NewTestExperience("z", testutil.WithNoLocation())),
	}
	plan := Optimize(items, Options{Mode: domain.ModeWalking})

	assert.False(t, plan.Applicable)
	assert.Equal(t, 3, plan.ExcludedCount)
	assert.Equal(t, titles(items), titles(plan.Optimized))
}

func TestOptimize_StartIndexOutOfRangeFallsBackToFirst(t *testing.T) {
	items := []*domain.ScheduledItem{
		stopAt("A", 0, 0),
		stopAt("C", 0, 0.2),
		stopAt("B", 0, 0.1),
	}
	fromZero := Optimize(items, Options{StartIndex: 0})
	clamped := Optimize(items, Options{StartIndex: 99})

	assert.Equal(t, titles(fromZero.Optimized), titles(clamped.Optimized))
}

func TestOptimize_StartIndexSelectsAnchor(t *testing.T) {
	items := []*domain.ScheduledItem{
		stopAt("A", 0, 0),
		stopAt("B", 0, 0.1),
		stopAt("C", 0, 0.2),
	}
	// Anchoring on C walks the line back the other way.
	plan := Optimize(items, Options{StartIndex: 2})

	require.True(t, plan.Applicable)
	assert.Equal(t, []string{"C", "B", "A"}, titles(plan.Optimized))
}

func TestOptimize_RealCityGeometry(t *testing.T) {
	// Shibuya stops plus Asakusa-side stops: interleaving the two areas is
	// clearly worse than visiting each cluster together.
	sensoji := testutil.NewScheduledItem(testutil.SensojiTemple())
	skytree := testutil.NewScheduledItem(testutil.TokyoSkytree())
	shibuya := testutil.NewScheduledItem(testutil.ShibuyaCrossing())
	ichiran := testutil.NewScheduledItem(testutil.IchiranShibuya())
	items := []*domain.ScheduledItem{sensoji, shibuya, skytree, ichiran}

	plan := Optimize(items, Options{Mode: domain.ModeTransit})

	require.True(t, plan.Applicable)
	assert.Less(t, plan.OptimizedKm, plan.OriginalKm)
	assert.True(t, plan.WorthApplying)
	// Starting at Sensō-ji, the nearest stop is Skytree; the Shibuya pair
	// follows.
	assert.Equal(t, "Tokyo Skytree", plan.Optimized[1].Experience.Title)
}
